package social

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"twitnet/internal/model"
)

var now = time.Date(2016, 2, 17, 10, 0, 0, 0, time.UTC)

func tw(id int64, author, text string) model.Tweet {
	return model.Tweet{ID: id, Author: author, Text: text, Timestamp: now.Add(time.Duration(id) * time.Minute)}
}

func set(users ...string) UserSet {
	s := make(UserSet)
	for _, u := range users {
		s[u] = struct{}{}
	}
	return s
}

func TestGuessFollowsGraphEmpty(t *testing.T) {
	assert.Empty(t, GuessFollowsGraph(nil))
	assert.Empty(t, GuessFollowsGraph([]model.Tweet{}))
}

func TestGuessFollowsGraphAuthorsWithoutMentionsGetKeys(t *testing.T) {
	graph := GuessFollowsGraph([]model.Tweet{
		tw(1, "KaifaHalaq", "Just enjoying the day!"),
		tw(2, "Ibrahim", "Having lunch at a new place."),
	})
	require.Len(t, graph, 2)
	assert.Empty(t, graph["kaifahalaq"])
	assert.Empty(t, graph["ibrahim"])
}

func TestGuessFollowsGraphSingleMention(t *testing.T) {
	graph := GuessFollowsGraph([]model.Tweet{tw(1, "kaifahalaq", "Hello @ibrahim")})
	assert.True(t, graph.Follows("kaifahalaq", "ibrahim"))
	assert.NotContains(t, graph, "ibrahim")
}

func TestGuessFollowsGraphUnionAcrossTweets(t *testing.T) {
	graph := GuessFollowsGraph([]model.Tweet{
		tw(1, "kaifahalaq", "Hello @ibrahim"),
		tw(2, "KaifaHalaq", "Lunch with @Nabeel"),
	})
	assert.Equal(t, set("ibrahim", "nabeel"), graph["kaifahalaq"])
}

func TestGuessFollowsGraphExcludesSelfMention(t *testing.T) {
	graph := GuessFollowsGraph([]model.Tweet{tw(1, "alice", "note to self @Alice and @bob")})
	assert.Equal(t, set("bob"), graph["alice"])
	assert.False(t, graph.Follows("alice", "alice"))
}

func TestGuessFollowsGraphDeduplicatesWithinTweet(t *testing.T) {
	graph := GuessFollowsGraph([]model.Tweet{tw(1, "a", "@b @B @b")})
	assert.Equal(t, set("b"), graph["a"])
}

func TestGuessFollowsGraphDoesNotMutateInput(t *testing.T) {
	in := []model.Tweet{tw(1, "Alice", "hi @Bob")}
	_ = GuessFollowsGraph(in)
	assert.Equal(t, "Alice", in[0].Author)
	assert.Equal(t, "hi @Bob", in[0].Text)
}

func TestMentionsIn(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"none", "rivest talk in 30 minutes #hype", nil},
		{"lone at sign", "meet @ noon", nil},
		{"punctuation kept", "Hi @bob!", []string{"bob!"}},
		{"lowercased", "@Alice\t@CAROL", []string{"alice", "carol"}},
		{"single at stripped", "@@dave", []string{"@dave"}},
		{"mid-token at ignored", "mail bob@mit.edu", nil},
		{"whitespace runs", "  \n@eve   ", []string{"eve"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mentionsIn(tt.text))
		})
	}
}

func TestUserSetSortedAndAuthors(t *testing.T) {
	graph := FollowsGraph{"c": set(), "a": set("z", "b"), "b": set()}
	assert.Equal(t, []string{"a", "b", "c"}, graph.Authors())
	assert.Equal(t, []string{"b", "z"}, graph["a"].Sorted())
	assert.False(t, graph.Follows("missing", "a"))
}
