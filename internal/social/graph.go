package social

import (
	"sort"
	"strings"

	"twitnet/internal/model"
	"twitnet/internal/util"
)

// UserSet is a set of lowercased usernames.
type UserSet map[string]struct{}

// Has reports whether username is in the set.
func (s UserSet) Has(username string) bool {
	_, ok := s[username]
	return ok
}

// Sorted returns the members in ascending order.
func (s UserSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for u := range s {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}

// FollowsGraph maps a lowercased author to the users they are guessed to follow.
// Only authors are keys; users who are only ever mentioned appear as members.
type FollowsGraph map[string]UserSet

// Follows reports whether follower is guessed to follow followee.
func (g FollowsGraph) Follows(follower, followee string) bool {
	return g[strings.ToLower(follower)].Has(strings.ToLower(followee))
}

// Authors returns the graph keys in ascending order.
func (g FollowsGraph) Authors() []string {
	out := make([]string, 0, len(g))
	for a := range g {
		out = append(out, a)
	}
	sort.Strings(out)
	return out
}

// GuessFollowsGraph infers who follows whom from @-mentions: an author follows
// every user they mention in any of their tweets, except themselves.
func GuessFollowsGraph(tweets []model.Tweet) FollowsGraph {
	graph := make(FollowsGraph)
	for _, t := range tweets {
		author := strings.ToLower(t.Author)
		follows, ok := graph[author]
		if !ok {
			follows = make(UserSet)
			graph[author] = follows
		}
		for _, m := range mentionsIn(t.Text) {
			if m == author {
				continue
			}
			follows[m] = struct{}{}
		}
	}
	return graph
}

// mentionsIn returns the lowercased @-mentions among the whitespace tokens of text.
// Only the single leading '@' is stripped; trailing punctuation stays (`@bob!` is "bob!").
func mentionsIn(text string) []string {
	var out []string
	for _, tok := range util.Tokenize(text) {
		if len(tok) > 1 && tok[0] == '@' {
			out = append(out, strings.ToLower(tok[1:]))
		}
	}
	return out
}
