package filter

import (
	"strings"

	"twitnet/internal/model"
	"twitnet/internal/util"
)

// WrittenBy returns the tweets whose author equals username, ignoring case.
func WrittenBy(tweets []model.Tweet, username string) []model.Tweet {
	out := make([]model.Tweet, 0)
	for _, t := range tweets {
		if strings.EqualFold(t.Author, username) {
			out = append(out, t)
		}
	}
	return out
}

// InTimespan returns the tweets strictly inside span.
func InTimespan(tweets []model.Tweet, span model.Timespan) []model.Tweet {
	out := make([]model.Tweet, 0)
	for _, t := range tweets {
		if span.Contains(t.Timestamp) {
			out = append(out, t)
		}
	}
	return out
}

// Containing returns the tweets whose text contains at least one of words,
// ignoring case. An empty word matches every tweet.
func Containing(tweets []model.Tweet, words []string) []model.Tweet {
	out := make([]model.Tweet, 0)
	if len(words) == 0 {
		return out
	}
	for _, t := range tweets {
		if util.ContainsAnyCaseInsensitive(t.Text, words) {
			out = append(out, t)
		}
	}
	return out
}
