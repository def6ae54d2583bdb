package extract

import (
	"errors"
	"regexp"
	"strings"

	"twitnet/internal/model"
	"twitnet/internal/social"
)

// ErrNoTweets is returned when an operation needs at least one tweet.
var ErrNoTweets = errors.New("no tweets")

// An '@' counts only at the start of text or after a non-username character,
// so addresses like bitdiddle@mit.edu are skipped.
var mention = regexp.MustCompile(`(?:^|[^A-Za-z0-9_-])@([A-Za-z0-9_-]+)`)

// GetTimespan returns the smallest timespan containing every tweet.
func GetTimespan(tweets []model.Tweet) (model.Timespan, error) {
	if len(tweets) == 0 {
		return model.Timespan{}, ErrNoTweets
	}
	start, end := tweets[0].Timestamp, tweets[0].Timestamp
	for _, t := range tweets[1:] {
		if t.Timestamp.Before(start) {
			start = t.Timestamp
		}
		if t.Timestamp.After(end) {
			end = t.Timestamp
		}
	}
	return model.NewTimespan(start, end)
}

// GetMentionedUsers returns every username mentioned in the tweets, lowercased.
// Usernames end at the first character outside [A-Za-z0-9_-].
func GetMentionedUsers(tweets []model.Tweet) social.UserSet {
	out := make(social.UserSet)
	for _, t := range tweets {
		for _, m := range mention.FindAllStringSubmatch(t.Text, -1) {
			out[strings.ToLower(m[1])] = struct{}{}
		}
	}
	return out
}
