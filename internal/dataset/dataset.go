package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"twitnet/internal/model"
)

// ErrMalformedTweet is returned for a record missing an author or with a bad timestamp.
var ErrMalformedTweet = errors.New("malformed tweet")

// record mirrors one entry of a tweet fixture file.
type record struct {
	ID        int64  `yaml:"id"`
	Author    string `yaml:"author"`
	Text      string `yaml:"text"`
	Timestamp string `yaml:"timestamp"`
}

type file struct {
	Tweets []record `yaml:"tweets"`
}

// Load reads tweets from a YAML or JSON fixture file, keeping file order.
func Load(path string) ([]model.Tweet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tweets, err := Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tweets, nil
}

// Decode parses a fixture document of the form {tweets: [{id, author, text, timestamp}]}.
// Timestamps are RFC 3339. An empty document yields no tweets.
func Decode(r io.Reader) ([]model.Tweet, error) {
	var f file
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return []model.Tweet{}, nil
		}
		return nil, err
	}
	out := make([]model.Tweet, 0, len(f.Tweets))
	for i, rec := range f.Tweets {
		if strings.TrimSpace(rec.Author) == "" {
			return nil, fmt.Errorf("record %d: empty author: %w", i, ErrMalformedTweet)
		}
		ts, err := time.Parse(time.RFC3339, rec.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("record %d: timestamp %q: %w", i, rec.Timestamp, ErrMalformedTweet)
		}
		out = append(out, model.Tweet{ID: rec.ID, Author: rec.Author, Text: rec.Text, Timestamp: ts})
	}
	return out, nil
}
