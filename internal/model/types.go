package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidRange is returned when a timespan would end before it starts.
var ErrInvalidRange = errors.New("invalid range")

// Tweet is a single timestamped post. Tweets are passed by value and never mutated.
type Tweet struct {
	ID        int64
	Author    string
	Text      string
	Timestamp time.Time
}

// Timespan is a closed pair of instants with Start <= End.
type Timespan struct {
	start time.Time
	end   time.Time
}

// NewTimespan builds a timespan, rejecting start after end.
func NewTimespan(start, end time.Time) (Timespan, error) {
	if start.After(end) {
		return Timespan{}, fmt.Errorf("timespan %s..%s: %w", start.Format(time.RFC3339), end.Format(time.RFC3339), ErrInvalidRange)
	}
	return Timespan{start: start, end: end}, nil
}

func (s Timespan) Start() time.Time { return s.start }
func (s Timespan) End() time.Time   { return s.end }

// Contains reports whether t lies strictly inside the span. Tweets at either
// boundary are excluded so adjacent windows never share a tweet.
func (s Timespan) Contains(t time.Time) bool {
	return s.start.Before(t) && s.end.After(t)
}

func (s Timespan) String() string {
	return s.start.Format(time.RFC3339) + ".." + s.end.Format(time.RFC3339)
}
