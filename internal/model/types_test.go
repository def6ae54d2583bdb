package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimespanRejectsInvertedRange(t *testing.T) {
	start := time.Date(2016, 2, 17, 11, 0, 0, 0, time.UTC)
	end := start.Add(-time.Hour)
	_, err := NewTimespan(start, end)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestNewTimespanAllowsEmptySpan(t *testing.T) {
	at := time.Date(2016, 2, 17, 10, 0, 0, 0, time.UTC)
	span, err := NewTimespan(at, at)
	require.NoError(t, err)
	assert.Equal(t, at, span.Start())
	assert.Equal(t, at, span.End())
	assert.False(t, span.Contains(at))
}

func TestTimespanContainsIsOpenInterval(t *testing.T) {
	start := time.Date(2016, 2, 17, 9, 0, 0, 0, time.UTC)
	end := time.Date(2016, 2, 17, 12, 0, 0, 0, time.UTC)
	span, err := NewTimespan(start, end)
	require.NoError(t, err)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"at start", start, false},
		{"at end", end, false},
		{"inside", start.Add(time.Hour), true},
		{"one second in", start.Add(time.Second), true},
		{"before", start.Add(-time.Second), false},
		{"after", end.Add(time.Second), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, span.Contains(tt.at))
		})
	}
}
