package analytics

import (
	"sort"
	"strings"
	"time"

	"twitnet/internal/model"
)

// HourlyVolume counts tweets per UTC hour.
func HourlyVolume(tweets []model.Tweet) map[time.Time]int {
	buckets := make(map[time.Time]int)
	for _, t := range tweets {
		buckets[t.Timestamp.UTC().Truncate(time.Hour)]++
	}
	return buckets
}

// SortedBucketKeys returns sorted hour keys.
func SortedBucketKeys(m map[time.Time]int) []time.Time {
	keys := make([]time.Time, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })
	return keys
}

// AuthorCounts counts tweets per author, folding case.
func AuthorCounts(tweets []model.Tweet) map[string]int {
	counts := make(map[string]int)
	for _, t := range tweets {
		counts[strings.ToLower(t.Author)]++
	}
	return counts
}
