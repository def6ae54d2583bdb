package main

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"twitnet/internal/model"
	"twitnet/internal/social"
)

func parseTimespan(start, end string) (model.Timespan, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return model.Timespan{}, fmt.Errorf("start: %w", err)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return model.Timespan{}, fmt.Errorf("end: %w", err)
	}
	return model.NewTimespan(s, e)
}

func formatTweet(t model.Tweet) string {
	return fmt.Sprintf("%d\t%s\t@%s\t%s", t.ID, t.Timestamp.UTC().Format(time.RFC3339), t.Author, t.Text)
}

func printTweets(tweets []model.Tweet) {
	for _, t := range tweets {
		fmt.Println(formatTweet(t))
	}
}

// formatGraph prints one line per author, sorted, e.g. "alyssa -> bbitdiddle, rivest".
func formatGraph(g social.FollowsGraph) string {
	var b strings.Builder
	for _, a := range g.Authors() {
		fmt.Fprintf(&b, "%s -> %s\n", a, strings.Join(g[a].Sorted(), ", "))
	}
	return b.String()
}

func formatInfluencers(ranked []social.Influencer, top int) string {
	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}
	var b strings.Builder
	for i, r := range ranked {
		fmt.Fprintf(&b, "%2d. @%s followers=%d\n", i+1, r.Username, r.Followers)
	}
	return b.String()
}

func formatCounts(counts map[string]int) string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "@%s: %d\n", k, counts[k])
	}
	return b.String()
}
