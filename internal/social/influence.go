package social

import "sort"

// Influencer is a followed user and the number of distinct authors following them.
type Influencer struct {
	Username  string
	Followers int
}

// RankInfluencers counts in-degree for every followed user and orders them by
// follower count descending, breaking ties by ascending username.
// Users nobody follows are not included.
func RankInfluencers(graph FollowsGraph) []Influencer {
	counts := make(map[string]int)
	for _, follows := range graph {
		for u := range follows {
			counts[u]++
		}
	}
	out := make([]Influencer, 0, len(counts))
	for u, n := range counts {
		out = append(out, Influencer{Username: u, Followers: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Followers != out[j].Followers {
			return out[i].Followers > out[j].Followers
		}
		return out[i].Username < out[j].Username
	})
	return out
}

// Influencers returns the usernames from RankInfluencers in the same order.
func Influencers(graph FollowsGraph) []string {
	ranked := RankInfluencers(graph)
	out := make([]string, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, r.Username)
	}
	return out
}
