package feed

import (
	"sort"

	"github.com/threadchain/threadchain/internal/models"
)

// DefaultTrendingLimit is the default number of trending hashtags returned.
const DefaultTrendingLimit = 10

// TrendingHashtags ranks hashtags by the number of posts carrying
// them. Each post contributes at most one count per distinct tag, even
// if a tag is duplicated within the post. Ties are broken by the order
// a tag was first seen in the input sequence. The result is truncated
// to limit.
func TrendingHashtags(posts []models.Post, limit int) []string {
	if limit <= 0 {
		limit = DefaultTrendingLimit
	}

	counts := make(map[string]int)
	order := make([]string, 0)

	for i := range posts {
		seen := make(map[string]bool, len(posts[i].Tags))
		for _, tag := range posts[i].Tags {
			if seen[tag] {
				continue
			}
			seen[tag] = true
			if _, ok := counts[tag]; !ok {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	// Stable sort keeps first-seen order for equal counts.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}
	return order
}
