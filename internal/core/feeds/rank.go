package feeds

import (
	"sort"

	"Scoops/internal/core/posts"
)

// HotScore is the ranking score for the hot feed: net votes plus reply count.
func HotScore(p *posts.Post) int {
	return p.Upvotes - p.Downvotes + p.Replies
}

// SortHot returns a new slice ordered by hot score descending, ties broken
// by CreatedAt descending (newer first). The sort is stable: entries with
// equal score and equal timestamp keep their relative order. The input slice
// is never reordered.
func SortHot(list []*posts.Post) []*posts.Post {
	out := make([]*posts.Post, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		si, sj := HotScore(out[i]), HotScore(out[j])
		if si != sj {
			return si > sj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// SortNew returns a new slice ordered by CreatedAt descending only.
// Stable; the input slice is never reordered.
func SortNew(list []*posts.Post) []*posts.Post {
	out := make([]*posts.Post, len(list))
	copy(out, list)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
