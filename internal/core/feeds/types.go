package feeds

import "Scoops/internal/core/posts"

// Sort identifies a feed ordering requested by a tab.
type Sort string

const (
	SortHotFeed  Sort = "hot"
	SortNewFeed  Sort = "new"
	SortUserFeed Sort = "mine"
)

// PostView is a post decorated with the session voter's membership flags,
// the shape every feed tab renders.
type PostView struct {
	posts.Post
	IsUpvoted   bool `json:"isUpvoted"`
	IsDownvoted bool `json:"isDownvoted"`
}
