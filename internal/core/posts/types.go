package posts

// CreatePostRequest contains parameters for composing a post
type CreatePostRequest struct {
	Content string `json:"content"`
}

// VoteUpdate is the result of a vote toggle: the post's counters after the
// transition plus the session voter's membership flags
type VoteUpdate struct {
	PostID      string `json:"postId"`
	Upvotes     int    `json:"upvotes"`
	Downvotes   int    `json:"downvotes"`
	IsUpvoted   bool   `json:"isUpvoted"`
	IsDownvoted bool   `json:"isDownvoted"`
}
