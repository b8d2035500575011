package comments

// CreateCommentRequest contains parameters for replying to a post
type CreateCommentRequest struct {
	PostID  string `json:"postId"`
	Content string `json:"content"`
}

// CommentView is a comment decorated with the session voter's membership
// flags, the shape the detail screen renders
type CommentView struct {
	Comment
	IsUpvoted   bool `json:"isUpvoted"`
	IsDownvoted bool `json:"isDownvoted"`
}

// VoteUpdate is the result of a comment vote toggle
type VoteUpdate struct {
	CommentID   string `json:"commentId"`
	Upvotes     int    `json:"upvotes"`
	Downvotes   int    `json:"downvotes"`
	IsUpvoted   bool   `json:"isUpvoted"`
	IsDownvoted bool   `json:"isDownvoted"`
}
