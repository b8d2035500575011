package comments

import "errors"

var (
	// ErrCommentNotFound indicates the referenced comment doesn't exist
	ErrCommentNotFound = errors.New("comment not found")

	// ErrEmptyContent indicates the submitted content is empty after trimming
	ErrEmptyContent = errors.New("comment content is empty")

	// ErrCommentLimitReached indicates the post already carries the maximum
	// number of comments
	ErrCommentLimitReached = errors.New("comment limit reached for this post")
)
