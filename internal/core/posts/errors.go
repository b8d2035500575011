package posts

import "errors"

var (
	// ErrPostNotFound indicates the referenced post doesn't exist
	ErrPostNotFound = errors.New("post not found")

	// ErrEmptyContent indicates the submitted content is empty after trimming
	ErrEmptyContent = errors.New("post content is empty")
)
