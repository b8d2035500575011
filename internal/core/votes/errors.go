package votes

import "errors"

var (
	// ErrInvalidDirection indicates the direction is not "up" or "down",
	// or a down toggle was sent to a binary (like-only) store
	ErrInvalidDirection = errors.New("invalid vote direction")
)
