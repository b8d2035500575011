package engine

import "errors"

var (
	// ErrNotReady indicates an operation was attempted before Initialize
	// completed. Calls are rejected, never queued.
	ErrNotReady = errors.New("engine not initialized")
)
