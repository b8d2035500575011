package post

import (
	"log"
	"net/http"

	"Scoops/internal/api/handlers"
	"Scoops/internal/core/engine"
	"Scoops/internal/core/posts"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case posts.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case posts.ErrEmptyContent:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Post content must not be empty")
	case engine.ErrNotReady:
		handlers.WriteError(w, http.StatusServiceUnavailable, "NotReady", "The feed is still initializing")
	default:
		log.Printf("Post handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
