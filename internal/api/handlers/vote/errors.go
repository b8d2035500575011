package vote

import (
	"log"
	"net/http"

	"Scoops/internal/api/handlers"
	"Scoops/internal/core/comments"
	"Scoops/internal/core/engine"
	"Scoops/internal/core/posts"
	"Scoops/internal/core/votes"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case posts.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case comments.ErrCommentNotFound:
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case votes.ErrInvalidDirection:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Unsupported vote direction")
	case engine.ErrNotReady:
		handlers.WriteError(w, http.StatusServiceUnavailable, "NotReady", "The feed is still initializing")
	default:
		log.Printf("Vote handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
