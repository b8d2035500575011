package comment

import (
	"log"
	"net/http"

	"Scoops/internal/api/handlers"
	"Scoops/internal/core/comments"
	"Scoops/internal/core/engine"
	"Scoops/internal/core/posts"
)

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case posts.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	case comments.ErrCommentNotFound:
		handlers.WriteError(w, http.StatusNotFound, "CommentNotFound", "Comment not found")
	case comments.ErrEmptyContent:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Comment content must not be empty")
	case comments.ErrCommentLimitReached:
		// Lets the client disable the reply composer rather than show a
		// generic failure
		handlers.WriteError(w, http.StatusConflict, "LimitExceeded", "This post already has the maximum number of comments")
	case engine.ErrNotReady:
		handlers.WriteError(w, http.StatusServiceUnavailable, "NotReady", "The feed is still initializing")
	default:
		log.Printf("Comment handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
