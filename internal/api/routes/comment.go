package routes

import (
	"Scoops/internal/api/handlers/comment"
	"Scoops/internal/core/engine"

	"github.com/go-chi/chi/v5"
)

// RegisterCommentRoutes registers comment-related endpoints on the router
func RegisterCommentRoutes(r chi.Router, api engine.API) {
	// Initialize handlers
	createHandler := comment.NewCreateCommentHandler(api)
	getHandler := comment.NewGetCommentsHandler(api)

	// POST /api/posts/{postID}/comments - reply to a post
	r.Post("/api/posts/{postID}/comments", createHandler.HandleCreateComment)

	// GET /api/posts/{postID}/comments - list a post's comment thread
	r.Get("/api/posts/{postID}/comments", getHandler.HandleGetComments)
}
