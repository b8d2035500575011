package routes

import (
	"Scoops/internal/api/handlers/post"
	"Scoops/internal/core/engine"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers post-related endpoints on the router
func RegisterPostRoutes(r chi.Router, api engine.API) {
	// Initialize handlers
	createHandler := post.NewCreatePostHandler(api)
	getHandler := post.NewGetPostHandler(api)

	// POST /api/posts - create a new post from composer text
	r.Post("/api/posts", createHandler.HandleCreatePost)

	// GET /api/posts/{postID} - fetch a single post with its comment thread
	r.Get("/api/posts/{postID}", getHandler.HandleGetPost)
}
