package post

import (
	"encoding/json"
	"net/http"

	"Scoops/internal/api/handlers"
	"Scoops/internal/core/engine"
	"Scoops/internal/core/posts"
)

// CreatePostHandler handles post composition
type CreatePostHandler struct {
	api engine.API
}

// NewCreatePostHandler creates a new create post handler
func NewCreatePostHandler(api engine.API) *CreatePostHandler {
	return &CreatePostHandler{api: api}
}

// HandleCreatePost composes an anonymous post
// POST /api/posts
//
// Request body: { "content": "free text, #hashtags welcome" }
func (h *CreatePostHandler) HandleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req posts.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.api.CreatePost(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
