package post

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Scoops/internal/api/handlers"
	"Scoops/internal/core/engine"
)

// GetPostHandler serves the post detail screen
type GetPostHandler struct {
	api engine.API
}

// NewGetPostHandler creates a new get post handler
func NewGetPostHandler(api engine.API) *GetPostHandler {
	return &GetPostHandler{api: api}
}

// HandleGetPost returns one decorated post together with its comment thread
// GET /api/posts/{postID}
func (h *GetPostHandler) HandleGetPost(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "postID is required")
		return
	}

	view, err := h.api.GetPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	thread, err := h.api.GetCommentsForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"post":     view,
		"comments": thread,
	})
}
