package comment

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"Scoops/internal/api/handlers"
	"Scoops/internal/core/engine"
)

// GetCommentsHandler lists a post's comment thread
type GetCommentsHandler struct {
	api engine.API
}

// NewGetCommentsHandler creates a new get comments handler
func NewGetCommentsHandler(api engine.API) *GetCommentsHandler {
	return &GetCommentsHandler{api: api}
}

// HandleGetComments returns the post's comments, newest first, capped at the
// thread limit
// GET /api/posts/{postID}/comments
func (h *GetCommentsHandler) HandleGetComments(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "postID is required")
		return
	}

	thread, err := h.api.GetCommentsForPost(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"comments": thread,
	})
}
