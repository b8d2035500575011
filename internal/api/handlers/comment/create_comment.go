package comment

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Scoops/internal/api/handlers"
	"Scoops/internal/core/comments"
	"Scoops/internal/core/engine"
)

// CreateCommentHandler handles replies to a post
type CreateCommentHandler struct {
	api engine.API
}

// NewCreateCommentHandler creates a new create comment handler
func NewCreateCommentHandler(api engine.API) *CreateCommentHandler {
	return &CreateCommentHandler{api: api}
}

// HandleCreateComment adds a reply to a post
// POST /api/posts/{postID}/comments
//
// Request body: { "content": "reply text" }
func (h *CreateCommentHandler) HandleCreateComment(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	if postID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "postID is required")
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	created, err := h.api.CreateComment(r.Context(), comments.CreateCommentRequest{
		PostID:  postID,
		Content: body.Content,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created)
}
