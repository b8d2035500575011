package vote

import (
	"encoding/json"
	"net/http"

	"Scoops/internal/api/handlers"
	"Scoops/internal/core/engine"
	"Scoops/internal/core/updates"
	"Scoops/internal/core/votes"
)

// ToggleVoteHandler handles vote toggles for both posts and comments
type ToggleVoteHandler struct {
	api engine.API
}

// NewToggleVoteHandler creates a new toggle vote handler
func NewToggleVoteHandler(api engine.API) *ToggleVoteHandler {
	return &ToggleVoteHandler{api: api}
}

// toggleVoteRequest selects the entity and the direction of the transition
type toggleVoteRequest struct {
	SubjectID   string             `json:"subjectId"`
	SubjectKind updates.EntityKind `json:"subjectKind"`
	Direction   votes.Direction    `json:"direction"`
}

// HandleToggleVote applies one vote transition for the session voter
// POST /api/votes
//
// Request body: { "subjectId": "...", "subjectKind": "post" | "comment",
//                 "direction": "up" | "down" }
func (h *ToggleVoteHandler) HandleToggleVote(w http.ResponseWriter, r *http.Request) {
	var req toggleVoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if req.SubjectID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "subjectId is required")
		return
	}
	if req.Direction != votes.DirectionUp && req.Direction != votes.DirectionDown {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "direction must be 'up' or 'down'")
		return
	}

	switch req.SubjectKind {
	case updates.KindPost:
		h.togglePost(w, r, req)
	case updates.KindComment:
		h.toggleComment(w, r, req)
	default:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "subjectKind must be 'post' or 'comment'")
	}
}

func (h *ToggleVoteHandler) togglePost(w http.ResponseWriter, r *http.Request, req toggleVoteRequest) {
	toggle := h.api.TogglePostUpvote
	if req.Direction == votes.DirectionDown {
		toggle = h.api.TogglePostDownvote
	}

	update, err := toggle(r.Context(), req.SubjectID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, update)
}

func (h *ToggleVoteHandler) toggleComment(w http.ResponseWriter, r *http.Request, req toggleVoteRequest) {
	toggle := h.api.ToggleCommentUpvote
	if req.Direction == votes.DirectionDown {
		toggle = h.api.ToggleCommentDownvote
	}

	update, err := toggle(r.Context(), req.SubjectID)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, update)
}
