package routes

import (
	"Scoops/internal/api/handlers/vote"
	"Scoops/internal/core/engine"

	"github.com/go-chi/chi/v5"
)

// RegisterVoteRoutes registers vote-related endpoints on the router
func RegisterVoteRoutes(r chi.Router, api engine.API) {
	toggleHandler := vote.NewToggleVoteHandler(api)

	// POST /api/votes - toggle an upvote or downvote on a post or comment
	r.Post("/api/votes", toggleHandler.HandleToggleVote)
}
