package routes

import (
	"Scoops/internal/api/handlers/feed"
	"Scoops/internal/core/engine"

	"github.com/go-chi/chi/v5"
)

// RegisterFeedRoutes registers feed-related endpoints on the router
func RegisterFeedRoutes(r chi.Router, api engine.API) {
	getFeedHandler := feed.NewGetFeedHandler(api)

	// GET /api/feed?sort=hot|new|mine - ranked post listing
	r.Get("/api/feed", getFeedHandler.HandleGetFeed)
}
