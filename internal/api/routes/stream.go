package routes

import (
	"Scoops/internal/api/handlers/stream"
	"Scoops/internal/core/engine"

	"github.com/go-chi/chi/v5"
)

// RegisterStreamRoutes registers the websocket update stream on the router
func RegisterStreamRoutes(r chi.Router, api engine.API) {
	streamHandler := stream.NewStreamHandler(api)

	// GET /api/stream - live vote and reply-count updates over websocket
	r.Get("/api/stream", streamHandler.HandleStream)
}
