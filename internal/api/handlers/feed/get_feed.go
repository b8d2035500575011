package feed

import (
	"log"
	"net/http"

	"Scoops/internal/api/handlers"
	"Scoops/internal/core/engine"
	"Scoops/internal/core/feeds"
	"Scoops/internal/core/posts"
)

// GetFeedHandler serves the three feed tabs
type GetFeedHandler struct {
	api engine.API
}

// NewGetFeedHandler creates a new feed handler
func NewGetFeedHandler(api engine.API) *GetFeedHandler {
	return &GetFeedHandler{api: api}
}

// HandleGetFeed returns a ranked snapshot of the feed
// GET /api/feed?sort=hot|new|mine (default hot)
func (h *GetFeedHandler) HandleGetFeed(w http.ResponseWriter, r *http.Request) {
	sort := feeds.Sort(r.URL.Query().Get("sort"))
	if sort == "" {
		sort = feeds.SortHotFeed
	}

	var (
		views []*feeds.PostView
		err   error
	)
	switch sort {
	case feeds.SortHotFeed:
		views, err = h.api.ListHot(r.Context())
	case feeds.SortNewFeed:
		views, err = h.api.ListNew(r.Context())
	case feeds.SortUserFeed:
		views, err = h.api.ListUserPosts(r.Context())
	default:
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "sort must be 'hot', 'new' or 'mine'")
		return
	}
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"sort": sort,
		"feed": views,
	})
}

// handleServiceError converts service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case engine.ErrNotReady:
		handlers.WriteError(w, http.StatusServiceUnavailable, "NotReady", "The feed is still initializing")
	case posts.ErrPostNotFound:
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", "Post not found")
	default:
		log.Printf("Feed handler error: %v", err)
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "An internal error occurred")
	}
}
