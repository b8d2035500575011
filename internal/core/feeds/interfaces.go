package feeds

import "context"

// Service defines the read-side interface for the feed tabs. Every method
// returns a fresh snapshot built from the canonical collection; the snapshots
// are the caller's to keep and are kept current through notifier patches,
// not by re-reading.
type Service interface {
	// ListHot returns the whole collection ranked by hot score
	ListHot(ctx context.Context) ([]*PostView, error)

	// ListNew returns the whole collection newest-first
	ListNew(ctx context.Context) ([]*PostView, error)

	// ListUserPosts returns the posts composed this session, newest-first
	ListUserPosts(ctx context.Context) ([]*PostView, error)

	// GetPost returns a single decorated post for the detail screen.
	// Returns posts.ErrPostNotFound for an unknown id.
	GetPost(ctx context.Context, postID string) (*PostView, error)
}
