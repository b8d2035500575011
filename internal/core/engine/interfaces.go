package engine

import (
	"context"

	"Scoops/internal/core/comments"
	"Scoops/internal/core/feeds"
	"Scoops/internal/core/posts"
	"Scoops/internal/core/updates"
)

// Seeder loads the fixture data set into the canonical collections and
// returns the seeded post ids so the engine can resynchronize their reply
// counts.
type Seeder interface {
	Seed(ctx context.Context) ([]string, error)
}

// API is the complete in-process boundary the view layer talks to. Every
// operation except Initialize and SubscribeToUpdates fails with ErrNotReady
// until Initialize has completed.
type API interface {
	// Initialize seeds the store from fixture data. Idempotent: repeat calls
	// after a successful run are no-ops.
	Initialize(ctx context.Context) error

	CreatePost(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error)
	GetPost(ctx context.Context, postID string) (*feeds.PostView, error)
	TogglePostUpvote(ctx context.Context, postID string) (*posts.VoteUpdate, error)
	TogglePostDownvote(ctx context.Context, postID string) (*posts.VoteUpdate, error)

	ListHot(ctx context.Context) ([]*feeds.PostView, error)
	ListNew(ctx context.Context) ([]*feeds.PostView, error)
	ListUserPosts(ctx context.Context) ([]*feeds.PostView, error)

	CreateComment(ctx context.Context, req comments.CreateCommentRequest) (*comments.Comment, error)
	GetCommentsForPost(ctx context.Context, postID string) ([]*comments.CommentView, error)
	ToggleCommentUpvote(ctx context.Context, commentID string) (*comments.VoteUpdate, error)
	ToggleCommentDownvote(ctx context.Context, commentID string) (*comments.VoteUpdate, error)

	// SubscribeToUpdates registers a handler on the update notifier and
	// returns an unsubscribe function. Allowed before initialization so
	// screens can mount early without missing the gate.
	SubscribeToUpdates(handler updates.Handler) func()
}
