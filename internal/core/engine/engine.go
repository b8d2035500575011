package engine

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"Scoops/internal/core/comments"
	"Scoops/internal/core/feeds"
	"Scoops/internal/core/posts"
	"Scoops/internal/core/updates"
)

// Engine wires the services behind the single in-process boundary the view
// layer consumes, and gates every operation on Initialize having completed.
// Construct it once at process start and inject it into every consumer.
type Engine struct {
	posts    posts.Service
	comments comments.Service
	feeds    feeds.Service
	notifier *updates.Notifier
	seeder   Seeder
	logger   *slog.Logger

	initMu sync.Mutex
	ready  atomic.Bool
}

// New creates an engine over already-wired services. seeder may be nil, in
// which case Initialize starts from an empty store.
func New(postSvc posts.Service, commentSvc comments.Service, feedSvc feeds.Service, notifier *updates.Notifier, seeder Seeder, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		posts:    postSvc,
		comments: commentSvc,
		feeds:    feedSvc,
		notifier: notifier,
		seeder:   seeder,
		logger:   logger,
	}
}

func (e *Engine) Initialize(ctx context.Context) error {
	e.initMu.Lock()
	defer e.initMu.Unlock()

	if e.ready.Load() {
		return nil
	}

	if e.seeder != nil {
		postIDs, err := e.seeder.Seed(ctx)
		if err != nil {
			return err
		}
		// Fixture reply counts are always derived, never trusted
		for _, id := range postIDs {
			if _, err := e.comments.SyncReplyCount(ctx, id); err != nil {
				return err
			}
		}
		e.logger.Info("store seeded", slog.Int("posts", len(postIDs)))
	}

	e.ready.Store(true)
	return nil
}

// checkReady is the gate every operation passes through.
func (e *Engine) checkReady() error {
	if !e.ready.Load() {
		return ErrNotReady
	}
	return nil
}

func (e *Engine) CreatePost(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}
	return e.posts.CreatePost(ctx, req)
}

func (e *Engine) GetPost(ctx context.Context, postID string) (*feeds.PostView, error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}
	return e.feeds.GetPost(ctx, postID)
}

func (e *Engine) TogglePostUpvote(ctx context.Context, postID string) (*posts.VoteUpdate, error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}
	return e.posts.ToggleUpvote(ctx, postID)
}

func (e *Engine) TogglePostDownvote(ctx context.Context, postID string) (*posts.VoteUpdate, error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}
	return e.posts.ToggleDownvote(ctx, postID)
}

func (e *Engine) ListHot(ctx context.Context) ([]*feeds.PostView, error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}
	return e.feeds.ListHot(ctx)
}

func (e *Engine) ListNew(ctx context.Context) ([]*feeds.PostView, error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}
	return e.feeds.ListNew(ctx)
}

func (e *Engine) ListUserPosts(ctx context.Context) ([]*feeds.PostView, error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}
	return e.feeds.ListUserPosts(ctx)
}

func (e *Engine) CreateComment(ctx context.Context, req comments.CreateCommentRequest) (*comments.Comment, error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}
	return e.comments.CreateComment(ctx, req)
}

func (e *Engine) GetCommentsForPost(ctx context.Context, postID string) ([]*comments.CommentView, error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}
	return e.comments.GetCommentsForPost(ctx, postID)
}

func (e *Engine) ToggleCommentUpvote(ctx context.Context, commentID string) (*comments.VoteUpdate, error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}
	return e.comments.ToggleUpvote(ctx, commentID)
}

func (e *Engine) ToggleCommentDownvote(ctx context.Context, commentID string) (*comments.VoteUpdate, error) {
	if err := e.checkReady(); err != nil {
		return nil, err
	}
	return e.comments.ToggleDownvote(ctx, commentID)
}

func (e *Engine) SubscribeToUpdates(handler updates.Handler) func() {
	return e.notifier.Subscribe(handler)
}
