package posts

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"Scoops/internal/core/hashtags"
	"Scoops/internal/core/updates"
	"Scoops/internal/core/votes"
)

// postService implements the Service interface.
// A single mutex serializes mutations so a vote-store transition and the
// counter write it implies are never interleaved with another call.
type postService struct {
	repo      Repository
	voteStore *votes.Store
	notifier  *updates.Notifier
	logger    *slog.Logger
	now       func() time.Time
	mu        sync.Mutex
}

// NewPostService creates a new post service instance.
// voteStore must be the post-scoped store; comments keep their own.
func NewPostService(repo Repository, voteStore *votes.Store, notifier *updates.Notifier, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &postService{
		repo:      repo,
		voteStore: voteStore,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *postService) CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}

	clean, tags := hashtags.Extract(req.Content)
	now := s.now().UTC()

	post := &Post{
		ID:         "post_" + uuid.NewString(),
		Content:    clean,
		Timestamp:  "now",
		CreatedAt:  now,
		Hashtags:   tags,
		IsUserPost: true,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info("post created",
		slog.String("postID", post.ID),
		slog.Int("hashtags", len(tags)))

	return post, nil
}

func (s *postService) GetPost(ctx context.Context, postID string) (*Post, error) {
	post, err := s.repo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Timestamp = RelativeAge(post.CreatedAt, s.now().UTC())
	return post, nil
}

func (s *postService) ToggleUpvote(ctx context.Context, postID string) (*VoteUpdate, error) {
	return s.toggle(ctx, postID, votes.DirectionUp)
}

func (s *postService) ToggleDownvote(ctx context.Context, postID string) (*VoteUpdate, error) {
	return s.toggle(ctx, postID, votes.DirectionDown)
}

// toggle runs one vote transition end to end: existence check, vote-store
// transition, counter write, then notifier publish. The existence check comes
// first so an unknown id leaves the vote store untouched.
func (s *postService) toggle(ctx context.Context, postID string, dir votes.Direction) (*VoteUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	res, err := s.voteStore.Toggle(postID, dir)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.ApplyVoteDeltas(ctx, postID, res.UpvoteDelta, res.DownvoteDelta)
	if err != nil {
		// The post existed a moment ago under the same lock; this is a bug,
		// not a user error.
		s.logger.Error("vote counter write failed after store transition",
			slog.String("postID", postID),
			slog.Any("error", err))
		return nil, err
	}

	update := &VoteUpdate{
		PostID:      postID,
		Upvotes:     post.Upvotes,
		Downvotes:   post.Downvotes,
		IsUpvoted:   res.Upvoted,
		IsDownvoted: res.Downvoted,
	}

	s.notifier.Notify(postID, updates.Patch{
		Kind:      updates.KindPost,
		Upvotes:   updates.Int(post.Upvotes),
		Downvotes: updates.Int(post.Downvotes),
		Upvoted:   updates.Bool(res.Upvoted),
		Downvoted: updates.Bool(res.Downvoted),
	})

	return update, nil
}
