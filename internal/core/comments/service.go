package comments

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"Scoops/internal/core/hashtags"
	"Scoops/internal/core/posts"
	"Scoops/internal/core/updates"
	"Scoops/internal/core/votes"
)

// commentService implements the Service interface.
// The mutex serializes mutations so the cap check, the insert, and the
// reply-count write behave as one atomic step.
type commentService struct {
	repo      Repository
	postRepo  posts.Repository
	voteStore *votes.Store
	notifier  *updates.Notifier
	logger    *slog.Logger
	now       func() time.Time
	mu        sync.Mutex
}

// NewCommentService creates a new comment service instance.
// voteStore must be the comment-scoped store, never shared with posts.
func NewCommentService(repo Repository, postRepo posts.Repository, voteStore *votes.Store, notifier *updates.Notifier, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &commentService{
		repo:      repo,
		postRepo:  postRepo,
		voteStore: voteStore,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *commentService) CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.postRepo.GetByID(ctx, req.PostID); err != nil {
		return nil, err
	}

	count, err := s.repo.CountByPost(ctx, req.PostID)
	if err != nil {
		return nil, err
	}
	if count >= MaxCommentsPerPost {
		return nil, ErrCommentLimitReached
	}

	clean, tags := hashtags.Extract(req.Content)
	now := s.now().UTC()

	comment := &Comment{
		ID:            "comment_" + uuid.NewString(),
		PostID:        req.PostID,
		Content:       clean,
		Timestamp:     "now",
		CreatedAt:     now,
		Hashtags:      tags,
		IsUserComment: true,
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	if _, err := s.syncReplyCount(ctx, req.PostID); err != nil {
		return nil, err
	}

	s.logger.Info("comment created",
		slog.String("commentID", comment.ID),
		slog.String("postID", req.PostID))

	return comment, nil
}

func (s *commentService) GetCommentsForPost(ctx context.Context, postID string) ([]*CommentView, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	list, err := s.repo.ListByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if len(list) > MaxCommentsPerPost {
		list = list[:MaxCommentsPerPost]
	}

	now := s.now().UTC()
	views := make([]*CommentView, 0, len(list))
	for _, c := range list {
		c.Timestamp = posts.RelativeAge(c.CreatedAt, now)
		views = append(views, &CommentView{
			Comment:     *c,
			IsUpvoted:   s.voteStore.IsUpvoted(c.ID),
			IsDownvoted: s.voteStore.IsDownvoted(c.ID),
		})
	}
	return views, nil
}

func (s *commentService) ToggleUpvote(ctx context.Context, commentID string) (*VoteUpdate, error) {
	return s.toggle(ctx, commentID, votes.DirectionUp)
}

func (s *commentService) ToggleDownvote(ctx context.Context, commentID string) (*VoteUpdate, error) {
	return s.toggle(ctx, commentID, votes.DirectionDown)
}

func (s *commentService) toggle(ctx context.Context, commentID string, dir votes.Direction) (*VoteUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.GetByID(ctx, commentID); err != nil {
		return nil, err
	}

	res, err := s.voteStore.Toggle(commentID, dir)
	if err != nil {
		return nil, err
	}

	comment, err := s.repo.ApplyVoteDeltas(ctx, commentID, res.UpvoteDelta, res.DownvoteDelta)
	if err != nil {
		s.logger.Error("vote counter write failed after store transition",
			slog.String("commentID", commentID),
			slog.Any("error", err))
		return nil, err
	}

	update := &VoteUpdate{
		CommentID:   commentID,
		Upvotes:     comment.Upvotes,
		Downvotes:   comment.Downvotes,
		IsUpvoted:   res.Upvoted,
		IsDownvoted: res.Downvoted,
	}

	s.notifier.Notify(commentID, updates.Patch{
		Kind:      updates.KindComment,
		Upvotes:   updates.Int(comment.Upvotes),
		Downvotes: updates.Int(comment.Downvotes),
		Upvoted:   updates.Bool(res.Upvoted),
		Downvoted: updates.Bool(res.Downvoted),
	})

	return update, nil
}

func (s *commentService) SyncReplyCount(ctx context.Context, postID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.syncReplyCount(ctx, postID)
}

// syncReplyCount recomputes and writes the reply count, then publishes the
// new value so every mounted list updates its copy of the post.
// Callers must hold s.mu.
func (s *commentService) syncReplyCount(ctx context.Context, postID string) (int, error) {
	count, err := s.repo.CountByPost(ctx, postID)
	if err != nil {
		return 0, err
	}

	if _, err := s.postRepo.SetReplies(ctx, postID, count); err != nil {
		return 0, err
	}

	s.notifier.Notify(postID, updates.Patch{
		Kind:    updates.KindPost,
		Replies: updates.Int(count),
	})

	return count, nil
}
