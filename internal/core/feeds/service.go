package feeds

import (
	"context"
	"log/slog"
	"time"

	"Scoops/internal/core/posts"
	"Scoops/internal/core/votes"
)

// feedService implements the Service interface.
// Pure reads: ranking works on a copy of the collection and never touches
// canonical storage order.
type feedService struct {
	postRepo  posts.Repository
	voteStore *votes.Store
	logger    *slog.Logger
	now       func() time.Time
}

// NewFeedService creates a new feed service instance.
// voteStore is the post-scoped store used to decorate views.
func NewFeedService(postRepo posts.Repository, voteStore *votes.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &feedService{
		postRepo:  postRepo,
		voteStore: voteStore,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *feedService) ListHot(ctx context.Context) ([]*PostView, error) {
	list, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.decorate(SortHot(list)), nil
}

func (s *feedService) ListNew(ctx context.Context) ([]*PostView, error) {
	list, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.decorate(SortNew(list)), nil
}

func (s *feedService) ListUserPosts(ctx context.Context) ([]*PostView, error) {
	list, err := s.postRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	mine := make([]*posts.Post, 0)
	for _, p := range list {
		if p.IsUserPost {
			mine = append(mine, p)
		}
	}
	return s.decorate(SortNew(mine)), nil
}

func (s *feedService) GetPost(ctx context.Context, postID string) (*PostView, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	views := s.decorate([]*posts.Post{post})
	return views[0], nil
}

// decorate renders relative ages and attaches the session voter's membership
// flags to each entry.
func (s *feedService) decorate(list []*posts.Post) []*PostView {
	now := s.now().UTC()
	views := make([]*PostView, 0, len(list))
	for _, p := range list {
		p.Timestamp = posts.RelativeAge(p.CreatedAt, now)
		views = append(views, &PostView{
			Post:        *p,
			IsUpvoted:   s.voteStore.IsUpvoted(p.ID),
			IsDownvoted: s.voteStore.IsDownvoted(p.ID),
		})
	}
	return views
}
