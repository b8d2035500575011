package memory

import (
	"context"
	"sync"

	"Scoops/internal/core/posts"
)

// PostRepository is the canonical in-memory post collection. Storage order
// is most-recent-first (Create prepends). The repository owns the collection
// exclusively and hands out copies only, so callers never observe or mutate
// shared state. Safe for concurrent use.
type PostRepository struct {
	mu    sync.RWMutex
	posts []*posts.Post
}

// NewPostRepository creates an empty post repository.
func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func (r *PostRepository) Create(ctx context.Context, post *posts.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts = append([]*posts.Post{clonePost(post)}, r.posts...)
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id string) (*posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.ID == id {
			return clonePost(p), nil
		}
	}
	return nil, posts.ErrPostNotFound
}

func (r *PostRepository) List(ctx context.Context) ([]*posts.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*posts.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, clonePost(p))
	}
	return out, nil
}

func (r *PostRepository) ApplyVoteDeltas(ctx context.Context, id string, upDelta, downDelta int) (*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.posts {
		if p.ID == id {
			p.Upvotes = floorZero(p.Upvotes + upDelta)
			p.Downvotes = floorZero(p.Downvotes + downDelta)
			return clonePost(p), nil
		}
	}
	return nil, posts.ErrPostNotFound
}

func (r *PostRepository) SetReplies(ctx context.Context, id string, replies int) (*posts.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.posts {
		if p.ID == id {
			p.Replies = floorZero(replies)
			return clonePost(p), nil
		}
	}
	return nil, posts.ErrPostNotFound
}

func clonePost(p *posts.Post) *posts.Post {
	out := *p
	if p.Hashtags != nil {
		out.Hashtags = append([]string(nil), p.Hashtags...)
	}
	return &out
}

// floorZero keeps counters non-negative. Deltas consistent with the vote
// store never reach the floor; this guards the invariant anyway.
func floorZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
