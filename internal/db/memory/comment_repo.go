package memory

import (
	"context"
	"sync"

	"Scoops/internal/core/comments"
)

// CommentRepository is the canonical in-memory comment collection, stored
// newest-first across all posts. Hands out copies only. Safe for concurrent
// use.
type CommentRepository struct {
	mu       sync.RWMutex
	comments []*comments.Comment
}

// NewCommentRepository creates an empty comment repository.
func NewCommentRepository() *CommentRepository {
	return &CommentRepository{}
}

func (r *CommentRepository) Create(ctx context.Context, comment *comments.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.comments = append([]*comments.Comment{cloneComment(comment)}, r.comments...)
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*comments.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.comments {
		if c.ID == id {
			return cloneComment(c), nil
		}
	}
	return nil, comments.ErrCommentNotFound
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]*comments.Comment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*comments.Comment, 0)
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, cloneComment(c))
		}
	}
	return out, nil
}

func (r *CommentRepository) CountByPost(ctx context.Context, postID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, c := range r.comments {
		if c.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (r *CommentRepository) ApplyVoteDeltas(ctx context.Context, id string, upDelta, downDelta int) (*comments.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.comments {
		if c.ID == id {
			c.Upvotes = floorZero(c.Upvotes + upDelta)
			c.Downvotes = floorZero(c.Downvotes + downDelta)
			return cloneComment(c), nil
		}
	}
	return nil, comments.ErrCommentNotFound
}

func cloneComment(c *comments.Comment) *comments.Comment {
	out := *c
	if c.Hashtags != nil {
		out.Hashtags = append([]string(nil), c.Hashtags...)
	}
	return &out
}
