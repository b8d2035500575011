package comments

import "context"

// Service defines the business logic interface for comment operations.
// Owns the 10-comment cap and the reply-count synchronization that keeps a
// post's Replies field equal to its live comment count.
type Service interface {
	// CreateComment validates and stores a reply to a post, then
	// resynchronizes the post's reply count and publishes the new count.
	// Fails with posts.ErrPostNotFound for an unknown post, ErrEmptyContent
	// for blank content, and ErrCommentLimitReached once the post carries
	// MaxCommentsPerPost comments. On failure nothing is mutated.
	CreateComment(ctx context.Context, req CreateCommentRequest) (*Comment, error)

	// GetCommentsForPost returns the post's comments newest-first, at most
	// MaxCommentsPerPost, decorated with the session voter's membership flags.
	GetCommentsForPost(ctx context.Context, postID string) ([]*CommentView, error)

	// ToggleUpvote applies one up transition for the session voter on a
	// comment; identical contract to the post variant, tracked in the
	// comment-scoped vote store.
	ToggleUpvote(ctx context.Context, commentID string) (*VoteUpdate, error)

	// ToggleDownvote is the mirror image of ToggleUpvote.
	ToggleDownvote(ctx context.Context, commentID string) (*VoteUpdate, error)

	// SyncReplyCount recomputes the post's reply count from the live comment
	// collection, writes it to the post, and returns it. The count is always
	// recomputed, never incremented in place, so it cannot drift.
	SyncReplyCount(ctx context.Context, postID string) (int, error)
}

// Repository defines the data access interface for the canonical comment
// collection. Implementations hand out copies only.
type Repository interface {
	// Create prepends comment to the collection (newest-first storage order)
	Create(ctx context.Context, comment *Comment) error

	// GetByID retrieves a comment by id
	// Returns ErrCommentNotFound if the id is unknown
	GetByID(ctx context.Context, id string) (*Comment, error)

	// ListByPost returns the post's comments in storage order (newest first)
	ListByPost(ctx context.Context, postID string) ([]*Comment, error)

	// CountByPost reports how many comments the post currently has
	CountByPost(ctx context.Context, postID string) (int, error)

	// ApplyVoteDeltas adjusts the vote counters, flooring at zero, and
	// returns the updated comment
	ApplyVoteDeltas(ctx context.Context, id string, upDelta, downDelta int) (*Comment, error)
}
