package posts

import "context"

// Service defines the business logic interface for post mutations.
// Read-side feed queries live in the feeds package; this service owns
// creation and vote toggles.
type Service interface {
	// CreatePost validates and stores a new post composed this session.
	// Hashtags are extracted from the raw content, the cleaned text becomes
	// the display content, and the post is prepended to the canonical
	// collection. Returns ErrEmptyContent if the raw content trims to "".
	CreatePost(ctx context.Context, req CreatePostRequest) (*Post, error)

	// GetPost retrieves a single post by id.
	// Returns ErrPostNotFound if the id is unknown.
	GetPost(ctx context.Context, postID string) (*Post, error)

	// ToggleUpvote applies one up transition for the session voter.
	// Counter updates and membership flags are published to the notifier
	// after the canonical state has been mutated.
	ToggleUpvote(ctx context.Context, postID string) (*VoteUpdate, error)

	// ToggleDownvote is the mirror image of ToggleUpvote.
	ToggleDownvote(ctx context.Context, postID string) (*VoteUpdate, error)
}

// Repository defines the data access interface for the canonical post
// collection. Implementations own the collection exclusively and hand out
// copies only; callers never observe or mutate shared state.
type Repository interface {
	// Create prepends post to the collection (storage order is
	// most-recent-first)
	Create(ctx context.Context, post *Post) error

	// GetByID retrieves a post by id
	// Returns ErrPostNotFound if the id is unknown
	GetByID(ctx context.Context, id string) (*Post, error)

	// List returns the whole collection in storage order
	List(ctx context.Context) ([]*Post, error)

	// ApplyVoteDeltas adjusts the vote counters by the given deltas and
	// returns the updated post. Counters are floored at zero; the floor is
	// defensive, deltas consistent with the vote store never reach it.
	ApplyVoteDeltas(ctx context.Context, id string, upDelta, downDelta int) (*Post, error)

	// SetReplies overwrites the denormalized reply count with a value
	// recomputed from the live comment collection
	SetReplies(ctx context.Context, id string, replies int) (*Post, error)
}
