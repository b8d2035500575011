package updates

// EntityKind distinguishes post and comment patches on the shared stream.
type EntityKind string

const (
	KindPost    EntityKind = "post"
	KindComment EntityKind = "comment"
)

// Patch is a sparse merge patch for a single post or comment. Only non-nil
// fields carry meaning; subscribers merge them into their local copy of the
// entity by id and ignore ids they do not hold. The notifier itself never
// filters by id.
type Patch struct {
	Kind      EntityKind `json:"kind"`
	Upvotes   *int       `json:"upvotes,omitempty"`
	Downvotes *int       `json:"downvotes,omitempty"`
	Replies   *int       `json:"replies,omitempty"`
	Upvoted   *bool      `json:"isUpvoted,omitempty"`
	Downvoted *bool      `json:"isDownvoted,omitempty"`
}

// Update pairs an entity id with its patch, the unit of delivery on the
// outbound stream.
type Update struct {
	EntityID string `json:"entityId"`
	Patch    Patch  `json:"patch"`
}

// Handler receives one delivered update.
type Handler func(entityID string, patch Patch)

// Int returns a pointer to v, for building sparse patches.
func Int(v int) *int { return &v }

// Bool returns a pointer to b, for building sparse patches.
func Bool(b bool) *bool { return &b }
