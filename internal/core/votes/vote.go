package votes

// Direction identifies which way a toggle goes
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Polarity selects which vote semantics a Store enforces.
// One generic store replaces the historical like-only and upvote/downvote
// code paths.
type Polarity int

const (
	// PolarityBinary models like/unlike: only the up direction exists
	PolarityBinary Polarity = iota

	// PolarityTernary models up/down/none with mutual exclusion between
	// the two directions
	PolarityTernary
)

// State is the session voter's current relationship to a single entity.
// Every state is reachable from every other; there is no terminal state.
type State int

const (
	StateNone State = iota
	StateUp
	StateDown
)

// Result describes the outcome of one toggle transition: the membership
// flags after the transition and the counter deltas it implies. Each delta
// is -1, 0 or +1 and reflects exactly one membership change per affected set.
type Result struct {
	Upvoted       bool `json:"upvoted"`
	Downvoted     bool `json:"downvoted"`
	UpvoteDelta   int  `json:"upvoteDelta"`
	DownvoteDelta int  `json:"downvoteDelta"`
}
