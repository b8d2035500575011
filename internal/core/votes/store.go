package votes

import "sync"

// Store tracks the session voter's vote state per entity id and enforces
// mutual exclusion between the up and down directions: an id is a member of
// at most one of the upvoted/downvoted sets at any time.
//
// Posts and comments are tracked by separate Store instances so the two id
// spaces never share state, even if an id value happens to collide.
// Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	polarity Polarity
	states   map[string]State
}

// NewStore creates an empty vote store with the given polarity.
// Every entity id starts in StateNone.
func NewStore(polarity Polarity) *Store {
	return &Store{
		polarity: polarity,
		states:   make(map[string]State),
	}
}

// Toggle applies one transition for id in the given direction and returns
// the resulting membership flags and counter deltas.
//
// Transition table (mirrored for down):
//   - None -> Up    (upvote +1)
//   - Up   -> None  (upvote -1), the un-vote path
//   - Down -> Up    (upvote +1, downvote -1), switching sides
//
// A binary store rejects the down direction with ErrInvalidDirection and
// leaves state untouched.
func (s *Store) Toggle(id string, dir Direction) (Result, error) {
	if dir != DirectionUp && dir != DirectionDown {
		return Result{}, ErrInvalidDirection
	}
	if s.polarity == PolarityBinary && dir == DirectionDown {
		return Result{}, ErrInvalidDirection
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.states[id]
	next := StateNone
	var res Result

	switch dir {
	case DirectionUp:
		switch current {
		case StateUp:
			next = StateNone
			res.UpvoteDelta = -1
		case StateDown:
			next = StateUp
			res.UpvoteDelta = 1
			res.DownvoteDelta = -1
		default:
			next = StateUp
			res.UpvoteDelta = 1
		}
	case DirectionDown:
		switch current {
		case StateDown:
			next = StateNone
			res.DownvoteDelta = -1
		case StateUp:
			next = StateDown
			res.DownvoteDelta = 1
			res.UpvoteDelta = -1
		default:
			next = StateDown
			res.DownvoteDelta = 1
		}
	}

	if next == StateNone {
		delete(s.states, id)
	} else {
		s.states[id] = next
	}

	res.Upvoted = next == StateUp
	res.Downvoted = next == StateDown
	return res, nil
}

// State returns the current vote state for id without mutating it.
func (s *Store) State(id string) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.states[id]
}

// IsUpvoted reports whether id is currently in the upvoted set.
func (s *Store) IsUpvoted(id string) bool {
	return s.State(id) == StateUp
}

// IsDownvoted reports whether id is currently in the downvoted set.
func (s *Store) IsDownvoted(id string) bool {
	return s.State(id) == StateDown
}
