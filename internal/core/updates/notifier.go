package updates

import "sync"

// Notifier fans mutation results out to every subscribed view so that
// independently mounted screens converge on the same counters without any
// shared component state.
//
// Construct one Notifier at process start and pass it by reference to every
// consumer; there is no package-level instance.
type Notifier struct {
	mu     sync.Mutex
	nextID int
	subs   []subscription // kept in subscription order
}

type subscription struct {
	id      int
	handler Handler
}

// NewNotifier creates an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers handler and returns an unsubscribe function.
// Unsubscribing more than once is harmless.
func (n *Notifier) Subscribe(handler Handler) func() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscription{id: id, handler: handler})

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		for i, sub := range n.subs {
			if sub.id == id {
				n.subs = append(n.subs[:i], n.subs[i+1:]...)
				return
			}
		}
	}
}

// Notify synchronously invokes every currently subscribed handler once, in
// subscription order, with the same (entityID, patch) pair.
//
// The subscriber list is snapshotted at the start of the call: a handler that
// unsubscribes during the round is still invoked for this round, and one that
// subscribes during the round is not. Because delivery completes inside the
// mutating call, a later update for an entity is never observed before an
// earlier one.
func (n *Notifier) Notify(entityID string, patch Patch) {
	n.mu.Lock()
	round := make([]subscription, len(n.subs))
	copy(round, n.subs)
	n.mu.Unlock()

	for _, sub := range round {
		sub.handler(entityID, patch)
	}
}

// SubscriberCount reports how many handlers are currently subscribed.
func (n *Notifier) SubscriberCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
