package updates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localPost is the slice of entity state a subscribing screen keeps for
// itself in these tests.
type localPost struct {
	upvotes   int
	downvotes int
	upvoted   bool
	downvoted bool
}

func (p *localPost) merge(patch Patch) {
	if patch.Upvotes != nil {
		p.upvotes = *patch.Upvotes
	}
	if patch.Downvotes != nil {
		p.downvotes = *patch.Downvotes
	}
	if patch.Upvoted != nil {
		p.upvoted = *patch.Upvoted
	}
	if patch.Downvoted != nil {
		p.downvoted = *patch.Downvoted
	}
}

func TestNotifier_TwoSubscribersConverge(t *testing.T) {
	notifier := NewNotifier()

	screenA := map[string]*localPost{"post-1": {upvotes: 3}}
	screenB := map[string]*localPost{"post-1": {upvotes: 3}}

	subscribe := func(screen map[string]*localPost) {
		notifier.Subscribe(func(entityID string, patch Patch) {
			if post, ok := screen[entityID]; ok {
				post.merge(patch)
			}
		})
	}
	subscribe(screenA)
	subscribe(screenB)

	notifier.Notify("post-1", Patch{
		Kind:    KindPost,
		Upvotes: Int(4),
		Upvoted: Bool(true),
	})

	require.Equal(t, 4, screenA["post-1"].upvotes)
	require.True(t, screenA["post-1"].upvoted)
	assert.Equal(t, *screenA["post-1"], *screenB["post-1"])
}

func TestNotifier_DeliversInSubscriptionOrder(t *testing.T) {
	notifier := NewNotifier()

	var order []string
	notifier.Subscribe(func(string, Patch) { order = append(order, "first") })
	notifier.Subscribe(func(string, Patch) { order = append(order, "second") })
	notifier.Subscribe(func(string, Patch) { order = append(order, "third") })

	notifier.Notify("post-1", Patch{Kind: KindPost})

	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestNotifier_UnknownIDIsSubscriberConcern(t *testing.T) {
	notifier := NewNotifier()

	screen := map[string]*localPost{"post-1": {}}
	calls := 0
	notifier.Subscribe(func(entityID string, patch Patch) {
		calls++
		if post, ok := screen[entityID]; ok {
			post.merge(patch)
		}
	})

	// The notifier delivers regardless of id; the subscriber's merge ignores it
	notifier.Notify("post-unknown", Patch{Kind: KindPost, Upvotes: Int(9)})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, screen["post-1"].upvotes)
}

func TestNotifier_UnsubscribeStopsDelivery(t *testing.T) {
	notifier := NewNotifier()

	calls := 0
	unsubscribe := notifier.Subscribe(func(string, Patch) { calls++ })

	notifier.Notify("post-1", Patch{Kind: KindPost})
	unsubscribe()
	notifier.Notify("post-1", Patch{Kind: KindPost})
	unsubscribe() // second call is harmless

	assert.Equal(t, 1, calls)
	assert.Equal(t, 0, notifier.SubscriberCount())
}

// A handler that unsubscribes itself mid-round is still invoked for that
// round; the round operates on a snapshot of the subscriber list.
func TestNotifier_UnsubscribeDuringRoundStillDelivered(t *testing.T) {
	notifier := NewNotifier()

	var unsubscribeSecond func()
	var order []string

	notifier.Subscribe(func(string, Patch) {
		order = append(order, "first")
		unsubscribeSecond()
	})
	unsubscribeSecond = notifier.Subscribe(func(string, Patch) {
		order = append(order, "second")
	})

	notifier.Notify("post-1", Patch{Kind: KindPost})
	assert.Equal(t, []string{"first", "second"}, order)

	notifier.Notify("post-1", Patch{Kind: KindPost})
	assert.Equal(t, []string{"first", "second", "first"}, order)
}
