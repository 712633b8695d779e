package compass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestReconcileCreatesOneBubblePerPeer(t *testing.T) {
	tr := NewTracker()
	peers := []Peer{
		{ID: 1, Generation: 1, Name: "abigail"},
		{ID: 2, Generation: 1, Name: "Sam"},
	}

	assert.Equal(t, 2, tr.Reconcile(peers))
	assert.Equal(t, 2, tr.Len())

	b, ok := tr.Bubble(1)
	require.True(t, ok)
	assert.Equal(t, 'A', b.Initial)
	assert.Equal(t, "abigail", b.Name)
}

func TestReconcileIsIdempotent(t *testing.T) {
	tr := NewTracker()
	peers := []Peer{{ID: 7, Generation: 3, Name: "leah"}}
	tr.Reconcile(peers)
	first, _ := tr.Bubble(7)

	peers[0].Position = math.Vec2{X: 10, Y: 20}
	assert.Equal(t, 0, tr.Reconcile(peers))
	assert.Equal(t, 1, tr.Len())

	second, _ := tr.Bubble(7)
	assert.Same(t, first, second)
	assert.Equal(t, math.Vec2{X: 10, Y: 20}, second.LastPosition)
}

func TestReconcileReplacesRecreatedEntity(t *testing.T) {
	tr := NewTracker()
	tr.Reconcile([]Peer{{ID: 7, Generation: 3, Name: "leah"}})
	old, _ := tr.Bubble(7)

	assert.Equal(t, 1, tr.Reconcile([]Peer{{ID: 7, Generation: 4, Name: "leah"}}))
	assert.Equal(t, 1, tr.Len())

	b, _ := tr.Bubble(7)
	assert.NotSame(t, old, b)
	assert.Equal(t, uint64(4), b.Generation)
}

func TestReconcileKeepsAbsentPeers(t *testing.T) {
	tr := NewTracker()
	tr.Reconcile([]Peer{{ID: 1, Generation: 1}, {ID: 2, Generation: 1}})
	tr.Reconcile([]Peer{{ID: 1, Generation: 1}})

	_, ok := tr.Bubble(2)
	assert.True(t, ok)
}

func TestOnDisconnect(t *testing.T) {
	tr := NewTracker()
	tr.Reconcile([]Peer{{ID: 1, Generation: 1}, {ID: 2, Generation: 1}})

	tr.OnDisconnect(1)
	_, ok := tr.Bubble(1)
	assert.False(t, ok)
	_, ok = tr.Bubble(2)
	assert.True(t, ok)

	assert.NotPanics(t, func() { tr.OnDisconnect(99) })
	assert.Equal(t, 1, tr.Len())
}

func TestOnSessionReset(t *testing.T) {
	tr := NewTracker()
	tr.Reconcile([]Peer{{ID: 1, Generation: 1}, {ID: 2, Generation: 1}})

	tr.OnSessionReset()
	assert.Zero(t, tr.Len())

	// The tracker is usable again after a reset.
	assert.Equal(t, 1, tr.Reconcile([]Peer{{ID: 1, Generation: 1}}))
}

func TestBubbleInitial(t *testing.T) {
	for name, want := range map[string]rune{
		"":       '?',
		"élise":  'É',
		"krobus": 'K',
		"42":     '4',
	} {
		assert.Equal(t, want, newBubble(Peer{Name: name}).Initial, name)
	}
}
