package compass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func spawnPeer(id PeerID, name string) Peer {
	return Peer{ID: id, Generation: NextGeneration(), Name: name}
}

func tickN(s *Session, n int, peers []Peer) (reconciles int) {
	for i := 0; i < n; i++ {
		if _, ok := s.Tick(peers); ok {
			reconciles++
		}
	}
	return reconciles
}

func TestNextGenerationIsFresh(t *testing.T) {
	a, b := NextGeneration(), NextGeneration()
	assert.NotEqual(t, a, b)
	assert.Greater(t, b, a)
}

func TestSessionFirstTickReconciles(t *testing.T) {
	s := NewSession(60)
	peers := []Peer{spawnPeer(1, "Leah"), spawnPeer(2, "Harvey")}

	changed, ok := s.Tick(peers)
	require.True(t, ok)
	assert.Equal(t, 2, changed)
	assert.Equal(t, 2, s.Tracker.Len())

	assert.Equal(t, 0, tickN(s, 59, peers))
	assert.Equal(t, 1, tickN(s, 1, peers))
}

func TestSessionPeerLeftTwice(t *testing.T) {
	s := NewSession(60)
	peers := []Peer{spawnPeer(1, "Leah"), spawnPeer(2, "Harvey")}
	s.Tick(peers)

	s.PeerLeft(1)
	s.PeerLeft(1)
	assert.Equal(t, 1, s.Tracker.Len())
	_, ok := s.Tracker.Bubble(1)
	assert.False(t, ok)
	_, ok = s.Tracker.Bubble(2)
	assert.True(t, ok)
}

func TestSessionRecreatedPeerReplacedOnNextReconcile(t *testing.T) {
	s := NewSession(60)
	peers := []Peer{spawnPeer(1, "Leah")}
	s.Tick(peers)
	before, ok := s.Tracker.Bubble(1)
	require.True(t, ok)

	// Same ID, new entity.
	peers[0] = spawnPeer(1, "Leah")

	// Not due yet: the old bubble survives until the schedule fires.
	assert.Equal(t, 0, tickN(s, 59, peers))
	still, _ := s.Tracker.Bubble(1)
	assert.Same(t, before, still)

	changed, ok := s.Tick(peers)
	require.True(t, ok)
	assert.Equal(t, 1, changed)

	after, ok := s.Tracker.Bubble(1)
	require.True(t, ok)
	assert.NotEqual(t, before.Generation, after.Generation)
	assert.Equal(t, peers[0].Generation, after.Generation)
	assert.Equal(t, 1, s.Tracker.Len())
}

func TestSessionReset(t *testing.T) {
	s := NewSession(60)
	peers := []Peer{spawnPeer(1, "Leah"), spawnPeer(2, "Harvey"), spawnPeer(3, "Emily")}
	s.Tick(peers)
	tickN(s, 10, peers)

	s.Reset()
	assert.Equal(t, 0, s.Tracker.Len())

	changed, ok := s.Tick(peers)
	require.True(t, ok, "first tick after a reset reconciles")
	assert.Equal(t, 3, changed)
}
