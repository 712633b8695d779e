package compass

import (
	"unicode"

	"github.com/yohamta/donburi/features/math"
)

// PeerID is the stable multiplayer identity of a remote participant.
type PeerID int64

// Peer is a snapshot of one connected remote participant.
type Peer struct {
	ID PeerID
	// Generation changes whenever the live entity behind ID is recreated.
	Generation  uint64
	Name        string
	Position    math.Vec2
	Location    string
	Hidden      bool
	SplitScreen bool
}

// Bubble is the compass bubble tracked for one peer.
type Bubble struct {
	PeerID     PeerID
	Generation uint64
	Name       string
	Initial    rune
	// LastPosition is where the peer stood at the last reconcile.
	LastPosition math.Vec2
}

// Tracker owns the peer → bubble mapping for a session.
// It is not safe for concurrent use; the game loop is its only caller.
type Tracker struct {
	bubbles map[PeerID]*Bubble
}

func NewTracker() *Tracker {
	return &Tracker{bubbles: make(map[PeerID]*Bubble)}
}

// Reconcile makes sure every connected peer has a bubble for its current
// entity generation. It returns how many bubbles were created or replaced.
// Peers missing from connected are left alone; OnDisconnect removes them.
func (t *Tracker) Reconcile(connected []Peer) int {
	changed := 0
	for _, p := range connected {
		if b, ok := t.bubbles[p.ID]; ok && b.Generation == p.Generation {
			b.LastPosition = p.Position
			continue
		}
		t.bubbles[p.ID] = newBubble(p)
		changed++
	}
	return changed
}

// OnDisconnect drops the bubble for id. Unknown ids are ignored.
func (t *Tracker) OnDisconnect(id PeerID) {
	delete(t.bubbles, id)
}

// OnSessionReset drops every bubble.
func (t *Tracker) OnSessionReset() {
	clear(t.bubbles)
}

// Bubble returns the bubble for id, if one has been created yet.
func (t *Tracker) Bubble(id PeerID) (*Bubble, bool) {
	b, ok := t.bubbles[id]
	return b, ok
}

func (t *Tracker) Len() int {
	return len(t.bubbles)
}

func newBubble(p Peer) *Bubble {
	initial := '?'
	for _, r := range p.Name {
		initial = unicode.ToUpper(r)
		break
	}
	return &Bubble{
		PeerID:       p.ID,
		Generation:   p.Generation,
		Name:         p.Name,
		Initial:      initial,
		LastPosition: p.Position,
	}
}
