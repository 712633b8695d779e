package compass

import (
	gomath "math"
	"testing"

	"github.com/automoto/peerfinder/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

var testOverlay = Overlay{
	Geometry:      testGeometry,
	ArrowDistance: 36,
	OccludedAlpha: 0.5,
}

func testFrame() Frame {
	return Frame{
		Viewer:   Viewer{Position: math.Vec2{X: -32, Y: 32}, Zoom: 1, UIScale: 1},
		Location: "farm",
		View:     gamemath.NewRect(-100, -100, 200, 200),
		Settings: DefaultSettings(),
	}
}

// offscreenPeer has its box centred on (300, 0).
func offscreenPeer(id PeerID) Peer {
	return Peer{ID: id, Generation: 1, Name: "penny", Position: math.Vec2{X: 268, Y: 32}, Location: "farm"}
}

func TestAppendMarkers(t *testing.T) {
	tr := NewTracker()
	peer := offscreenPeer(1)
	tr.Reconcile([]Peer{peer})

	markers := testOverlay.AppendMarkers(nil, testFrame(), []Peer{peer}, tr)
	require.Len(t, markers, 1)

	m := markers[0]
	assert.Equal(t, PeerID(1), m.PeerID)
	assert.InDelta(t, 150.0, m.Position.X, 1e-9)
	assert.InDelta(t, 100.0, m.Position.Y, 1e-9)
	assert.InDelta(t, 186.0, m.ArrowPosition.X, 1e-9)
	assert.True(t, m.ShowBubble)
	assert.True(t, m.ShowArrow)
	assert.Equal(t, 1.0, m.Alpha)
	require.NotNil(t, m.Bubble)
	assert.Equal(t, 'P', m.Bubble.Initial)
}

func TestAppendMarkersSkipsIneligiblePeers(t *testing.T) {
	visible := offscreenPeer(1)
	visible.Position = math.Vec2{}
	hidden := offscreenPeer(2)
	hidden.Hidden = true
	elsewhere := offscreenPeer(3)
	elsewhere.Location = "town"
	split := offscreenPeer(4)
	split.SplitScreen = true

	markers := testOverlay.AppendMarkers(nil, testFrame(), []Peer{visible, hidden, elsewhere, split}, NewTracker())
	assert.Empty(t, markers)
}

func TestAppendMarkersDisabled(t *testing.T) {
	peers := []Peer{offscreenPeer(1)}

	f := testFrame()
	f.Settings.HideCompassArrow = true
	f.Settings.HideCompassBubble = true
	assert.Empty(t, testOverlay.AppendMarkers(nil, f, peers, NewTracker()))

	f = testFrame()
	f.ViewerHidden = true
	assert.Empty(t, testOverlay.AppendMarkers(nil, f, peers, NewTracker()))
}

func TestAppendMarkersWithoutBubble(t *testing.T) {
	peers := []Peer{offscreenPeer(1)}

	// Tracker has not reconciled yet: arrow only.
	markers := testOverlay.AppendMarkers(nil, testFrame(), peers, NewTracker())
	require.Len(t, markers, 1)
	assert.False(t, markers[0].ShowBubble)
	assert.True(t, markers[0].ShowArrow)
	assert.Nil(t, markers[0].Bubble)

	// No bubble and no arrow: nothing to draw.
	f := testFrame()
	f.Settings.HideCompassArrow = true
	assert.Empty(t, testOverlay.AppendMarkers(nil, f, peers, NewTracker()))
}

func TestAppendMarkersBubbleOnlyUsesSmallerOffset(t *testing.T) {
	peers := []Peer{offscreenPeer(1)}
	tr := NewTracker()
	tr.Reconcile(peers)

	f := testFrame()
	f.Settings.HideCompassArrow = true
	markers := testOverlay.AppendMarkers(nil, f, peers, tr)
	require.Len(t, markers, 1)
	assert.InDelta(t, 160.0, markers[0].Position.X, 1e-9)
	assert.False(t, markers[0].ShowArrow)
}

func TestAppendMarkersAlpha(t *testing.T) {
	peers := []Peer{offscreenPeer(1)}
	tr := NewTracker()
	tr.Reconcile(peers)

	f := testFrame()
	f.Settings.Alpha = 80
	f.Occluded = func(math.Vec2) bool { return true }

	m := testOverlay.AppendMarkers(nil, f, peers, tr)[0]
	assert.InDelta(t, 0.5, m.Alpha, 1e-9)
	assert.InDelta(t, 0.8, m.ArrowAlpha, 1e-9)

	f.Settings.Alpha = 30
	m = testOverlay.AppendMarkers(nil, f, peers, tr)[0]
	assert.InDelta(t, 0.3, m.Alpha, 1e-9)
}

func TestArrowPosition(t *testing.T) {
	p := ArrowPosition(math.Vec2{X: 10, Y: 10}, gomath.Pi/2, 36)
	assert.InDelta(t, 10.0, p.X, 1e-9)
	assert.InDelta(t, 46.0, p.Y, 1e-9)
}

func TestMarkerAlpha(t *testing.T) {
	assert.Equal(t, 1.0, MarkerAlpha(false, 0.5, 1))
	assert.Equal(t, 0.5, MarkerAlpha(true, 0.5, 1))
	assert.Equal(t, 0.2, MarkerAlpha(true, 0.5, 0.2))
	assert.Equal(t, 0.7, MarkerAlpha(false, 0.5, 0.7))
}
