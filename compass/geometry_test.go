package compass

import (
	gomath "math"
	"math/rand"
	"testing"

	"github.com/automoto/peerfinder/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

var testGeometry = Geometry{
	TileSize:         64,
	BubbleOnlyOffset: 40,
	WithArrowOffset:  50,
}

var unitViewer = Viewer{Zoom: 1, UIScale: 1}

func TestPeerBoundsCenteredLikeViewer(t *testing.T) {
	pos := math.Vec2{X: 268, Y: 32}
	b := testGeometry.PeerBounds(pos)

	assert.Equal(t, gamemath.NewRect(276, -64, 48, 128), b)
	assert.Equal(t, math.Vec2{X: 300, Y: 0}, b.Center())
	assert.Equal(t, testGeometry.ViewerCenter(pos), b.Center())
}

func TestLocateExample(t *testing.T) {
	view := gamemath.NewRect(-100, -100, 200, 200)
	peerFeet := math.Vec2{X: 268, Y: 32} // box centre (300, 0)

	t.Run("viewer centre on origin", func(t *testing.T) {
		v := unitViewer
		v.Position = math.Vec2{X: -32, Y: 32}

		fix, ok := testGeometry.Locate(v, peerFeet, view, OffsetWithArrow)
		require.True(t, ok)

		world := Denormalize(fix.Position, v, view)
		assert.InDelta(t, 50.0, world.X, 1e-9)
		assert.InDelta(t, 0.0, world.Y, 1e-9)
		assert.InDelta(t, 0.0, fix.Angle, 1e-9)
		assert.InDelta(t, 150.0, fix.Position.X, 1e-9)
		assert.InDelta(t, 100.0, fix.Position.Y, 1e-9)
	})

	t.Run("viewer anchor on origin", func(t *testing.T) {
		v := unitViewer

		fix, ok := testGeometry.Locate(v, peerFeet, view, OffsetWithArrow)
		require.True(t, ok)

		world := Denormalize(fix.Position, v, view)
		assert.InDelta(t, 50.0, world.X, 1e-9)
		assert.InDelta(t, 0.0, world.Y, 35)
		assert.InDelta(t, 0.0, fix.Angle, 0.2)
	})
}

func TestLocateVisiblePeer(t *testing.T) {
	view := gamemath.NewRect(-100, -100, 200, 200)

	for _, feet := range []math.Vec2{
		{X: 0, Y: 0},
		{X: 90, Y: 90},
		{X: -140, Y: 0}, // box still reaches into the view
		{X: 0, Y: 190},
	} {
		_, ok := testGeometry.Locate(unitViewer, feet, view, OffsetWithArrow)
		assert.False(t, ok, "peer at %v should be on screen", feet)
	}
}

func TestLocateOffsetModes(t *testing.T) {
	view := gamemath.NewRect(-100, -100, 200, 200)
	v := unitViewer
	v.Position = math.Vec2{X: -32, Y: 32}
	peerFeet := math.Vec2{X: -32, Y: 600}

	arrow, ok := testGeometry.Locate(v, peerFeet, view, OffsetWithArrow)
	require.True(t, ok)
	bubble, ok := testGeometry.Locate(v, peerFeet, view, OffsetBubbleOnly)
	require.True(t, ok)

	assert.InDelta(t, 50.0, Denormalize(arrow.Position, v, view).Y, 1e-9)
	assert.InDelta(t, 60.0, Denormalize(bubble.Position, v, view).Y, 1e-9)
	assert.InDelta(t, gomath.Pi/2, arrow.Angle, 1e-9)
}

func TestLocateZoomAndUIScale(t *testing.T) {
	// 640x360 screen at zoom 2 shows 320x180 world pixels.
	view := gamemath.NewRect(1000, 500, 320, 180)
	v := Viewer{Position: math.Vec2{X: 1128, Y: 622}, Zoom: 2, UIScale: 1.5}
	peerFeet := math.Vec2{X: 3000, Y: 622}

	fix, ok := testGeometry.Locate(v, peerFeet, view, OffsetWithArrow)
	require.True(t, ok)

	// 50 UI pixels at UI scale 1.5 are 75 screen pixels, 37.5 world pixels at zoom 2.
	world := Denormalize(fix.Position, v, view)
	assert.InDelta(t, 1320-37.5, world.X, 1e-9)

	// Screen pixel = UI position * UI scale.
	assert.InDelta(t, (world.X-view.X)*v.Zoom, fix.Position.X*v.UIScale, 1e-9)
}

func TestLocateProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		zoom := 0.5 + rng.Float64()*1.5
		uiScale := 0.75 + rng.Float64()*0.75
		view := gamemath.NewRect(rng.Float64()*2000, rng.Float64()*2000, 640/zoom, 360/zoom)
		mode := OffsetMode(rng.Intn(2))

		v := Viewer{Zoom: zoom, UIScale: uiScale}
		c := view.Center()
		v.Position = math.Vec2{X: c.X - 32 + (rng.Float64()-0.5)*view.W*0.3, Y: c.Y + 32 + (rng.Float64()-0.5)*view.H*0.3}

		angle := rng.Float64() * 2 * gomath.Pi
		dist := 1500 + rng.Float64()*3000
		peerFeet := math.Vec2{X: c.X + gomath.Cos(angle)*dist, Y: c.Y + gomath.Sin(angle)*dist}

		fix, ok := testGeometry.Locate(v, peerFeet, view, mode)
		require.True(t, ok, "case %d", i)

		shrunk := view.Shrink(WorldOffset(testGeometry.Offset(mode), v))
		world := Denormalize(fix.Position, v, view)
		assert.True(t, onEdge(world, shrunk), "case %d: %v not on %+v", i, world, shrunk)

		assert.True(t, fix.Angle > -gomath.Pi && fix.Angle <= gomath.Pi)
		peerCenter := testGeometry.PeerBounds(peerFeet).Center()
		dot := gomath.Cos(fix.Angle)*(peerCenter.X-world.X) + gomath.Sin(fix.Angle)*(peerCenter.Y-world.Y)
		assert.Greater(t, dot, 0.0)
	}
}

func TestLocateViewerInsideMargin(t *testing.T) {
	// Camera pinned to the map corner: the viewer stands inside the margin.
	view := gamemath.NewRect(0, 0, 640, 360)
	v := unitViewer
	v.Position = math.Vec2{X: 2, Y: 350}

	fix, ok := testGeometry.Locate(v, math.Vec2{X: 3000, Y: 100}, view, OffsetWithArrow)
	require.True(t, ok)

	world := Denormalize(fix.Position, v, view)
	assert.True(t, onEdge(world, view.Shrink(50)), "%v", world)
}

func onEdge(p math.Vec2, r gamemath.Rect) bool {
	const eps = 1e-6
	inX := p.X >= r.X-eps && p.X <= r.Right()+eps
	inY := p.Y >= r.Y-eps && p.Y <= r.Bottom()+eps
	onX := gomath.Abs(p.X-r.X) < eps || gomath.Abs(p.X-r.Right()) < eps
	onY := gomath.Abs(p.Y-r.Y) < eps || gomath.Abs(p.Y-r.Bottom()) < eps
	return inX && inY && (onX || onY)
}

func TestNormalizeFromViewOrigin(t *testing.T) {
	view := gamemath.NewRect(1000, 500, 320, 180)
	v := Viewer{Zoom: 2, UIScale: 1.25}

	assert.Equal(t, math.Vec2{}, Normalize(view.Origin(), v, view))

	p := math.Vec2{X: 1100, Y: 550}
	ui := Normalize(p, v, view)
	assert.InDelta(t, 100*2/1.25, ui.X, 1e-9)
	assert.InDelta(t, 50*2/1.25, ui.Y, 1e-9)

	back := Denormalize(ui, v, view)
	assert.InDelta(t, p.X, back.X, 1e-9)
	assert.InDelta(t, p.Y, back.Y, 1e-9)
}
