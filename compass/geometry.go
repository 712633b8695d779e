// Package compass finds where off-screen peers cross the edge of the view and
// keeps one compass bubble per connected peer.
//
// Nothing in here reads global state: the viewer, the view rectangle and the
// tuning values are handed in by the caller every frame.
package compass

import (
	gomath "math"

	"github.com/automoto/peerfinder/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// OffsetMode picks how far from the screen edge indicators are kept.
type OffsetMode int

const (
	// OffsetBubbleOnly is used when only the bubble is drawn.
	OffsetBubbleOnly OffsetMode = iota
	// OffsetWithArrow leaves room for the arrow that pivots outside the bubble.
	OffsetWithArrow
)

// Viewer is the local participant for one frame.
type Viewer struct {
	Position math.Vec2 // world position, feet anchor
	Zoom     float64
	UIScale  float64
}

// Geometry holds the fixed tuning values used by the locator.
type Geometry struct {
	TileSize         float64
	BubbleOnlyOffset float64 // screen pixels
	WithArrowOffset  float64 // screen pixels
}

// Fix is a located indicator: Position is in UI space, Angle points from the
// edge crossing toward the peer.
type Fix struct {
	Position math.Vec2
	Angle    float64
}

// Offset returns the screen-pixel margin for mode.
func (g Geometry) Offset(mode OffsetMode) float64 {
	if mode == OffsetWithArrow {
		return g.WithArrowOffset
	}
	return g.BubbleOnlyOffset
}

// WorldOffset converts a screen-pixel margin into world pixels for the viewer.
func WorldOffset(offset float64, v Viewer) float64 {
	return offset * scale(v.UIScale) / scale(v.Zoom)
}

// ViewerCenter moves the viewer's anchor half a tile right and half a tile up.
func (g Geometry) ViewerCenter(pos math.Vec2) math.Vec2 {
	return math.Vec2{X: pos.X + 0.5*g.TileSize, Y: pos.Y - 0.5*g.TileSize}
}

// PeerBounds approximates a standing character whose feet are at pos.
func (g Geometry) PeerBounds(pos math.Vec2) gamemath.Rect {
	return gamemath.NewRect(
		gomath.Trunc(pos.X+0.125*g.TileSize),
		gomath.Trunc(pos.Y-1.5*g.TileSize),
		gomath.Trunc(0.75*g.TileSize),
		2*g.TileSize,
	)
}

// Locate reports where the indicator for a peer standing at peerPos belongs.
// ok is false when the peer's bounds overlap the view, in which case the peer
// is already on screen.
func (g Geometry) Locate(v Viewer, peerPos math.Vec2, view gamemath.Rect, mode OffsetMode) (fix Fix, ok bool) {
	bounds := g.PeerBounds(peerPos)
	if bounds.Intersects(view) {
		return Fix{}, false
	}

	offset := WorldOffset(g.Offset(mode), v)
	peerCenter := bounds.Center()
	// A camera clamped at the map border can leave the viewer inside the margin.
	start := clampInto(g.ViewerCenter(v.Position), view.Shrink(offset))
	edge := gamemath.ClipToRect(start, peerCenter, view, offset)

	fix.Angle = gomath.Atan2(peerCenter.Y-edge.Y, peerCenter.X-edge.X)
	fix.Position = Normalize(edge, v, view)
	return fix, true
}

// Normalize maps a world point into UI space for the given view.
func Normalize(p math.Vec2, v Viewer, view gamemath.Rect) math.Vec2 {
	f := scale(v.Zoom) / scale(v.UIScale)
	o := view.Origin()
	return math.Vec2{X: (p.X - o.X) * f, Y: (p.Y - o.Y) * f}
}

// Denormalize is the inverse of Normalize.
func Denormalize(p math.Vec2, v Viewer, view gamemath.Rect) math.Vec2 {
	f := scale(v.UIScale) / scale(v.Zoom)
	o := view.Origin()
	return math.Vec2{X: p.X*f + o.X, Y: p.Y*f + o.Y}
}

func clampInto(p math.Vec2, r gamemath.Rect) math.Vec2 {
	return math.Vec2{
		X: gomath.Max(r.X, gomath.Min(r.Right(), p.X)),
		Y: gomath.Max(r.Y, gomath.Min(r.Bottom(), p.Y)),
	}
}

// scale treats an unset zoom or UI scale as 1.
func scale(s float64) float64 {
	if s <= 0 {
		return 1
	}
	return s
}
