package compass

import (
	gomath "math"

	"github.com/automoto/peerfinder/shared/gamemath"
	"github.com/yohamta/donburi/features/math"
)

// Overlay turns peer snapshots into drawable markers.
type Overlay struct {
	Geometry
	ArrowDistance float64 // UI pixels between bubble centre and arrow pivot at UI scale 1
	OccludedAlpha float64 // bubble alpha cap while it sits over a HUD element
}

// Frame is everything the overlay needs to know about the current frame.
type Frame struct {
	Viewer       Viewer
	ViewerHidden bool
	Location     string
	View         gamemath.Rect
	Settings     Settings
	// Occluded reports whether a UI-space point is covered by HUD. May be nil.
	Occluded func(math.Vec2) bool
}

// Marker is one indicator ready to draw. Positions are in UI space.
type Marker struct {
	PeerID        PeerID
	Position      math.Vec2
	Angle         float64
	ArrowPosition math.Vec2
	Alpha         float64
	ArrowAlpha    float64
	// Bubble is nil until the tracker has seen this peer.
	Bubble     *Bubble
	ShowBubble bool
	ShowArrow  bool
}

// AppendMarkers appends a marker for every peer that is off screen and
// eligible for an indicator. Hidden peers, peers in another location and
// split-screen peers are skipped.
func (o Overlay) AppendMarkers(dst []Marker, f Frame, peers []Peer, tracker *Tracker) []Marker {
	if !f.Settings.Enabled() || f.ViewerHidden {
		return dst
	}
	mode := f.Settings.OffsetMode()
	opacity := f.Settings.Opacity()

	for _, p := range peers {
		// TODO: split-screen peers need their own viewport before they can get indicators.
		if p.SplitScreen || p.Hidden || p.Location != f.Location {
			continue
		}
		fix, ok := o.Locate(f.Viewer, p.Position, f.View, mode)
		if !ok {
			continue
		}

		m := Marker{
			PeerID:        p.ID,
			Position:      fix.Position,
			Angle:         fix.Angle,
			ArrowPosition: ArrowPosition(fix.Position, fix.Angle, o.ArrowDistance*scale(f.Viewer.UIScale)),
			ArrowAlpha:    opacity,
			ShowArrow:     !f.Settings.HideCompassArrow,
		}

		occluded := f.Occluded != nil && f.Occluded(fix.Position)
		m.Alpha = MarkerAlpha(occluded, o.OccludedAlpha, opacity)

		if tracker != nil && !f.Settings.HideCompassBubble {
			if b, ok := tracker.Bubble(p.ID); ok {
				m.Bubble = b
				m.ShowBubble = true
			}
		}

		if m.ShowBubble || m.ShowArrow {
			dst = append(dst, m)
		}
	}
	return dst
}

// ArrowPosition offsets pos by distance along angle.
func ArrowPosition(pos math.Vec2, angle, distance float64) math.Vec2 {
	return math.Vec2{
		X: pos.X + gomath.Cos(angle)*distance,
		Y: pos.Y + gomath.Sin(angle)*distance,
	}
}

// MarkerAlpha caps the configured opacity while the marker is over HUD.
func MarkerAlpha(occluded bool, occludedAlpha, opacity float64) float64 {
	visible := 1.0
	if occluded {
		visible = occludedAlpha
	}
	return gomath.Min(visible, opacity)
}
