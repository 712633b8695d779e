package systems

import (
	"image/color"
	gomath "math"

	"github.com/automoto/peerfinder/compass"
	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/fonts"
	"github.com/automoto/peerfinder/logging"
	"github.com/automoto/peerfinder/shared/gamemath"
	"github.com/automoto/peerfinder/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

var (
	peerScratch []compass.Peer
	whiteImage  *ebiten.Image
)

func compassOverlay() compass.Overlay {
	return compass.Overlay{
		Geometry: compass.Geometry{
			TileSize:         cfg.Compass.TileSize,
			BubbleOnlyOffset: cfg.Compass.BubbleOnlyOffset,
			WithArrowOffset:  cfg.Compass.WithArrowOffset,
		},
		ArrowDistance: cfg.Compass.ArrowDistance,
		OccludedAlpha: cfg.Compass.OccludedAlpha,
	}
}

// UpdateCompass reconciles bubbles on the compass schedule and rebuilds the
// markers every tick.
func UpdateCompass(e *ecs.ECS) {
	entry, ok := components.Compass.First(e.World)
	if !ok {
		return
	}
	data := components.Compass.Get(entry)
	data.Markers = data.Markers[:0]

	peerScratch = PeerSnapshots(e, peerScratch[:0])

	if data.Session == nil {
		return
	}
	if n, _ := data.Session.Tick(peerScratch); n > 0 {
		logger := logging.For("compass")
		logger.Debug().
			Int("created", n).
			Int("tracked", data.Session.Tracker.Len()).
			Msg("bubbles reconciled")
	}

	frame, ok := compassFrame(e)
	if !ok {
		return
	}
	data.Markers = compassOverlay().AppendMarkers(data.Markers, frame, peerScratch, data.Session.Tracker)
}

// compassFrame describes the current frame from the viewer's point of view.
func compassFrame(e *ecs.ECS) (compass.Frame, bool) {
	viewerEntry, ok := tags.Viewer.First(e.World)
	if !ok {
		return compass.Frame{}, false
	}
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return compass.Frame{}, false
	}
	loc := currentLocation(e)
	if loc == nil {
		return compass.Frame{}, false
	}

	settings := GetOrCreateSettingsMenu(e)
	camera := components.Camera.Get(cameraEntry)
	screenW, screenH := float64(cfg.C.Width), float64(cfg.C.Height)

	viewer := compass.Viewer{
		Position: components.FeetAnchor(components.Object.Get(viewerEntry).Object),
		Zoom:     camera.Zoom,
		UIScale:  settings.UIScale,
	}
	hud := HUDRegions(screenW, screenH, viewer.UIScale)

	return compass.Frame{
		Viewer:       viewer,
		ViewerHidden: components.Viewer.Get(viewerEntry).Hidden,
		Location:     loc.Name,
		View:         CameraView(camera, screenW, screenH),
		Settings:     settings.Compass,
		Occluded: func(p math.Vec2) bool {
			for _, r := range hud {
				if r.Contains(p) {
					return true
				}
			}
			return false
		},
	}, true
}

// HUDRegions returns the HUD panels in UI space for a screen of the given size.
func HUDRegions(screenW, screenH, uiScale float64) []gamemath.Rect {
	if uiScale <= 0 {
		uiScale = 1
	}
	uiW, uiH := screenW/uiScale, screenH/uiScale
	status, hint := cfg.UI.StatusPanel, cfg.UI.HintPanel
	return []gamemath.Rect{
		gamemath.NewRect(status.X, status.Y, status.W, status.H),
		gamemath.NewRect(uiW-hint.X-hint.W, uiH-hint.Y-hint.H, hint.W, hint.H),
	}
}

// DrawCompass renders every marker built this tick.
func DrawCompass(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Compass.First(e.World)
	if !ok {
		return
	}
	data := components.Compass.Get(entry)
	if len(data.Markers) == 0 {
		return
	}
	uiScale := GetOrCreateSettingsMenu(e).UIScale
	if uiScale <= 0 {
		uiScale = 1
	}

	for i := range data.Markers {
		m := &data.Markers[i]
		if m.ShowArrow {
			drawArrow(screen, m, uiScale)
		}
		if m.ShowBubble {
			fill := cfg.UI.PanelColor
			if peer, ok := FindPeer(e, m.PeerID); ok {
				fill = components.Peer.Get(peer).Color
			}
			drawBubble(screen, m, fill, uiScale)
		}
	}
}

func drawBubble(screen *ebiten.Image, m *compass.Marker, fill color.RGBA, uiScale float64) {
	cx := float32(m.Position.X * uiScale)
	cy := float32(m.Position.Y * uiScale)
	r := float32(cfg.Compass.BubbleRadius * uiScale)
	outline := float32(cfg.Compass.BubbleOutline * uiScale)

	vector.DrawFilledCircle(screen, cx, cy, r, fadeColor(cfg.UI.OutlineColor, m.Alpha), true)
	vector.DrawFilledCircle(screen, cx, cy, r-outline, fadeColor(fill, m.Alpha), true)

	face := fonts.Bold.Get()
	label := string(m.Bubble.Initial)
	w := fonts.Width(face, label)
	ascent := float64(face.Metrics().Ascent.Ceil())
	text.Draw(screen, label, face, int(float64(cx)-w/2), int(float64(cy)+ascent/2-1), fadeColor(cfg.UI.TextColor, m.Alpha))
}

func drawArrow(screen *ebiten.Image, m *compass.Marker, uiScale float64) {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}

	length := cfg.Compass.ArrowLength * cfg.Compass.ArrowScale * uiScale
	width := cfg.Compass.ArrowWidth * cfg.Compass.ArrowScale * uiScale
	cos, sin := gomath.Cos(m.Angle), gomath.Sin(m.Angle)
	px, py := m.ArrowPosition.X*uiScale, m.ArrowPosition.Y*uiScale

	tipX, tipY := px+cos*length/2, py+sin*length/2
	baseX, baseY := px-cos*length/2, py-sin*length/2
	// perpendicular to the arrow direction
	nx, ny := -sin*width/2, cos*width/2

	var path vector.Path
	path.MoveTo(float32(tipX), float32(tipY))
	path.LineTo(float32(baseX+nx), float32(baseY+ny))
	path.LineTo(float32(baseX-nx), float32(baseY-ny))
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	c := fadeColor(cfg.UI.ArrowColor, m.ArrowAlpha)
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
	screen.DrawTriangles(vs, is, whiteImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// fadeColor scales a straight-alpha colour by alpha into premultiplied form.
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	a := gomath.Max(0, gomath.Min(1, alpha)) * float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(255 * a),
	}
}

// compassSession returns the indicator session of the running scene, if any.
func compassSession(e *ecs.ECS) *compass.Session {
	entry, ok := components.Compass.First(e.World)
	if !ok {
		return nil
	}
	return components.Compass.Get(entry).Session
}
