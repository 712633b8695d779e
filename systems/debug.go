package systems

import (
	"image/color"

	"github.com/automoto/peerfinder/components"
	"github.com/automoto/peerfinder/compass"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/shared/gamemath"
	"github.com/automoto/peerfinder/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolid  = color.RGBA{100, 100, 100, 255}
	debugViewer = color.RGBA{0, 0, 255, 255}
	debugWarp   = color.RGBA{0, 255, 255, 255}
	debugMargin = color.RGBA{255, 0, 255, 255}
	debugHUD    = color.RGBA{255, 255, 0, 255}
	debugSight  = color.RGBA{0, 255, 0, 160}
)

// UpdateDebug toggles the debug overlay.
func UpdateDebug(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionDebug).JustPressed {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}
}

// DrawDebug outlines collision objects, the rectangle indicators are clamped
// to, the HUD regions that fade them, and a line from the viewer to every
// peer that has an indicator.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	view := CameraView(camera, sw, sh)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		for _, obj := range components.Space.Get(spaceEntry).Objects() {
			r := gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H)
			if !r.Intersects(view) {
				continue
			}
			c := debugSolid
			if obj.HasTags(tags.ResolvViewer) {
				c = debugViewer
			} else if obj.HasTags(tags.ResolvWarp) {
				c = debugWarp
			}
			strokeWorldRect(screen, camera, sw, sh, r, c)
		}
	}

	frame, ok := compassFrame(e)
	if !ok {
		return
	}
	overlay := compassOverlay()
	offset := compass.WorldOffset(overlay.Offset(frame.Settings.OffsetMode()), frame.Viewer)
	strokeWorldRect(screen, camera, sw, sh, view.Shrink(offset), debugMargin)

	uiScale := frame.Viewer.UIScale
	for _, r := range HUDRegions(sw, sh, uiScale) {
		strokeRect(screen, r.X*uiScale, r.Y*uiScale, r.W*uiScale, r.H*uiScale, debugHUD)
	}

	entry, ok := components.Compass.First(e.World)
	if !ok {
		return
	}
	from := overlay.ViewerCenter(frame.Viewer.Position)
	fx, fy := WorldToScreen(camera, sw, sh, from.X, from.Y)
	for _, m := range components.Compass.Get(entry).Markers {
		peer, ok := FindPeer(e, m.PeerID)
		if !ok {
			continue
		}
		to := overlay.PeerBounds(components.Peer.Get(peer).Position).Center()
		tx, ty := WorldToScreen(camera, sw, sh, to.X, to.Y)
		vector.StrokeLine(screen, float32(fx), float32(fy), float32(tx), float32(ty), 1, debugSight, false)
	}
}

func strokeWorldRect(screen *ebiten.Image, camera *components.CameraData, sw, sh float64, r gamemath.Rect, c color.Color) {
	x, y := WorldToScreen(camera, sw, sh, r.X, r.Y)
	strokeRect(screen, x, y, r.W*camera.Zoom, r.H*camera.Zoom, c)
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)     // Top
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false) // Bottom
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)     // Left
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false) // Right
}
