package systems

import (
	"image/color"

	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/fonts"
	"github.com/automoto/peerfinder/shared/gamemath"
	"github.com/automoto/peerfinder/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Culling padding in world pixels so labels don't pop at the edges.
const cullPadding = 64.0

// DrawLocation renders the ground, walls and warps of the current location.
func DrawLocation(e *ecs.ECS, screen *ebiten.Image) {
	loc := currentLocation(e)
	cameraEntry, ok := components.Camera.First(e.World)
	if loc == nil || !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	screen.Fill(cfg.Menu.BackgroundColor)
	tint, ok := cfg.UI.BackgroundTint[loc.Name]
	if !ok {
		tint = cfg.DarkBlue
	}
	fillWorldRect(screen, camera, sw, sh, gamemath.NewRect(0, 0, float64(loc.Width), float64(loc.Height)), tint)

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		fillWorldRect(screen, camera, sw, sh, gamemath.NewRect(o.X, o.Y, o.W, o.H), cfg.UI.WallColor)
	})
	tags.Warp.Each(e.World, func(entry *donburi.Entry) {
		o := components.Object.Get(entry)
		fillWorldRect(screen, camera, sw, sh, gamemath.NewRect(o.X, o.Y, o.W, o.H), cfg.UI.WarpColor)
	})
}

// DrawCharacters renders peers standing in the current location and the viewer.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	loc := currentLocation(e)
	cameraEntry, ok := components.Camera.First(e.World)
	if loc == nil || !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	view := CameraView(camera, sw, sh).Grow(cullPadding)

	tags.Peer.Each(e.World, func(entry *donburi.Entry) {
		peer := components.Peer.Get(entry)
		if peer.Hidden || peer.Location != loc.Name {
			return
		}
		drawCharacter(screen, camera, sw, sh, view, peer.Position, peer.Color, peer.Name)
	})

	if viewerEntry, ok := tags.Viewer.First(e.World); ok {
		viewer := components.Viewer.Get(viewerEntry)
		if !viewer.Hidden {
			feet := components.FeetAnchor(components.Object.Get(viewerEntry).Object)
			drawCharacter(screen, camera, sw, sh, view, feet, viewer.Color, viewer.Name)
		}
	}
}

// drawCharacter draws the body box a peer's indicator points at, with the
// name above it.
func drawCharacter(screen *ebiten.Image, camera *components.CameraData, sw, sh float64, view gamemath.Rect, feet math.Vec2, c color.RGBA, name string) {
	body := compassOverlay().PeerBounds(feet)
	if !body.Intersects(view) {
		return
	}
	fillWorldRect(screen, camera, sw, sh, body, c)

	if name == "" {
		return
	}
	face := fonts.Small.Get()
	x, y := WorldToScreen(camera, sw, sh, body.Center().X, body.Y)
	text.Draw(screen, name, face, int(x-fonts.Width(face, name)/2), int(y)-4, cfg.UI.TextColor)
}

func fillWorldRect(screen *ebiten.Image, camera *components.CameraData, sw, sh float64, r gamemath.Rect, c color.Color) {
	x, y := WorldToScreen(camera, sw, sh, r.X, r.Y)
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(r.W*zoom), float32(r.H*zoom), c, false)
}
