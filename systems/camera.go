package systems

import (
	"math"

	"github.com/automoto/peerfinder/components"
	"github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/shared/gamemath"
	"github.com/automoto/peerfinder/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the viewer's feet anchor, clamped so the location
// fills the screen at the current zoom.
func UpdateCamera(e *ecs.ECS) {
	followViewer(e, config.Camera.FollowSmoothing)
}

// SnapCamera moves the camera straight onto the viewer. Used after spawning
// and warping.
func SnapCamera(e *ecs.ECS) {
	followViewer(e, 1)
}

func followViewer(e *ecs.ECS, smoothing float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Zoom = currentZoom(e)

	viewerEntry, ok := tags.Viewer.First(e.World)
	if !ok {
		return
	}
	loc := currentLocation(e)
	if loc == nil {
		return
	}

	feet := components.FeetAnchor(components.Object.Get(viewerEntry).Object)
	targetX := feet.X + config.Compass.TileSize/2
	targetY := feet.Y

	visibleW := float64(config.C.Width) / camera.Zoom
	visibleH := float64(config.C.Height) / camera.Zoom

	minCameraX := visibleW / 2
	maxCameraX := float64(loc.Width) - visibleW/2
	minCameraY := visibleH / 2
	maxCameraY := float64(loc.Height) - visibleH/2

	if minCameraX > maxCameraX {
		minCameraX = float64(loc.Width) / 2
		maxCameraX = minCameraX
	}
	if minCameraY > maxCameraY {
		minCameraY = float64(loc.Height) / 2
		maxCameraY = minCameraY
	}

	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))
	targetY = math.Max(minCameraY, math.Min(maxCameraY, targetY))

	camera.Position.X += (targetX - camera.Position.X) * smoothing
	camera.Position.Y += (targetY - camera.Position.Y) * smoothing
}

// CameraView returns the world rectangle visible on a screen of the given size.
func CameraView(camera *components.CameraData, screenW, screenH float64) gamemath.Rect {
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	w, h := screenW/zoom, screenH/zoom
	return gamemath.NewRect(camera.Position.X-w/2, camera.Position.Y-h/2, w, h)
}

// WorldToScreen converts a world position into screen pixels.
func WorldToScreen(camera *components.CameraData, screenW, screenH, x, y float64) (float64, float64) {
	view := CameraView(camera, screenW, screenH)
	zoom := camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return (x - view.X) * zoom, (y - view.Y) * zoom
}

func currentZoom(e *ecs.ECS) float64 {
	zoom := GetOrCreateSettingsMenu(e).Zoom
	if zoom <= 0 {
		return config.Camera.DefaultZoom
	}
	return zoom
}
