package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is centred on Position. Zoom scales world pixels to screen pixels.
type CameraData struct {
	Position math.Vec2
	Zoom     float64
}

var Camera = donburi.NewComponentType[CameraData]()
