package components

import (
	"github.com/automoto/peerfinder/compass"
	"github.com/yohamta/donburi"
)

// CompassData is the per-session indicator state. Session outlives the ECS
// world of a single scene; the scene that owns it hands it in.
type CompassData struct {
	Session *compass.Session
	Markers []compass.Marker // rebuilt every tick
}

var Compass = donburi.NewComponentType[CompassData]()
