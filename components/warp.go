package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type WarpData struct {
	Target string
	Arrive math.Vec2
}

var Warp = donburi.NewComponentType[WarpData]()
