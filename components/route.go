package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RouteData walks a peer along a tiled polyline, one tween sequence per axis.
type RouteData struct {
	X, Y  *gween.Sequence
	Loops bool
}

var Route = donburi.NewComponentType[RouteData]()
