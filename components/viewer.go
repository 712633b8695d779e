package components

import (
	"image/color"

	cfg "github.com/automoto/peerfinder/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ViewerData marks the local participant. The camera follows it and
// indicators are computed from its position.
type ViewerData struct {
	Name         string
	Color        color.RGBA
	Hidden       bool // true while warping between locations
	WarpCooldown int  // ticks left before another warp can trigger
}

var Viewer = donburi.NewComponentType[ViewerData]()

// FootprintOffset places a character's collision box relative to its feet
// anchor: centred in the anchor tile, bottom edge on the tile's midline.
func FootprintOffset() math.Vec2 {
	return math.Vec2{
		X: (cfg.Compass.TileSize - cfg.Viewer.CollisionWidth) / 2,
		Y: cfg.Compass.TileSize/2 - cfg.Viewer.CollisionHeight,
	}
}

// FeetAnchor recovers the feet anchor from a character's collision object.
func FeetAnchor(o *resolv.Object) math.Vec2 {
	off := FootprintOffset()
	return math.Vec2{X: o.X - off.X, Y: o.Y - off.Y}
}
