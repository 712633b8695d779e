package tags

import "github.com/yohamta/donburi"

var (
	Viewer = donburi.NewTag().SetName("Viewer")
	Peer   = donburi.NewTag().SetName("Peer")
	Wall   = donburi.NewTag().SetName("Wall")
	Warp   = donburi.NewTag().SetName("Warp")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvWarp   = "warp"
	ResolvViewer = "viewer"
)
