package systems

import (
	"github.com/automoto/peerfinder/assets"
	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/logging"
	"github.com/automoto/peerfinder/systems/factory"
	"github.com/automoto/peerfinder/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateViewer moves the viewer from input, resolving wall collisions, and
// takes any warp it ends up standing on.
func UpdateViewer(e *ecs.ECS) {
	if IsSettingsOpen(e) {
		return
	}
	entry, ok := tags.Viewer.First(e.World)
	if !ok {
		return
	}
	viewer := components.Viewer.Get(entry)
	obj := components.Object.Get(entry).Object
	input := getOrCreateInput(e)

	dx, dy := moveDelta(input)
	moveAxis(obj, dx, 0)
	moveAxis(obj, 0, dy)
	obj.Update()

	if viewer.WarpCooldown > 0 {
		viewer.WarpCooldown--
		viewer.Hidden = viewer.WarpCooldown > cfg.Viewer.WarpCooldown-cfg.Viewer.WarpHidden
		return
	}

	if warp := touchingWarp(obj); warp != nil {
		takeWarp(e, entry, components.Warp.Get(warp))
	}
}

func moveDelta(input *components.InputData) (float64, float64) {
	var dx, dy float64
	if GetAction(input, cfg.ActionMoveLeft).Pressed {
		dx -= cfg.Viewer.Speed
	}
	if GetAction(input, cfg.ActionMoveRight).Pressed {
		dx += cfg.Viewer.Speed
	}
	if GetAction(input, cfg.ActionMoveUp).Pressed {
		dy -= cfg.Viewer.Speed
	}
	if GetAction(input, cfg.ActionMoveDown).Pressed {
		dy += cfg.Viewer.Speed
	}
	return dx, dy
}

// moveAxis moves obj by one axis at a time so the viewer slides along walls.
func moveAxis(obj *resolv.Object, dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	if check := obj.Check(dx, dy, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			contact := check.ContactWithObject(solids[0])
			dx, dy = contact.X(), contact.Y()
		}
	}
	obj.X += dx
	obj.Y += dy
}

func touchingWarp(obj *resolv.Object) *donburi.Entry {
	check := obj.Check(0, 0, tags.ResolvWarp)
	if check == nil {
		return nil
	}
	warps := check.ObjectsByTags(tags.ResolvWarp)
	if len(warps) == 0 {
		return nil
	}
	entry, ok := warps[0].Data.(*donburi.Entry)
	if !ok || !entry.Valid() {
		return nil
	}
	return entry
}

func takeWarp(e *ecs.ECS, viewerEntry *donburi.Entry, warp *components.WarpData) {
	locEntry, ok := components.Location.First(e.World)
	if !ok {
		return
	}
	locData := components.Location.Get(locEntry)
	target, ok := assets.Find(locData.All, warp.Target)
	if !ok {
		logger := logging.For("world")
		logger.Warn().Str("target", warp.Target).Msg("warp leads to an unknown location")
		return
	}
	arrive := warp.Arrive

	from := ""
	if locData.Current != nil {
		from = locData.Current.Name
	}
	locData.Current = target
	factory.BuildLocation(e, target)

	PlaceViewer(viewerEntry, arrive)
	viewer := components.Viewer.Get(viewerEntry)
	viewer.WarpCooldown = cfg.Viewer.WarpCooldown
	viewer.Hidden = true
	SnapCamera(e)

	logger := logging.For("world")
	logger.Info().Str("from", from).Str("to", target.Name).Msg("viewer warped")
}

// PlaceViewer puts the viewer's feet anchor at pos.
func PlaceViewer(viewerEntry *donburi.Entry, pos math.Vec2) {
	obj := components.Object.Get(viewerEntry).Object
	off := components.FootprintOffset()
	obj.X = pos.X + off.X
	obj.Y = pos.Y + off.Y
	obj.Update()
}

// currentLocation returns the location the viewer is standing in.
func currentLocation(e *ecs.ECS) *assets.Location {
	entry, ok := components.Location.First(e.World)
	if !ok {
		return nil
	}
	return components.Location.Get(entry).Current
}
