package factory

import (
	"github.com/automoto/peerfinder/archetypes"
	"github.com/automoto/peerfinder/assets"
	"github.com/automoto/peerfinder/components"
	"github.com/automoto/peerfinder/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateWarp(ecs *ecs.ECS, w assets.Warp) *donburi.Entry {
	warp := archetypes.Warp.Spawn(ecs)

	obj := resolv.NewObject(w.X, w.Y, w.Width, w.Height, tags.ResolvWarp)
	obj.SetShape(resolv.NewRectangle(0, 0, w.Width, w.Height))
	obj.Data = warp

	components.Object.SetValue(warp, components.ObjectData{Object: obj})
	components.Warp.SetValue(warp, components.WarpData{
		Target: w.Target,
		Arrive: w.Arrive,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return warp
}
