package factory

import (
	"github.com/automoto/peerfinder/archetypes"
	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateViewer spawns the local participant with its feet anchor at pos.
func CreateViewer(ecs *ecs.ECS, name string, pos math.Vec2) *donburi.Entry {
	viewer := archetypes.Viewer.Spawn(ecs)

	off := components.FootprintOffset()
	w, h := cfg.Viewer.CollisionWidth, cfg.Viewer.CollisionHeight
	obj := resolv.NewObject(pos.X+off.X, pos.Y+off.Y, w, h, tags.ResolvViewer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = viewer

	components.Object.SetValue(viewer, components.ObjectData{Object: obj})
	components.Viewer.SetValue(viewer, components.ViewerData{
		Name:  name,
		Color: cfg.Viewer.Color,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return viewer
}
