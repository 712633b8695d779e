package factory

import (
	"github.com/automoto/peerfinder/archetypes"
	"github.com/automoto/peerfinder/assets"
	"github.com/automoto/peerfinder/components"
	"github.com/automoto/peerfinder/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLocation loads every embedded location and builds the one called name.
// Unknown names fall back to the first location.
func CreateLocation(ecs *ecs.ECS, name string) *donburi.Entry {
	location := archetypes.Location.Spawn(ecs)

	loader := assets.NewLocationLoader()
	locations := loader.MustLoadLocations()

	current, ok := assets.Find(locations, name)
	if !ok {
		current = &locations[0]
	}

	components.Location.SetValue(location, components.LocationData{
		All:     locations,
		Current: current,
	})

	BuildLocation(ecs, current)
	return location
}

// BuildLocation replaces the collision space, walls and warps with loc's.
// The viewer, if any, is moved into the new space.
func BuildLocation(ecs *ecs.ECS, loc *assets.Location) {
	world := ecs.World

	viewer, hasViewer := tags.Viewer.First(world)
	if spaceEntry, ok := components.Space.First(world); ok && hasViewer {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(viewer).Object)
	}

	var stale []*donburi.Entry
	tags.Wall.Each(world, func(e *donburi.Entry) { stale = append(stale, e) })
	tags.Warp.Each(world, func(e *donburi.Entry) { stale = append(stale, e) })
	components.Space.Each(world, func(e *donburi.Entry) { stale = append(stale, e) })
	for _, e := range stale {
		e.Remove()
	}

	cell := loc.TileSize
	if cell <= 0 {
		cell = 64
	}
	CreateSpace(ecs, loc.Width, loc.Height, cell, cell)

	for _, w := range loc.Walls {
		CreateWall(ecs, w.X, w.Y, w.Width, w.Height)
	}
	for _, w := range loc.Warps {
		CreateWarp(ecs, w)
	}

	if hasViewer {
		spaceEntry, _ := components.Space.First(world)
		components.Space.Get(spaceEntry).Add(components.Object.Get(viewer).Object)
	}
}
