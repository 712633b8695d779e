package archetypes

import (
	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Viewer = newArchetype(
		tags.Viewer,
		components.Viewer,
		components.Object,
	)
	Peer = newArchetype(
		tags.Peer,
		components.Peer,
	)
	RoutedPeer = newArchetype(
		tags.Peer,
		components.Peer,
		components.Route,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Warp = newArchetype(
		tags.Warp,
		components.Warp,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Location = newArchetype(
		components.Location,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Compass = newArchetype(
		components.Compass,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
