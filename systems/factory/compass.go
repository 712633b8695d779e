package factory

import (
	"github.com/automoto/peerfinder/archetypes"
	"github.com/automoto/peerfinder/compass"
	"github.com/automoto/peerfinder/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCompass attaches a session's indicator state to the world.
func CreateCompass(ecs *ecs.ECS, session *compass.Session) *donburi.Entry {
	entry := archetypes.Compass.Spawn(ecs)
	components.Compass.SetValue(entry, components.CompassData{
		Session: session,
	})
	return entry
}
