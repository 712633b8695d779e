package factory

import (
	"github.com/automoto/peerfinder/archetypes"
	"github.com/automoto/peerfinder/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreateCamera(ecs *ecs.ECS, position math.Vec2, zoom float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: position,
		Zoom:     zoom,
	})
	return camera
}
