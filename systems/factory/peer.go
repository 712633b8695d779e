package factory

import (
	"image/color"
	gomath "math"

	"github.com/automoto/peerfinder/archetypes"
	"github.com/automoto/peerfinder/assets"
	"github.com/automoto/peerfinder/compass"
	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// PeerSpec describes a peer to spawn.
type PeerSpec struct {
	ID       compass.PeerID
	Name     string
	Location string
	Position math.Vec2
}

// PeerColor picks a stable palette colour for id.
func PeerColor(id compass.PeerID) color.RGBA {
	palette := cfg.Peer.Palette
	i := int(id) % len(palette)
	if i < 0 {
		i += len(palette)
	}
	return palette[i]
}

// CreatePeer spawns a stationary peer. Every call gets a fresh generation, so
// a peer re-created under an existing ID is seen as a new entity.
func CreatePeer(ecs *ecs.ECS, spec PeerSpec, cs ...donburi.IComponentType) *donburi.Entry {
	peer := archetypes.Peer.Spawn(ecs, cs...)
	setPeerData(peer, spec)
	return peer
}

// CreateRoutedPeer spawns a peer walking route at cfg.Peer.WalkSpeed.
func CreateRoutedPeer(ecs *ecs.ECS, spec PeerSpec, route assets.Route) *donburi.Entry {
	peer := archetypes.RoutedPeer.Spawn(ecs)
	if len(route.Points) > 0 {
		spec.Position = route.Points[0]
	}
	setPeerData(peer, spec)

	x, y := RouteTweens(route.Points, route.Loops, cfg.Peer.WalkSpeed)
	components.Route.SetValue(peer, components.RouteData{
		X:     x,
		Y:     y,
		Loops: route.Loops,
	})
	return peer
}

func setPeerData(peer *donburi.Entry, spec PeerSpec) {
	components.Peer.SetValue(peer, components.PeerData{
		ID:         spec.ID,
		Generation: compass.NextGeneration(),
		Name:       spec.Name,
		Location:   spec.Location,
		Position:   spec.Position,
		Color:      PeerColor(spec.ID),
	})
}

// RouteTweens builds one sequence per axis walking points at speed pixels per
// second. Open routes walk back to their start so the sequence can restart.
// Both are nil when there is nothing to walk.
func RouteTweens(points []math.Vec2, loops bool, speed float64) (x, y *gween.Sequence) {
	if len(points) < 2 || speed <= 0 {
		return nil, nil
	}
	x, y = gween.NewSequence(), gween.NewSequence()

	path := points
	if !loops {
		path = make([]math.Vec2, 0, 2*len(points)-1)
		path = append(path, points...)
		for i := len(points) - 2; i >= 0; i-- {
			path = append(path, points[i])
		}
	}

	segments := 0
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		d := gomath.Hypot(to.X-from.X, to.Y-from.Y)
		if d == 0 {
			continue
		}
		secs := float32(d / speed)
		x.Add(gween.New(float32(from.X), float32(to.X), secs, ease.Linear))
		y.Add(gween.New(float32(from.Y), float32(to.Y), secs, ease.Linear))
		segments++
	}
	if segments == 0 {
		return nil, nil
	}
	return x, y
}
