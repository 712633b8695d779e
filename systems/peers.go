package systems

import (
	"github.com/automoto/peerfinder/assets"
	"github.com/automoto/peerfinder/compass"
	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/logging"
	"github.com/automoto/peerfinder/systems/factory"
	"github.com/automoto/peerfinder/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const tickSeconds = float32(1.0 / 60.0)

// UpdatePeerRoutes walks every routed peer one tick along its route.
func UpdatePeerRoutes(e *ecs.ECS) {
	components.Route.Each(e.World, func(entry *donburi.Entry) {
		route := components.Route.Get(entry)
		if route.X == nil || route.Y == nil {
			return
		}
		peer := components.Peer.Get(entry)

		x, _, doneX := route.X.Update(tickSeconds)
		y, _, doneY := route.Y.Update(tickSeconds)
		peer.Position.X = float64(x)
		peer.Position.Y = float64(y)

		if doneX || doneY {
			route.X.Reset()
			route.Y.Reset()
		}
	})
}

// PeerSnapshots appends the compass view of every peer in the world.
func PeerSnapshots(e *ecs.ECS, dst []compass.Peer) []compass.Peer {
	tags.Peer.Each(e.World, func(entry *donburi.Entry) {
		dst = append(dst, components.Peer.Get(entry).Snapshot())
	})
	return dst
}

// FindPeer returns the entry for the peer with the given id.
func FindPeer(e *ecs.ECS, id compass.PeerID) (*donburi.Entry, bool) {
	var found *donburi.Entry
	tags.Peer.Each(e.World, func(entry *donburi.Entry) {
		if found == nil && components.Peer.Get(entry).ID == id {
			found = entry
		}
	})
	return found, found != nil
}

// RemovePeer deletes the peer entity and drops its indicator.
func RemovePeer(e *ecs.ECS, id compass.PeerID) {
	if entry, ok := FindPeer(e, id); ok {
		entry.Remove()
	}
	if session := compassSession(e); session != nil {
		session.PeerLeft(id)
	}
	logger := logging.For("compass")
	logger.Debug().Int64("peer", int64(id)).Msg("peer disconnected")
}

// UpdateDemoPeers lets the offline session exercise joins, leaves and
// hiding without a server. J spawns or re-spawns the next peer, K removes
// the newest one and H toggles hiding on every peer.
func UpdateDemoPeers(e *ecs.ECS) {
	if IsSettingsOpen(e) {
		return
	}
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionPeerJoin).JustPressed {
		joinDemoPeer(e)
	}
	if GetAction(input, cfg.ActionPeerLeave).JustPressed {
		var newest compass.PeerID = -1
		tags.Peer.Each(e.World, func(entry *donburi.Entry) {
			if id := components.Peer.Get(entry).ID; id > newest {
				newest = id
			}
		})
		if newest >= 0 {
			RemovePeer(e, newest)
		}
	}
	if GetAction(input, cfg.ActionPeerHide).JustPressed {
		tags.Peer.Each(e.World, func(entry *donburi.Entry) {
			peer := components.Peer.Get(entry)
			peer.Hidden = !peer.Hidden
		})
	}
}

// joinDemoPeer spawns the lowest free demo peer id. When every name is
// taken the oldest peer is re-created instead, which gives it a new
// generation and makes the tracker replace its bubble.
func joinDemoPeer(e *ecs.ECS) {
	loc := currentLocation(e)
	if loc == nil {
		return
	}
	names := cfg.Peer.Names

	id := compass.PeerID(-1)
	for i := range names {
		if _, taken := FindPeer(e, compass.PeerID(i)); !taken {
			id = compass.PeerID(i)
			break
		}
	}
	if id < 0 {
		id = 0
		if entry, ok := FindPeer(e, id); ok {
			entry.Remove()
		}
	}

	spec := factory.PeerSpec{
		ID:       id,
		Name:     names[int(id)%len(names)],
		Location: loc.Name,
	}
	if len(loc.Routes) > 0 {
		factory.CreateRoutedPeer(e, spec, loc.Routes[int(id)%len(loc.Routes)])
	} else if len(loc.PeerSpawns) > 0 {
		spec.Position = loc.PeerSpawns[int(id)%len(loc.PeerSpawns)]
		factory.CreatePeer(e, spec)
	} else {
		spec.Position = loc.PlayerSpawn
		factory.CreatePeer(e, spec)
	}

	logger := logging.For("world")
	logger.Info().Int64("peer", int64(id)).Str("name", spec.Name).Str("location", loc.Name).Msg("demo peer joined")
}

// SpawnDemoPeers hands out the demo names round-robin over the locations,
// routes first, so every location gets company.
func SpawnDemoPeers(e *ecs.ECS) {
	entry, ok := components.Location.First(e.World)
	if !ok {
		return
	}
	locations := components.Location.Get(entry).All
	names := cfg.Peer.Names

	type slot struct {
		spec  factory.PeerSpec
		route *assets.Route
	}
	slots := make([][]slot, len(locations))
	for i := range locations {
		loc := &locations[i]
		for r := range loc.Routes {
			slots[i] = append(slots[i], slot{spec: factory.PeerSpec{Location: loc.Name}, route: &loc.Routes[r]})
		}
		for _, pos := range loc.PeerSpawns {
			slots[i] = append(slots[i], slot{spec: factory.PeerSpec{Location: loc.Name, Position: pos}})
		}
	}

	next := 0
	for round := 0; next < len(names); round++ {
		placed := false
		for i := range slots {
			if round >= len(slots[i]) || next >= len(names) {
				continue
			}
			s := slots[i][round]
			s.spec.ID = compass.PeerID(next)
			s.spec.Name = names[next]
			if s.route != nil {
				factory.CreateRoutedPeer(e, s.spec, *s.route)
			} else {
				factory.CreatePeer(e, s.spec)
			}
			next++
			placed = true
		}
		if !placed {
			break
		}
	}
}
