package scenes

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/automoto/peerfinder/compass"
	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/logging"
	"github.com/automoto/peerfinder/network"
	"github.com/automoto/peerfinder/shared/netcomponents"
	"github.com/automoto/peerfinder/systems"
	"github.com/automoto/peerfinder/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

const onlineHint = "Q/E zoom  Tab settings  Esc leave"

// NetworkedScene mirrors the peers a server reports around the local viewer.
type NetworkedScene struct {
	ecsWorld     *ecs.ECS
	sceneChanger SceneChanger
	netClient    *network.Client
	session      *compass.Session
	once         sync.Once
	presence     *network.Presence
	leaving      bool
	log          zerolog.Logger
}

func NewNetworkedScene(sc SceneChanger, client *network.Client) *NetworkedScene {
	return &NetworkedScene{
		sceneChanger: sc,
		netClient:    client,
		session:      compass.NewSession(cfg.Compass.ReconcileInterval),
		presence:     network.NewPresence(),
		log:          logging.For("networked"),
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	state := ns.netClient.State()
	if ns.leaving || state == network.StateDisconnected || state == network.StateError {
		ev := ns.log.Info()
		if err := ns.netClient.LastError(); err != nil && !ns.leaving {
			ev = ns.log.Warn().Err(err)
		}
		ev.Msg("session ended, returning to menu")

		ns.session.Reset()
		ns.netClient.Disconnect()
		ns.sceneChanger.ChangeScene(NewMenuScene(ns.sceneChanger))
		return
	}

	for _, ev := range ns.netClient.DrainJoinedEvents() {
		ns.log.Info().Uint64("id", uint64(ev.NetworkID)).Str("name", ev.Name).Msg("peer joined")
	}
	for _, ev := range ns.netClient.DrainLeftEvents() {
		systems.RemovePeer(ns.ecsWorld, compass.PeerID(ev.NetworkID))
	}

	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		ns.applySnapshot(*snap)
	}

	ns.ecsWorld.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.ecsWorld == nil {
		return
	}

	ns.ecsWorld.Draw(screen)
}

func (ns *NetworkedScene) configure() {
	sendFn := func(msg any) error {
		if ns.netClient.State() != network.StateJoinedGame {
			return nil
		}
		return ns.netClient.SendMessage(msg)
	}

	location := ns.netClient.Location()
	if location == "" {
		location = cfg.Viewer.StartLocation
	}

	ns.ecsWorld = newSessionECS(sessionOptions{
		Session:    ns.session,
		ViewerName: cfg.Network.PlayerName,
		Location:   location,
		OnExit:     func() { ns.leaving = true },
		Status:     ns.status,
		Hint:       onlineHint,
		Systems: []ecs.System{
			systems.NewNetInterpSystem(ns.netClient.TickRate),
			systems.NewViewerSyncSystem(sendFn),
		},
	})

	ns.log.Info().
		Str("server", ns.netClient.ServerName()).
		Str("location", location).
		Int("tick_rate", ns.netClient.TickRate()).
		Msg("joined session")
}

func (ns *NetworkedScene) status() string {
	name := ns.netClient.ServerName()
	if name == "" {
		name = "server"
	}
	return fmt.Sprintf("Online: %s", name)
}

func (ns *NetworkedScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := ns.ecsWorld.World
	myNetID := ns.netClient.NetworkID()

	// The local viewer is driven by input, not by the server.
	ns.presence.Update(snapshot, myNetID)

	for _, ent := range snapshot {
		if !ns.presence.Has(ent.Id) {
			continue
		}

		var (
			pos      *netcomponents.NetPositionData
			state    *netcomponents.NetPeerStateData
			decodeOK = true
		)
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				decodeOK = false
				continue
			}
			switch v := instance.(type) {
			case netcomponents.NetPositionData:
				cp := v
				pos = &cp
			case netcomponents.NetPeerStateData:
				cp := v
				state = &cp
			}
		}
		if !decodeOK {
			ns.log.Debug().Uint64("id", uint64(ent.Id)).Msg("skipped undecodable component")
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			// Wait for the peer's state before giving it an entity.
			if state == nil {
				continue
			}
			ns.createPeer(ent.Id, *state, pos)
			continue
		}

		entry := world.Entry(entity)
		if !entry.HasComponent(components.Peer) {
			continue
		}
		peer := components.Peer.Get(entry)
		interp := components.NetInterp.Get(entry)

		if state != nil {
			if state.Location != peer.Location {
				// Crossing a warp teleports; don't slide across the map.
				interp.Initialized = false
			}
			applyPeerState(peer, *state)
		}
		if pos != nil {
			applyPeerPosition(peer, interp, *pos)
		}
	}

	var known []esync.NetworkId
	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		if id := esync.GetNetworkId(entry); id != nil {
			known = append(known, *id)
		}
	})
	for _, id := range ns.presence.Gone(known) {
		systems.RemovePeer(ns.ecsWorld, compass.PeerID(id))
	}
}

func (ns *NetworkedScene) createPeer(id esync.NetworkId, state netcomponents.NetPeerStateData, pos *netcomponents.NetPositionData) {
	spec := factory.PeerSpec{
		ID:       compass.PeerID(id),
		Name:     state.Name,
		Location: state.Location,
	}
	entry := factory.CreatePeer(ns.ecsWorld, spec, esync.NetworkIdComponent, components.NetInterp)
	esync.NetworkIdComponent.SetValue(entry, id)

	peer := components.Peer.Get(entry)
	applyPeerState(peer, state)
	if pos != nil {
		applyPeerPosition(peer, components.NetInterp.Get(entry), *pos)
	}

	ns.log.Debug().
		Uint64("id", uint64(id)).
		Uint64("generation", peer.Generation).
		Str("name", state.Name).
		Msg("peer entity created")
}

func applyPeerState(peer *components.PeerData, state netcomponents.NetPeerStateData) {
	peer.Name = state.Name
	peer.Location = state.Location
	peer.Hidden = state.Hidden
	peer.SplitScreen = state.SplitScreen
}

// applyPeerPosition starts interpolating towards pos. The first position a
// peer receives is applied directly.
func applyPeerPosition(peer *components.PeerData, interp *components.NetInterpData, pos netcomponents.NetPositionData) {
	if !interp.Initialized {
		peer.Position = math.Vec2{X: pos.X, Y: pos.Y}
		interp.PrevX, interp.PrevY = pos.X, pos.Y
		interp.TargetX, interp.TargetY = pos.X, pos.Y
		interp.T = 1.0
		interp.Initialized = true
		return
	}
	interp.PrevX, interp.PrevY = peer.Position.X, peer.Position.Y
	interp.TargetX, interp.TargetY = pos.X, pos.Y
	interp.T = 0
}
