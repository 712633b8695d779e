package systems

import (
	"github.com/automoto/peerfinder/components"
	"github.com/automoto/peerfinder/logging"
	"github.com/automoto/peerfinder/shared/messages"
	"github.com/automoto/peerfinder/shared/netcomponents"
	"github.com/automoto/peerfinder/shared/netconfig"
	"github.com/automoto/peerfinder/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewNetInterpSystem returns an update system that moves remote peers from
// their previous snapshot position towards the latest one. tickRate reports
// the server's snapshot rate.
func NewNetInterpSystem(tickRate func() int) ecs.System {
	return func(e *ecs.ECS) {
		rate := tickRate()
		if rate <= 0 {
			rate = netconfig.DefaultTickRate
		}
		step := float64(rate) / 60.0

		components.NetInterp.Each(e.World, func(entry *donburi.Entry) {
			interp := components.NetInterp.Get(entry)
			if !interp.Initialized || !entry.HasComponent(components.Peer) {
				return
			}
			if interp.T < 1 {
				interp.T += step
				if interp.T > 1 {
					interp.T = 1
				}
			}
			pos := netcomponents.LerpNetPosition(
				netcomponents.NetPositionData{X: interp.PrevX, Y: interp.PrevY},
				netcomponents.NetPositionData{X: interp.TargetX, Y: interp.TargetY},
				interp.T,
			)
			peer := components.Peer.Get(entry)
			peer.Position.X = pos.X
			peer.Position.Y = pos.Y
		})
	}
}

// NewViewerSyncSystem returns an update system that reports the viewer's
// position to the server whenever it changes.
func NewViewerSyncSystem(send func(any) error) ecs.System {
	var last messages.ViewerMoved
	sent := false

	return func(e *ecs.ECS) {
		entry, ok := tags.Viewer.First(e.World)
		if !ok {
			return
		}
		loc := currentLocation(e)
		if loc == nil {
			return
		}
		feet := components.FeetAnchor(components.Object.Get(entry).Object)
		msg := messages.ViewerMoved{
			Location: loc.Name,
			X:        feet.X,
			Y:        feet.Y,
			Hidden:   components.Viewer.Get(entry).Hidden,
		}
		if sent && msg == last {
			return
		}
		if err := send(msg); err != nil {
			logger := logging.For("client")
			logger.Debug().Err(err).Msg("viewer update not sent")
			return
		}
		last, sent = msg, true
	}
}
