package components

import (
	"image/color"

	"github.com/automoto/peerfinder/compass"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PeerData is a remote participant. Position is the feet anchor in world pixels.
type PeerData struct {
	ID          compass.PeerID
	Generation  uint64
	Name        string
	Location    string
	Position    math.Vec2
	Hidden      bool
	SplitScreen bool
	Color       color.RGBA
}

// Snapshot is the view of the peer the compass works with.
func (p *PeerData) Snapshot() compass.Peer {
	return compass.Peer{
		ID:          p.ID,
		Generation:  p.Generation,
		Name:        p.Name,
		Position:    p.Position,
		Location:    p.Location,
		Hidden:      p.Hidden,
		SplitScreen: p.SplitScreen,
	}
}

var Peer = donburi.NewComponentType[PeerData]()
