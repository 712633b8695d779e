package netcomponents

import "github.com/yohamta/donburi"

// NetPeerStateData is the discrete state of a remote participant.
// Position travels separately in NetPosition so it can be interpolated.
type NetPeerStateData struct {
	Name        string
	Location    string
	Hidden      bool
	SplitScreen bool
}

var NetPeerState = donburi.NewComponentType[NetPeerStateData]()
