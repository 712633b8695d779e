package messages

import "github.com/leap-fish/necs/esync"

// PeerJoined is broadcast when another participant finishes joining.
type PeerJoined struct {
	NetworkID esync.NetworkId
	Name      string
}

// PeerLeft is broadcast when a participant disconnects. Clients drop the
// peer's indicator straight away instead of waiting for the next snapshot.
type PeerLeft struct {
	NetworkID esync.NetworkId
}

// ViewerMoved is sent by a client whenever its own participant moves,
// warps or changes visibility.
type ViewerMoved struct {
	Location string
	X, Y     float64
	Hidden   bool
}
