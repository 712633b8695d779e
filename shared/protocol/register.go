package protocol

import (
	"github.com/automoto/peerfinder/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetPosition  uint = 10
	SyncIDNetPeerState uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetPosition uint8 = 10
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	// Register with interpolation for smooth client-side rendering
	if err := esync.RegisterComponent(
		SyncIDNetPosition,
		netcomponents.NetPositionData{},
		netcomponents.NetPosition,
		esync.WithInterpFn(InterpIDNetPosition, netcomponents.LerpNetPosition),
	); err != nil {
		return err
	}

	// PeerState: no interpolation (discrete state changes)
	if err := esync.RegisterComponent(
		SyncIDNetPeerState,
		netcomponents.NetPeerStateData{},
		netcomponents.NetPeerState,
	); err != nil {
		return err
	}

	return nil
}
