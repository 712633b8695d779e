// Package netconfig defines lightweight values shared between client and server
// for network serialization. It must have zero dependencies on ebiten or any
// graphics library so a headless server can import it.
package netconfig

const (
	// ProtocolVersion must match between client and server for a join to succeed.
	ProtocolVersion = "1"

	DefaultPort = 7373

	// DefaultTickRate is the snapshot rate assumed until the server reports its own.
	DefaultTickRate = 20
)
