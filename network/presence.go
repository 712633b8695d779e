package network

import "github.com/leap-fish/necs/esync"

// Presence remembers which remote entities the latest snapshot carried.
// Entities that drop out of a snapshot have disconnected.
type Presence struct {
	present map[esync.NetworkId]bool
}

func NewPresence() *Presence {
	return &Presence{present: make(map[esync.NetworkId]bool)}
}

// Update records every entity in snapshot except self, the local viewer.
func (p *Presence) Update(snapshot esync.WorldSnapshot, self esync.NetworkId) {
	clear(p.present)
	for _, ent := range snapshot {
		if ent.Id == self {
			continue
		}
		p.present[ent.Id] = true
	}
}

// Has reports whether id was in the last snapshot.
func (p *Presence) Has(id esync.NetworkId) bool {
	return p.present[id]
}

// Gone returns the ids from known that the last snapshot no longer carries,
// in the order given.
func (p *Presence) Gone(known []esync.NetworkId) []esync.NetworkId {
	var gone []esync.NetworkId
	for _, id := range known {
		if !p.present[id] {
			gone = append(gone, id)
		}
	}
	return gone
}
