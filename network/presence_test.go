package network

import (
	"testing"

	"github.com/leap-fish/necs/esync"
	"github.com/stretchr/testify/assert"
)

func snapshotOf(ids ...esync.NetworkId) esync.WorldSnapshot {
	snap := esync.WorldSnapshot{}
	for _, id := range ids {
		snap = append(snap, esync.SerializedEntity{Id: id, State: esync.EntityState{}})
	}
	return snap
}

func TestPresenceSkipsSelf(t *testing.T) {
	p := NewPresence()
	p.Update(snapshotOf(1, 2, 3), 2)

	assert.True(t, p.Has(1))
	assert.False(t, p.Has(2))
	assert.True(t, p.Has(3))
}

func TestPresenceGone(t *testing.T) {
	p := NewPresence()
	p.Update(snapshotOf(1, 2, 3), 9)
	assert.Empty(t, p.Gone([]esync.NetworkId{1, 2, 3}))

	p.Update(snapshotOf(1, 9), 9)
	assert.Equal(t, []esync.NetworkId{2, 3}, p.Gone([]esync.NetworkId{1, 2, 3}))
	assert.False(t, p.Has(2))
}

func TestPresenceEmptySnapshotDropsEveryone(t *testing.T) {
	p := NewPresence()
	p.Update(snapshotOf(4, 5), 1)
	p.Update(esync.WorldSnapshot{}, 1)

	assert.Equal(t, []esync.NetworkId{5, 4}, p.Gone([]esync.NetworkId{5, 4}))
}
