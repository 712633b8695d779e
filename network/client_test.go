package network

import (
	"testing"

	"github.com/automoto/peerfinder/shared/messages"
	"github.com/stretchr/testify/assert"
)

func TestNewClientStartsDisconnected(t *testing.T) {
	c := NewClient()
	assert.Equal(t, StateDisconnected, c.State())
	assert.Nil(t, c.LastError())
	assert.Nil(t, c.LatestSnapshot())
	assert.Empty(t, c.DrainLeftEvents())
}

func TestDrainChanKeepsOrder(t *testing.T) {
	ch := make(chan messages.PeerLeft, 4)
	ch <- messages.PeerLeft{NetworkID: 3}
	ch <- messages.PeerLeft{NetworkID: 1}

	got := drainChan(ch)
	assert.Equal(t, []messages.PeerLeft{{NetworkID: 3}, {NetworkID: 1}}, got)
	assert.Empty(t, drainChan(ch))
}
