package netcomponents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLerpNetPosition(t *testing.T) {
	from := NetPositionData{X: 0, Y: 100}
	to := NetPositionData{X: 64, Y: -100}

	assert.Equal(t, from, *LerpNetPosition(from, to, 0))
	assert.Equal(t, to, *LerpNetPosition(from, to, 1))
	assert.Equal(t, NetPositionData{X: 32, Y: 0}, *LerpNetPosition(from, to, 0.5))
}
