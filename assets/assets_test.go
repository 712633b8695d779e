package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi/features/math"
)

func TestListLocationNames(t *testing.T) {
	names, err := NewLocationLoader().ListLocationNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"farm", "town"}, names)
}

func TestLoadFarm(t *testing.T) {
	farm, err := NewLocationLoader().LoadLocation("farm")
	require.NoError(t, err)

	assert.Equal(t, "Sunny Farm", farm.Title)
	assert.Equal(t, 2560, farm.Width)
	assert.Equal(t, 1920, farm.Height)
	assert.Equal(t, 64, farm.TileSize)
	assert.Len(t, farm.Walls, 8)
	assert.Equal(t, math.Vec2{X: 576, Y: 640}, farm.PlayerSpawn)

	require.Len(t, farm.PeerSpawns, 4)
	for i := 1; i < len(farm.PeerSpawns); i++ {
		assert.LessOrEqual(t, farm.PeerSpawns[i-1].X, farm.PeerSpawns[i].X)
	}

	require.Len(t, farm.Routes, 3)
	fields := farm.Routes[0]
	assert.Equal(t, "fields", fields.Name)
	assert.True(t, fields.Loops)
	require.Len(t, fields.Points, 5)
	assert.Equal(t, math.Vec2{X: 256, Y: 768}, fields.Points[0])
	assert.Equal(t, math.Vec2{X: 1856, Y: 768}, fields.Points[1])
	assert.False(t, farm.Routes[1].Loops)

	require.Len(t, farm.Warps, 1)
	assert.Equal(t, "town", farm.Warps[0].Target)
	assert.Equal(t, math.Vec2{X: 200, Y: 768}, farm.Warps[0].Arrive)
}

func TestLoadLocationsWarpsResolve(t *testing.T) {
	locations, err := NewLocationLoader().LoadLocations()
	require.NoError(t, err)
	require.Len(t, locations, 2)

	for _, loc := range locations {
		for _, w := range loc.Warps {
			target, ok := Find(locations, w.Target)
			require.True(t, ok, "%s warps to unknown %q", loc.Name, w.Target)
			assert.Less(t, w.Arrive.X, float64(target.Width))
			assert.Less(t, w.Arrive.Y, float64(target.Height))
		}
	}
}

func TestLoadMissingLocation(t *testing.T) {
	_, err := NewLocationLoader().LoadLocation("mines")
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	locations := []Location{{Name: "farm"}, {Name: "town"}}

	loc, ok := Find(locations, "Town")
	require.True(t, ok)
	assert.Equal(t, "town", loc.Name)

	_, ok = Find(locations, "beach")
	assert.False(t, ok)
}
