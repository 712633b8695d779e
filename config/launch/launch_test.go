package launch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	opts, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", opts.LogLevel)
	assert.False(t, opts.SkipMenu)
	assert.Equal(t, "ws://localhost:7373", opts.Server.Address)
	assert.Equal(t, "Farmer", opts.Player.Name)
	assert.Zero(t, opts.Display.Zoom)
	assert.Zero(t, opts.Display.UIScale)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"skipMenu": true,
		"server": { "address": "ws://10.0.0.5:7373" },
		"display": { "zoom": 1.5, "uiScale": 1.25 }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "peerfinder.json"), []byte(cfg), 0644))

	opts, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", opts.LogLevel)
	assert.True(t, opts.SkipMenu)
	assert.Equal(t, "ws://10.0.0.5:7373", opts.Server.Address)
	assert.Equal(t, "Farmer", opts.Player.Name)
	assert.Equal(t, 1.5, opts.Display.Zoom)
	assert.Equal(t, 1.25, opts.Display.UIScale)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("PEERFINDER_PLAYER_NAME", "Robin")
	t.Setenv("PEERFINDER_LOGLEVEL", "warn")

	opts, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "Robin", opts.Player.Name)
	assert.Equal(t, "warn", opts.LogLevel)
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "peerfinder.json"), []byte(`{"logLevel":`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read launch config")
}
