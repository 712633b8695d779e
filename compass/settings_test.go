package compass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsClamp(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{150, 100},
		{-20, 0},
		{0, 0},
		{55, 55},
		{100, 100},
	}
	for _, tt := range tests {
		s := Settings{Alpha: tt.in}
		s.Clamp()
		assert.Equal(t, tt.want, s.Alpha, "alpha %d", tt.in)
	}
}

func TestDecodeSettings(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		s, err := DecodeSettings(nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultSettings(), s)
	})

	t.Run("missing fields keep defaults", func(t *testing.T) {
		s, err := DecodeSettings([]byte(`{"hideCompassArrow":true}`))
		require.NoError(t, err)
		assert.Equal(t, Settings{HideCompassArrow: true, Alpha: 100}, s)
	})

	t.Run("alpha clamped", func(t *testing.T) {
		s, err := DecodeSettings([]byte(`{"alpha":150}`))
		require.NoError(t, err)
		assert.Equal(t, 100, s.Alpha)

		s, err = DecodeSettings([]byte(`{"alpha":-20}`))
		require.NoError(t, err)
		assert.Equal(t, 0, s.Alpha)
	})

	t.Run("malformed", func(t *testing.T) {
		s, err := DecodeSettings([]byte(`{"alpha":`))
		assert.Error(t, err)
		assert.Equal(t, DefaultSettings(), s)
	})
}

func TestEncodeSettingsRoundTrip(t *testing.T) {
	data, err := EncodeSettings(Settings{HideCompassBubble: true, Alpha: 300})
	require.NoError(t, err)
	assert.JSONEq(t, `{"hideCompassBubble":true,"hideCompassArrow":false,"alpha":100}`, string(data))
}

func TestSettingsModes(t *testing.T) {
	assert.Equal(t, OffsetWithArrow, DefaultSettings().OffsetMode())
	assert.Equal(t, OffsetBubbleOnly, Settings{HideCompassArrow: true}.OffsetMode())

	assert.True(t, Settings{HideCompassBubble: true}.Enabled())
	assert.False(t, Settings{HideCompassBubble: true, HideCompassArrow: true}.Enabled())

	assert.InDelta(t, 0.4, Settings{Alpha: 40}.Opacity(), 1e-9)
}
