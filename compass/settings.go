package compass

import (
	"encoding/json"
	"fmt"
)

const (
	MinAlpha = 0
	MaxAlpha = 100
)

// Settings are the user-facing compass options persisted between runs.
type Settings struct {
	HideCompassBubble bool `json:"hideCompassBubble"`
	HideCompassArrow  bool `json:"hideCompassArrow"`
	Alpha             int  `json:"alpha"`
}

func DefaultSettings() Settings {
	return Settings{Alpha: MaxAlpha}
}

// Clamp forces Alpha into [MinAlpha, MaxAlpha].
func (s *Settings) Clamp() {
	if s.Alpha < MinAlpha {
		s.Alpha = MinAlpha
	}
	if s.Alpha > MaxAlpha {
		s.Alpha = MaxAlpha
	}
}

// Enabled is false when neither the bubble nor the arrow is shown.
func (s Settings) Enabled() bool {
	return !s.HideCompassBubble || !s.HideCompassArrow
}

// Opacity is Alpha as a fraction in [0, 1].
func (s Settings) Opacity() float64 {
	return float64(s.Alpha) / 100.0
}

// OffsetMode keeps indicators further from the edge while the arrow is drawn.
func (s Settings) OffsetMode() OffsetMode {
	if s.HideCompassArrow {
		return OffsetBubbleOnly
	}
	return OffsetWithArrow
}

// DecodeSettings reads persisted settings. Missing fields keep their defaults
// and an out-of-range alpha is clamped. Empty data yields the defaults.
func DecodeSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return DefaultSettings(), fmt.Errorf("decode compass settings: %w", err)
	}
	s.Clamp()
	return s, nil
}

// EncodeSettings is the counterpart of DecodeSettings.
func EncodeSettings(s Settings) ([]byte, error) {
	s.Clamp()
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode compass settings: %w", err)
	}
	return data, nil
}
