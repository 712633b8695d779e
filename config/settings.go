package config

// SettingsMenuConfig contains settings overlay configuration
type SettingsMenuConfig struct {
	AlphaStep      int
	MenuItemHeight float64
	MenuItemGap    float64
	LabelWidth     float64
}

// SettingsMenu is the global settings menu configuration
var SettingsMenu SettingsMenuConfig

func init() {
	SettingsMenu = SettingsMenuConfig{
		AlphaStep:      10,
		MenuItemHeight: 28,
		MenuItemGap:    10,
		LabelWidth:     220,
	}
}
