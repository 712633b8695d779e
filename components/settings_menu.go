package components

import (
	"github.com/automoto/peerfinder/compass"
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptBubble SettingsMenuOption = iota
	SettingsOptArrow
	SettingsOptOpacity
	SettingsOptZoom
	SettingsOptUIScale
	SettingsOptFullscreen
	SettingsOptBack
)

// SettingsMenuData stores the settings overlay state and the live values it edits
type SettingsMenuData struct {
	IsOpen         bool
	JustOpened     bool // input that opened the overlay is not handled again
	SelectedOption SettingsMenuOption

	Compass    compass.Settings
	Zoom       float64
	UIScale    float64
	Fullscreen bool
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
