package systems

import (
	"github.com/automoto/peerfinder/compass"
	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/logging"
	"github.com/automoto/peerfinder/storage"
	"github.com/hajimehoshi/ebiten/v2"
)

// Nil until InitPersistence succeeds; a nil store loads and saves nothing.
var settingsStore *storage.Store

// Settings every new scene starts from. Loaded once at startup and kept in
// step with the settings overlay.
var (
	globalCompass = compass.DefaultSettings()
	globalDisplay = storage.Display{
		Zoom:    cfg.Camera.DefaultZoom,
		UIScale: cfg.UI.DefaultScale,
	}
)

// InitPersistence opens the gdata settings storage
func InitPersistence() error {
	s, err := storage.Open()
	if err != nil {
		return err
	}
	settingsStore = s
	return nil
}

// SaveCurrentSettings saves everything the settings overlay edits and makes
// it the starting point for later scenes. Both items are attempted; the error
// joins whatever failed.
func SaveCurrentSettings(s *components.SettingsMenuData) error {
	globalCompass = s.Compass
	globalDisplay = storage.Display{
		Zoom:       s.Zoom,
		UIScale:    s.UIScale,
		Fullscreen: s.Fullscreen,
	}
	return settingsStore.Save(globalCompass, globalDisplay)
}

// persistSettings saves s and logs a failure. Settings stay applied for this
// run either way.
func persistSettings(s *components.SettingsMenuData) {
	if err := SaveCurrentSettings(s); err != nil {
		logger := logging.For("persistence")
		logger.Warn().Err(err).Msg("could not save settings")
	}
}

// ApplySavedSettingsGlobal loads saved settings before any scene exists.
// Launch options that set zoom or UI scale win over saved values.
func ApplySavedSettingsGlobal(zoom, uiScale float64) {
	log := logging.For("persistence")

	c, err := settingsStore.LoadCompass()
	if err != nil {
		log.Warn().Err(err).Msg("could not load compass settings, using defaults")
	}
	globalCompass = c

	saved, ok, err := settingsStore.LoadDisplay()
	if err != nil {
		log.Warn().Err(err).Msg("could not load display settings, using defaults")
	}
	if ok {
		globalDisplay = saved
	}
	if zoom > 0 {
		globalDisplay.Zoom = zoom
	}
	if uiScale > 0 {
		globalDisplay.UIScale = uiScale
	}
	globalDisplay.Zoom = clampRange(globalDisplay.Zoom, cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
	globalDisplay.UIScale = clampRange(globalDisplay.UIScale, cfg.UI.MinScale, cfg.UI.MaxScale)

	ebiten.SetFullscreen(globalDisplay.Fullscreen)

	log.Debug().
		Int("alpha", globalCompass.Alpha).
		Bool("hideBubble", globalCompass.HideCompassBubble).
		Bool("hideArrow", globalCompass.HideCompassArrow).
		Float64("zoom", globalDisplay.Zoom).
		Float64("uiScale", globalDisplay.UIScale).
		Msg("settings loaded")
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
