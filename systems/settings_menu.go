package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/peerfinder/compass"
	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/fonts"
	"github.com/automoto/peerfinder/logging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const numSettingsOptions = int(components.SettingsOptBack) + 1

// UpdateSettingsMenu handles settings navigation and value changes.
// Every change is applied and saved straight away.
func UpdateSettingsMenu(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	input := getOrCreateInput(e)

	if !settings.IsOpen {
		if GetAction(input, cfg.ActionSettings).JustPressed {
			OpenSettings(e)
		}
		return
	}
	if settings.JustOpened {
		settings.JustOpened = false
		return
	}

	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) - 1 + numSettingsOptions) % numSettingsOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		settings.SelectedOption = components.SettingsMenuOption(
			(int(settings.SelectedOption) + 1) % numSettingsOptions,
		)
	}

	if GetAction(input, cfg.ActionMenuLeft).JustPressed {
		adjustValue(settings, -1)
	}
	if GetAction(input, cfg.ActionMenuRight).JustPressed {
		adjustValue(settings, +1)
	}
	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		handleSelect(settings)
	}

	if GetAction(input, cfg.ActionMenuBack).JustPressed ||
		GetAction(input, cfg.ActionSettings).JustPressed {
		closeSettings(settings)
	}
}

// adjustValue changes the value for the selected option
func adjustValue(s *components.SettingsMenuData, direction int) {
	switch s.SelectedOption {
	case components.SettingsOptBubble:
		s.Compass.HideCompassBubble = !s.Compass.HideCompassBubble
	case components.SettingsOptArrow:
		s.Compass.HideCompassArrow = !s.Compass.HideCompassArrow
	case components.SettingsOptOpacity:
		s.Compass.Alpha = AdjustAlpha(s.Compass.Alpha, direction)
	case components.SettingsOptZoom:
		s.Zoom = clampRange(s.Zoom+float64(direction)*cfg.Camera.ZoomStep, cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
	case components.SettingsOptUIScale:
		s.UIScale = clampRange(s.UIScale+float64(direction)*cfg.UI.ScaleStep, cfg.UI.MinScale, cfg.UI.MaxScale)
	case components.SettingsOptFullscreen:
		toggleFullscreen(s)
	default:
		return
	}
	persistSettings(s)
}

// AdjustAlpha moves alpha one step in direction, staying inside the valid range.
func AdjustAlpha(alpha, direction int) int {
	s := compass.Settings{Alpha: alpha + direction*cfg.SettingsMenu.AlphaStep}
	s.Clamp()
	return s.Alpha
}

// handleSelect handles the select/enter action
func handleSelect(s *components.SettingsMenuData) {
	switch s.SelectedOption {
	case components.SettingsOptBubble,
		components.SettingsOptArrow,
		components.SettingsOptFullscreen:
		adjustValue(s, +1)
	case components.SettingsOptBack:
		closeSettings(s)
	}
}

func toggleFullscreen(s *components.SettingsMenuData) {
	s.Fullscreen = !s.Fullscreen
	ebiten.SetFullscreen(s.Fullscreen)
}

// closeSettings closes the settings menu and saves settings
func closeSettings(s *components.SettingsMenuData) {
	s.IsOpen = false
	persistSettings(s)
	logger := logging.For("settings")
	logger.Debug().
		Int("alpha", s.Compass.Alpha).
		Bool("hideBubble", s.Compass.HideCompassBubble).
		Bool("hideArrow", s.Compass.HideCompassArrow).
		Msg("settings closed")
}

// DrawSettingsMenu renders the settings overlay.
func DrawSettingsMenu(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettingsMenu(e)
	if !settings.IsOpen {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	fontFace := fonts.Bold.Get()
	titleFont := fonts.Title.Get()

	title := "SETTINGS"
	titleWidth := fonts.Width(titleFont, title)
	text.Draw(screen, title, titleFont, int((width-titleWidth)/2), 80, cfg.Menu.TitleColor)

	itemHeight := cfg.SettingsMenu.MenuItemHeight
	itemGap := cfg.SettingsMenu.MenuItemGap
	totalHeight := float64(numSettingsOptions) * (itemHeight + itemGap)
	startY := (height-totalHeight)/2 + 10

	for i := 0; i < numSettingsOptions; i++ {
		opt := components.SettingsMenuOption(i)
		y := startY + float64(i)*(itemHeight+itemGap)

		textColor := cfg.Menu.TextColorNormal
		if opt == settings.SelectedOption {
			textColor = cfg.Menu.TextColorSelected
		}

		label, value := getOptionDisplay(settings, opt)
		labelX := int(width/2 - cfg.SettingsMenu.LabelWidth)
		text.Draw(screen, label, fontFace, labelX, int(y+itemHeight), textColor)
		if value != "" {
			text.Draw(screen, value, fontFace, int(width/2)+40, int(y+itemHeight), textColor)
		}
	}

	input := getOrCreateInput(e)
	hint := getSettingsHint(input.LastInputMethod)
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, int((width-fonts.Width(hintFont, hint))/2), int(height)-12, cfg.Menu.TextColorNormal)
}

// getSettingsHint returns the appropriate hint for settings menu
func getSettingsHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Left/Right: Change   Cross: Select   Circle: Back"
	case components.InputXbox:
		return "D-Pad: Navigate   Left/Right: Change   A: Select   B: Back"
	}
	return "Arrows: Navigate   Left/Right: Change   Enter: Select   Esc: Back"
}

// getOptionDisplay returns the label and value display for an option
func getOptionDisplay(s *components.SettingsMenuData, opt components.SettingsMenuOption) (string, string) {
	switch opt {
	case components.SettingsOptBubble:
		return "Compass Bubble", formatToggle(!s.Compass.HideCompassBubble)
	case components.SettingsOptArrow:
		return "Compass Arrow", formatToggle(!s.Compass.HideCompassArrow)
	case components.SettingsOptOpacity:
		return "Compass Opacity", formatPercentBar(s.Compass.Alpha)
	case components.SettingsOptZoom:
		return "Zoom", fmt.Sprintf("%.2fx", s.Zoom)
	case components.SettingsOptUIScale:
		return "UI Scale", fmt.Sprintf("%.2fx", s.UIScale)
	case components.SettingsOptFullscreen:
		return "Fullscreen", formatToggle(s.Fullscreen)
	case components.SettingsOptBack:
		return "< Back", ""
	default:
		return "", ""
	}
}

// formatPercentBar renders 0-100 as a ten-notch bar.
func formatPercentBar(percent int) string {
	filled := percent / 10
	return fmt.Sprintf("[%s%s] %d%%", strings.Repeat("|", filled), strings.Repeat(".", 10-filled), percent)
}

// formatToggle formats a boolean as On/Off
func formatToggle(value bool) string {
	if value {
		return "[X] On"
	}
	return "[ ] Off"
}

// GetOrCreateSettingsMenu returns the singleton SettingsMenu component, creating if needed.
func GetOrCreateSettingsMenu(e *ecs.ECS) *components.SettingsMenuData {
	if _, ok := components.SettingsMenu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.SettingsMenu))
		components.SettingsMenu.SetValue(ent, components.SettingsMenuData{
			SelectedOption: components.SettingsOptBubble,
			Compass:        globalCompass,
			Zoom:           globalDisplay.Zoom,
			UIScale:        globalDisplay.UIScale,
			Fullscreen:     ebiten.IsFullscreen(),
		})
	}

	ent, _ := components.SettingsMenu.First(e.World)
	return components.SettingsMenu.Get(ent)
}

// OpenSettings opens the settings overlay
func OpenSettings(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	settings.IsOpen = true
	settings.JustOpened = true
	settings.SelectedOption = components.SettingsOptBubble
	settings.Fullscreen = ebiten.IsFullscreen()
}

// IsSettingsOpen returns true if the settings menu is currently open
func IsSettingsOpen(e *ecs.ECS) bool {
	return GetOrCreateSettingsMenu(e).IsOpen
}

// UpdateZoomKeys steps the camera zoom from the zoom actions outside the
// settings overlay.
func UpdateZoomKeys(e *ecs.ECS) {
	settings := GetOrCreateSettingsMenu(e)
	if settings.IsOpen {
		return
	}
	input := getOrCreateInput(e)

	step := 0
	if GetAction(input, cfg.ActionZoomIn).JustPressed {
		step++
	}
	if GetAction(input, cfg.ActionZoomOut).JustPressed {
		step--
	}
	if step == 0 {
		return
	}
	zoom := clampRange(settings.Zoom+float64(step)*cfg.Camera.ZoomStep, cfg.Camera.MinZoom, cfg.Camera.MaxZoom)
	if zoom == settings.Zoom {
		return
	}
	settings.Zoom = zoom
	persistSettings(settings)
}

// NewSessionExit returns a system that calls onExit when Back is pressed
// outside the settings overlay. Add it before UpdateSettingsMenu.
func NewSessionExit(onExit func()) ecs.System {
	return func(e *ecs.ECS) {
		if IsSettingsOpen(e) {
			return
		}
		if GetAction(getOrCreateInput(e), cfg.ActionMenuBack).JustPressed {
			onExit()
		}
	}
}
