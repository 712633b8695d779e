package systems

import (
	"fmt"

	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/fonts"
	"github.com/automoto/peerfinder/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const hudPadding = 8

// NewDrawHUD returns a renderer for the status and hint panels. status
// supplies the session line, e.g. the connection state.
func NewDrawHUD(status func() string, hint string) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		uiScale := GetOrCreateSettingsMenu(e).UIScale
		sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
		regions := HUDRegions(sw, sh, uiScale)
		if uiScale <= 0 {
			uiScale = 1
		}

		face := fonts.Small.Get()
		lineHeight := float64(face.Metrics().Height.Ceil())

		statusPanel := regions[0]
		drawPanel(screen, statusPanel.X*uiScale, statusPanel.Y*uiScale, statusPanel.W*uiScale, statusPanel.H*uiScale)
		x := int(statusPanel.X*uiScale) + hudPadding
		y := statusPanel.Y*uiScale + hudPadding + lineHeight
		for _, line := range statusLines(e, status) {
			text.Draw(screen, line, face, x, int(y), cfg.UI.TextColor)
			y += lineHeight
		}

		hintPanel := regions[1]
		drawPanel(screen, hintPanel.X*uiScale, hintPanel.Y*uiScale, hintPanel.W*uiScale, hintPanel.H*uiScale)
		text.Draw(screen, hint, face,
			int(hintPanel.X*uiScale)+hudPadding,
			int((hintPanel.Y+hintPanel.H/2)*uiScale+lineHeight/3),
			cfg.UI.TextColor)
	}
}

func statusLines(e *ecs.ECS, status func() string) []string {
	var lines []string
	if loc := currentLocation(e); loc != nil {
		here, total := 0, 0
		tags.Peer.Each(e.World, func(entry *donburi.Entry) {
			total++
			if components.Peer.Get(entry).Location == loc.Name {
				here++
			}
		})
		lines = append(lines, loc.Title, fmt.Sprintf("Peers here: %d of %d", here, total))
	}
	if status != nil {
		if s := status(); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

func drawPanel(screen *ebiten.Image, x, y, w, h float64) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), cfg.UI.PanelColor, false)
}
