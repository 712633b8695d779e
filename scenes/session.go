package scenes

import (
	"github.com/automoto/peerfinder/compass"
	"github.com/automoto/peerfinder/components"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/systems"
	"github.com/automoto/peerfinder/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// sessionOptions are the scene-specific pieces of a session world.
type sessionOptions struct {
	Session    *compass.Session
	ViewerName string
	Location   string
	OnExit     func()
	Status     func() string
	Hint       string
	// Systems run after the viewer's input and before movement.
	Systems []ecs.System
}

// newSessionECS builds the world shared by the offline and networked
// sessions: a location, the viewer, the camera and the compass.
func newSessionECS(opts sessionOptions) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	// Back is checked before the settings overlay so closing the overlay
	// doesn't also leave the session.
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewSessionExit(opts.OnExit))
	e.AddSystem(systems.UpdateSettingsMenu)
	e.AddSystem(systems.UpdateZoomKeys)
	for _, s := range opts.Systems {
		e.AddSystem(s)
	}
	e.AddSystem(systems.UpdatePeerRoutes)
	e.AddSystem(systems.UpdateViewer)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateCompass)
	e.AddSystem(systems.UpdateDebug)

	e.AddRenderer(cfg.Default, systems.DrawLocation)
	e.AddRenderer(cfg.Default, systems.DrawCharacters)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.HUD, systems.NewDrawHUD(opts.Status, opts.Hint))
	e.AddRenderer(cfg.HUD, systems.DrawCompass)
	e.AddRenderer(cfg.Overlay, systems.DrawSettingsMenu)

	location := factory.CreateLocation(e, opts.Location)
	loc := components.Location.Get(location).Current

	factory.CreateCamera(e, loc.PlayerSpawn, systems.GetOrCreateSettingsMenu(e).Zoom)
	factory.CreateViewer(e, opts.ViewerName, loc.PlayerSpawn)
	factory.CreateCompass(e, opts.Session)
	systems.SnapCamera(e)

	return e
}
