package main

import (
	"image"
	"os"

	"github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/config/launch"
	"github.com/automoto/peerfinder/fonts"
	"github.com/automoto/peerfinder/logging"
	"github.com/automoto/peerfinder/scenes"
	"github.com/automoto/peerfinder/shared/protocol"
	"github.com/automoto/peerfinder/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	opts, err := launch.Load(".")
	logging.Setup(opts.LogLevel, os.Stderr)
	log := logging.For("main")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load launch options")
	}

	config.Debug.SkipMenu = opts.SkipMenu
	if opts.Server.Address != "" {
		config.Network.DefaultAddress = opts.Server.Address
	}
	if opts.Player.Name != "" {
		config.Network.PlayerName = opts.Player.Name
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("failed to load fonts")
	}

	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatal().Err(err).Msg("failed to register network components")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Peerfinder")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn().Err(err).Msg("could not initialize persistence")
	}
	systems.ApplySavedSettingsGlobal(opts.Display.Zoom, opts.Display.UIScale)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal().Err(err).Msg("game exited with an error")
	}
}
