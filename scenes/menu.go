package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// MenuScene displays the title menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(ms.sceneChanger)
	}
	createConnectScene := func() interface{} {
		return NewConnectScene(ms.sceneChanger)
	}

	// The menu reads input before the settings overlay so closing the
	// overlay with Back doesn't also exit the game.
	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, createWorldScene, createConnectScene))
	ms.ecs.AddSystem(systems.UpdateSettingsMenu)

	// Renderers (settings draws on top of menu)
	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawSettingsMenu)
}
