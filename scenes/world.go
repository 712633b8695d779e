package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/peerfinder/compass"
	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/logging"
	"github.com/automoto/peerfinder/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

const offlineHint = "J join  K leave  H hide  Q/E zoom  Tab settings"

// WorldScene is an offline session populated with demo peers.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	session      *compass.Session
	playerName   string
	once         sync.Once
	exiting      bool
}

func NewWorldScene(sc SceneChanger) *WorldScene {
	return &WorldScene{
		sceneChanger: sc,
		session:      compass.NewSession(cfg.Compass.ReconcileInterval),
		playerName:   cfg.Network.PlayerName,
	}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.exiting {
		ws.session.Reset()
		logger := logging.For("world")
		logger.Info().Msg("offline session ended")
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.ecs = newSessionECS(sessionOptions{
		Session:    ws.session,
		ViewerName: ws.playerName,
		Location:   cfg.Viewer.StartLocation,
		OnExit:     func() { ws.exiting = true },
		Status:     func() string { return "Offline demo" },
		Hint:       offlineHint,
		Systems:    []ecs.System{systems.UpdateDemoPeers},
	})
	systems.SpawnDemoPeers(ws.ecs)

	logger := logging.For("world")
	logger.Info().Str("viewer", ws.playerName).Msg("offline session started")
}
