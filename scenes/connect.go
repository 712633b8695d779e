package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/peerfinder/config"
	"github.com/automoto/peerfinder/logging"
	"github.com/automoto/peerfinder/network"
	"github.com/automoto/peerfinder/shared/netconfig"
	"github.com/automoto/peerfinder/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// ConnectScene asks for a server address and player name, then joins.
type ConnectScene struct {
	sceneChanger SceneChanger
	connectUI    *ui.ConnectUI
	netClient    *network.Client
	once         sync.Once
	shouldGoBack bool
}

func NewConnectScene(sc SceneChanger) *ConnectScene {
	return &ConnectScene{sceneChanger: sc}
}

func (s *ConnectScene) Update() {
	s.once.Do(s.configure)

	if s.connectUI == nil || s.shouldGoBack {
		if s.netClient != nil {
			s.netClient.Disconnect()
			s.netClient = nil
		}
		s.sceneChanger.ChangeScene(NewMenuScene(s.sceneChanger))
		return
	}

	s.connectUI.Update()

	if s.netClient == nil {
		return
	}

	switch s.netClient.State() {
	case network.StateJoinedGame:
		s.connectUI.SetStatus("Joined! Loading location...")
		client := s.netClient
		s.netClient = nil
		s.sceneChanger.ChangeScene(NewNetworkedScene(s.sceneChanger, client))

	case network.StateError:
		errMsg := "Connection failed"
		if err := s.netClient.LastError(); err != nil {
			errMsg = err.Error()
		}
		s.connectUI.SetStatus(errMsg)
		s.connectUI.SetConnecting(false)
		s.netClient.Disconnect()
		s.netClient = nil

	case network.StateConnecting:
		s.connectUI.SetStatus("Connecting...")

	case network.StateConnected:
		s.connectUI.SetStatus("Connected, joining...")

	case network.StateDisconnected:
		s.connectUI.SetStatus("Disconnected")
		s.connectUI.SetConnecting(false)
		s.netClient = nil
	}
}

func (s *ConnectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if s.connectUI == nil {
		return
	}
	s.connectUI.UI.Draw(screen)
}

func (s *ConnectScene) configure() {
	connectUI, err := ui.NewConnectUI(
		cfg.Network.DefaultAddress,
		cfg.Network.PlayerName,
		s.onConnect,
		func() { s.shouldGoBack = true },
	)
	if err != nil {
		logger := logging.For("connect")
		logger.Error().Err(err).Msg("failed to build connect screen")
		return
	}
	s.connectUI = connectUI
}

func (s *ConnectScene) onConnect(address, playerName string) {
	if s.netClient != nil {
		s.netClient.Disconnect()
	}

	s.connectUI.SetStatus("Connecting...")
	s.connectUI.SetConnecting(true)

	cfg.Network.PlayerName = playerName
	logger := logging.For("connect")
	logger.Info().Str("address", address).Str("name", playerName).Msg("joining server")

	s.netClient = network.NewClient()
	s.netClient.Connect(address, netconfig.ProtocolVersion, playerName, cfg.Viewer.StartLocation)
}
