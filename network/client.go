package network

import (
	"context"
	"fmt"
	"sync"

	"github.com/automoto/peerfinder/logging"
	"github.com/automoto/peerfinder/shared/messages"
	"github.com/coder/websocket"
	"github.com/leap-fish/necs/esync"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

// Client manages a WebSocket connection to the game server.
// All shared fields are protected by mu (router callbacks run on necs goroutines).
type Client struct {
	mu sync.RWMutex

	state          ClientState
	lastError      error
	networkID      esync.NetworkId
	reconnectToken string
	serverName     string
	tickRate       int
	location       string
	conn           *websocket.Conn

	snapshotCh chan esync.WorldSnapshot // size-1 buffered; latest wins

	joinedCh chan messages.PeerJoined
	leftCh   chan messages.PeerLeft
}

func NewClient() *Client {
	return &Client{
		state:      StateDisconnected,
		snapshotCh: make(chan esync.WorldSnapshot, 1),
		joinedCh:   make(chan messages.PeerJoined, 16),
		leftCh:     make(chan messages.PeerLeft, 64),
	}
}

// Connect dials address (a ws:// or wss:// URL) in a background goroutine
// and initiates the join handshake.
func (c *Client) Connect(address, version, playerName, location string) {
	log := logging.For("client")

	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.location = location
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Info().Str("address", address).Msg("connected to server")
		c.mu.Lock()
		c.state = StateConnected
		c.mu.Unlock()

		payload, err := router.Serialize(messages.JoinRequest{
			Version:    version,
			PlayerName: playerName,
			Location:   location,
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to serialize join request: %w", err))
			return
		}

		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()

		if conn != nil {
			if err := conn.Write(context.Background(), websocket.MessageBinary, payload); err != nil {
				c.setError(fmt.Errorf("failed to send join request: %w", err))
			}
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Info().
			Uint("networkID", uint(msg.NetworkID)).
			Str("server", msg.ServerName).
			Int("tickRate", msg.TickRate).
			Msg("join accepted")
		c.mu.Lock()
		c.networkID = msg.NetworkID
		c.reconnectToken = msg.ReconnectToken
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		if msg.Location != "" {
			c.location = msg.Location
		}
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Warn().Str("reason", msg.Reason).Msg("join rejected")
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, snapshot esync.WorldSnapshot) {
		select { // drain stale, push latest
		case <-c.snapshotCh:
		default:
		}
		c.snapshotCh <- snapshot
	})

	router.On(func(_ *router.NetworkClient, evt messages.PeerJoined) {
		select {
		case c.joinedCh <- evt:
		default:
		}
	})

	// A dropped leave is picked up when the peer is missing from the next snapshot.
	router.On(func(_ *router.NetworkClient, evt messages.PeerLeft) {
		select {
		case c.leftCh <- evt:
		default:
			log.Warn().Uint("networkID", uint(evt.NetworkID)).Msg("leave event dropped")
		}
	})

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Info().Err(err).Msg("disconnected")
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Error().Err(err).Msg("network error")
	})

	go func() {
		transport := transports.NewWsClientTransport(address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) NetworkID() esync.NetworkId {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.networkID
}

// Location is where the server placed the local participant.
func (c *Client) Location() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.location
}

func (c *Client) ServerName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.serverName
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// LatestSnapshot returns the most recent WorldSnapshot, or nil. Non-blocking.
func (c *Client) LatestSnapshot() *esync.WorldSnapshot {
	select {
	case snap := <-c.snapshotCh:
		return &snap
	default:
		return nil
	}
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// DrainJoinedEvents returns all pending join announcements, non-blocking.
func (c *Client) DrainJoinedEvents() []messages.PeerJoined {
	return drainChan(c.joinedCh)
}

// DrainLeftEvents returns all pending leave announcements, non-blocking.
func (c *Client) DrainLeftEvents() []messages.PeerLeft {
	return drainChan(c.leftCh)
}

func drainChan[T any](ch chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
