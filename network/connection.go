package network

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/hippo-arena/parameter"
)

// Peer is one connected spectator
type Peer struct {
	ID   uuid.UUID
	Addr string

	LastSeen atomic.Int64 // UnixNano

	conn *websocket.Conn
	cfg  *Config

	// Send queue
	sendCh chan []byte

	// Lifecycle
	closeCh   chan struct{}
	closeOnce sync.Once
}

func newPeer(conn *websocket.Conn, cfg *Config) *Peer {
	p := &Peer{
		ID:      uuid.New(),
		Addr:    conn.RemoteAddr().String(),
		conn:    conn,
		cfg:     cfg,
		sendCh:  make(chan []byte, cfg.SendBuffer),
		closeCh: make(chan struct{}),
	}
	p.LastSeen.Store(time.Now().UnixNano())
	return p
}

// Send queues a frame without blocking
// Returns false if the peer is closed or its queue is full
func (p *Peer) Send(frame []byte) bool {
	select {
	case <-p.closeCh:
		return false
	default:
	}

	select {
	case p.sendCh <- frame:
		return true
	default:
		return false
	}
}

// Close sends a normal-closure frame and drops the connection; safe to call repeatedly
func (p *Peer) Close() {
	p.closeOnce.Do(func() {
		close(p.closeCh)
		if p.conn == nil {
			return
		}
		_ = p.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(parameter.SpectateCloseGrace))
		p.conn.Close()
	})
}

// Done is closed once the peer shuts down
func (p *Peer) Done() <-chan struct{} {
	return p.closeCh
}

// readLoop keeps the read deadline alive and discards inbound data frames
func (p *Peer) readLoop() {
	defer p.Close()

	p.conn.SetReadLimit(p.cfg.ReadLimit)
	_ = p.conn.SetReadDeadline(time.Now().Add(p.cfg.PongWait))
	p.conn.SetPongHandler(func(string) error {
		p.LastSeen.Store(time.Now().UnixNano())
		return p.conn.SetReadDeadline(time.Now().Add(p.cfg.PongWait))
	})

	for {
		if _, _, err := p.conn.ReadMessage(); err != nil {
			return
		}
		p.LastSeen.Store(time.Now().UnixNano())
	}
}

// writeLoop drains the send queue and pings on idle
func (p *Peer) writeLoop() {
	ticker := time.NewTicker(p.cfg.PingPeriod)
	defer func() {
		ticker.Stop()
		p.Close()
	}()

	for {
		select {
		case <-p.closeCh:
			return

		case frame := <-p.sendCh:
			_ = p.conn.SetWriteDeadline(time.Now().Add(p.cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.BinaryMessage, frame); err != nil {
				return
			}

		case <-ticker.C:
			_ = p.conn.SetWriteDeadline(time.Now().Add(p.cfg.WriteTimeout))
			if err := p.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
