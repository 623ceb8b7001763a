// Package network serves a read-only spectator feed of the arena over HTTP and WebSocket
package network

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/hippo-arena/arena"
	"github.com/lixenwraith/hippo-arena/event"
	"github.com/lixenwraith/hippo-arena/status"
)

var ErrAlreadyRunning = errors.New("spectate server already running")

// Source provides the current arena state
type Source interface {
	Snapshot() arena.Snapshot
}

// Server exposes /status, /snapshot and the /ws feed
// Spectators cannot influence the arena; inbound frames are discarded
type Server struct {
	cfg    *Config
	source Source
	status *status.Registry
	hub    *Hub
	logger *log.Logger

	upgrader websocket.Upgrader
	httpSrv  *http.Server
	listener net.Listener
	seq      atomic.Uint64
	running  atomic.Bool
}

func NewServer(cfg *Config, source Source, reg *status.Registry) *Server {
	s := &Server{
		cfg:    cfg,
		source: source,
		status: reg,
		hub:    NewHub(reg),
		logger: log.New(os.Stdout, "[SPECTATE] ", log.LstdFlags),
		upgrader: websocket.Upgrader{
			// Read-only feed, any origin may watch
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	s.httpSrv = &http.Server{Handler: s.Routes()}
	return s
}

// SetLogger redirects server logs; the terminal host sends them to the debug log
func (s *Server) SetLogger(l *log.Logger) {
	s.logger = l
}

// Routes builds the HTTP handler
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/status", s.handleStatus)
	r.Get("/snapshot", s.handleSnapshot)
	r.Get("/ws", s.handleWS)

	return r
}

// Start listens on the configured address and serves in the background
func (s *Server) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	s.listener = ln
	s.logger.Printf("listening on %s", ln.Addr())

	go func() {
		if err := s.httpSrv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Printf("serve: %v", err)
		}
	}()
	return nil
}

// Addr returns the bound address, empty before Start
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop disconnects spectators and shuts the listener down
func (s *Server) Stop(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	s.hub.Close()
	return s.httpSrv.Shutdown(ctx)
}

// PublishSnapshot fans the snapshot out to every spectator
func (s *Server) PublishSnapshot(snap arena.Snapshot) error {
	if s.hub.Count() == 0 {
		return nil
	}
	frame, err := Encode(MsgSnapshot, s.seq.Add(1), &snap)
	if err != nil {
		return err
	}
	s.hub.Broadcast(frame)
	return nil
}

// PublishEvents forwards arena notifications
func (s *Server) PublishEvents(events []event.GameEvent) error {
	if s.hub.Count() == 0 {
		return nil
	}
	for _, ev := range events {
		frame, err := Encode(MsgEvent, s.seq.Add(1), noticeOf(ev))
		if err != nil {
			return err
		}
		s.hub.Broadcast(frame)
	}
	return nil
}

// Spectators returns the number of connected peers
func (s *Server) Spectators() int {
	return s.hub.Count()
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.status.Snapshot()); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// handleSnapshot serves msgpack by default, JSON with ?format=json
func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := s.source.Snapshot()

	if r.URL.Query().Get("format") == "json" {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(&snap); err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}

	body, err := msgpack.Marshal(&snap)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/msgpack")
	_, _ = w.Write(body)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("upgrade %s: %v", middleware.GetReqID(r.Context()), err)
		return
	}

	p := newPeer(conn, s.cfg)
	hello, err := Encode(MsgHello, s.seq.Add(1), &Hello{PeerID: p.ID.String()})
	if err == nil {
		p.Send(hello)
	}
	s.hub.Add(p)
	s.logger.Printf("spectator %s joined from %s", p.ID, p.Addr)

	go p.writeLoop()
	go func() {
		p.readLoop()
		s.logger.Printf("spectator %s left", p.ID)
	}()
}
