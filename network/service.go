package network

import (
	"context"
	"fmt"

	"github.com/lixenwraith/hippo-arena/status"
)

// Service wraps Server as a hub-managed service
type Service struct {
	config *Config
	server *Server
}

// NewService creates the spectator service for src
func NewService(cfg *Config, src Source, reg *status.Registry) *Service {
	return &Service{
		config: cfg,
		server: NewServer(cfg, src, reg),
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "spectate"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (s *Service) Init() error {
	if s.config.Addr == "" {
		return fmt.Errorf("spectate: empty listen address")
	}
	if s.config.PingPeriod >= s.config.PongWait {
		return fmt.Errorf("spectate: ping period %v must be shorter than pong wait %v", s.config.PingPeriod, s.config.PongWait)
	}
	return nil
}

// Start implements service.Service
func (s *Service) Start() error {
	return s.server.Start()
}

// Stop implements service.Service
func (s *Service) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.WriteTimeout)
	defer cancel()
	return s.server.Stop(ctx)
}

// Server returns the underlying spectator server
func (s *Service) Server() *Server {
	return s.server
}
