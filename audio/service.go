package audio

import (
	"log"
	"sync/atomic"
)

// AudioService wraps SoundManager as a Service
// A missing audio backend disables it instead of failing startup
type AudioService struct {
	manager  *SoundManager
	disabled atomic.Bool
}

// NewService creates an audio service with linear volume in [0,1]
func NewService(volume float64) *AudioService {
	return &AudioService{manager: NewSoundManager(volume)}
}

// Name implements service.Service
func (s *AudioService) Name() string {
	return "audio"
}

// Dependencies implements service.Service
func (s *AudioService) Dependencies() []string {
	return nil
}

// Init implements service.Service
func (s *AudioService) Init() error {
	if err := s.manager.Initialize(); err != nil {
		log.Printf("[audio] %v (continuing without audio)", err)
		s.disabled.Store(true)
	}
	return nil
}

// Start implements service.Service; the speaker runs its own goroutine
func (s *AudioService) Start() error {
	return nil
}

// Stop implements service.Service
func (s *AudioService) Stop() error {
	s.manager.Cleanup()
	return nil
}

// Manager returns the underlying sound manager
func (s *AudioService) Manager() *SoundManager {
	return s.manager
}

// Disabled reports whether no audio backend was available
func (s *AudioService) Disabled() bool {
	return s.disabled.Load()
}
