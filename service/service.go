// Package service manages the lifecycle of host subsystems: audio output and the spectator feed
package service

// Service defines the lifecycle interface for infrastructure subsystems
//
// Lifecycle:
//  1. Construction with its configuration
//  2. Init() - acquire resources that may fail (devices, sockets)
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	Init() error
	Start() error

	// Stop must be idempotent
	Stop() error
}
