package engine

import (
	"sync"
	"sync/atomic"
	"time"
)

// TimeProvider is a source of wall time
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// MockTimeProvider provides a controllable time source for testing
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
}

func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{currentTime: startTime}
}

func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

func (m *MockTimeProvider) SetTime(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = t
}

// Advance moves the mocked time forward by d
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// PausableClock is game time over a real time source; paused intervals are excluded
type PausableClock struct {
	mu   sync.RWMutex
	wall TimeProvider

	start           time.Time
	isPaused        atomic.Bool
	pauseStart      time.Time
	totalPausedTime time.Duration
}

// NewPausableClock creates a clock over wall time; nil uses the system clock
func NewPausableClock(wall TimeProvider) *PausableClock {
	if wall == nil {
		wall = NewMonotonicTimeProvider()
	}
	return &PausableClock{wall: wall, start: wall.Now()}
}

// Now returns current game time, frozen while paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.isPaused.Load() {
		return pc.start.Add(pc.pauseStart.Sub(pc.start) - pc.totalPausedTime)
	}
	return pc.start.Add(pc.wall.Now().Sub(pc.start) - pc.totalPausedTime)
}

// Pause stops game time advancement
func (pc *PausableClock) Pause() {
	if pc.isPaused.CompareAndSwap(false, true) {
		pc.mu.Lock()
		pc.pauseStart = pc.wall.Now()
		pc.mu.Unlock()
	}
}

// Resume continues game time advancement
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if pc.isPaused.CompareAndSwap(true, false) {
		pc.totalPausedTime += pc.wall.Now().Sub(pc.pauseStart)
		pc.pauseStart = time.Time{}
	}
}

// Toggle flips the pause state and returns the new state
func (pc *PausableClock) Toggle() bool {
	if pc.IsPaused() {
		pc.Resume()
		return false
	}
	pc.Pause()
	return true
}

func (pc *PausableClock) IsPaused() bool {
	return pc.isPaused.Load()
}

// TotalPauseDuration returns cumulative pause time including a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	total := pc.totalPausedTime
	if pc.isPaused.Load() {
		total += pc.wall.Now().Sub(pc.pauseStart)
	}
	return total
}
