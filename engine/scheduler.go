package engine

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hippo-arena/parameter"
)

// ErrSchedulerRunning is returned by Start when the loop is already active
var ErrSchedulerRunning = errors.New("scheduler already running")

// ErrSchedulerStopped is returned by Start after Stop; a scheduler is single-use
var ErrSchedulerStopped = errors.New("scheduler stopped")

// TickFunc is invoked once per tick with the capped game-time delta
type TickFunc func(dt time.Duration)

// Scheduler drives a TickFunc from a clock at a fixed interval
// At most one loop goroutine exists per Scheduler
type Scheduler struct {
	clock    TimeProvider
	interval time.Duration
	maxDelta time.Duration
	tick     TickFunc

	mu       sync.Mutex
	lastTick time.Time

	tickCount atomic.Uint64
	onPanic   func(r any)

	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	running  atomic.Bool
	stopped  atomic.Bool
}

// NewScheduler creates a scheduler reading time from clock (typically a PausableClock)
func NewScheduler(clock TimeProvider, interval time.Duration, tick TickFunc) *Scheduler {
	return &Scheduler{
		clock:    clock,
		interval: interval,
		maxDelta: parameter.MaxFrameDelta,
		tick:     tick,
		lastTick: clock.Now(),
		stopChan: make(chan struct{}),
	}
}

// Start launches the loop goroutine
func (s *Scheduler) Start() error {
	if s.stopped.Load() {
		return ErrSchedulerStopped
	}
	if !s.running.CompareAndSwap(false, true) {
		return ErrSchedulerRunning
	}

	s.mu.Lock()
	s.lastTick = s.clock.Now()
	s.mu.Unlock()

	s.wg.Add(1)
	go s.loop()
	return nil
}

// Stop halts the loop and waits for it to exit; safe to call repeatedly
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.stopped.Store(true)
		close(s.stopChan)
	})
	s.wg.Wait()
	s.running.Store(false)
}

// SetPanicHandler routes a tick panic to fn instead of crashing the process
// The loop exits after fn returns; must be called before Start
func (s *Scheduler) SetPanicHandler(fn func(r any)) {
	s.onPanic = fn
}

// SetMaxDelta lowers or raises the per-tick delta cap; must be called before Start
func (s *Scheduler) SetMaxDelta(d time.Duration) {
	if d > 0 {
		s.maxDelta = d
	}
}

// Running reports whether the loop goroutine is active
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

// Ticks returns the number of ticks executed
func (s *Scheduler) Ticks() uint64 {
	return s.tickCount.Load()
}

// Step measures the delta since the previous tick, caps it and runs one tick synchronously
// Returns the delta passed to the tick function
func (s *Scheduler) Step() time.Duration {
	s.mu.Lock()
	now := s.clock.Now()
	dt := now.Sub(s.lastTick)
	s.lastTick = now
	s.mu.Unlock()

	if dt < 0 {
		dt = 0
	}
	if dt > s.maxDelta {
		dt = s.maxDelta
	}

	s.tickCount.Add(1)
	s.tick(dt)
	return dt
}

func (s *Scheduler) loop() {
	defer s.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[scheduler] tick panic: %v", r)
			s.running.Store(false)
			if s.onPanic == nil {
				panic(r)
			}
			s.onPanic(r)
		}
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.Step()
		}
	}
}
