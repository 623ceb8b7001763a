package engine

import (
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/config"
	"github.com/lixenwraith/hippo-arena/event"
	"github.com/lixenwraith/hippo-arena/status"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// World is the canonical mutable arena state
// It is owned by the tick loop; readers outside the loop take snapshots
type World struct {
	Spheres []*component.Sphere // power-ups included, tagged
	Hippos  []*component.Hippo

	Phase            Phase
	GameTime         time.Duration // game time since entering playing
	CountdownElapsed time.Duration
	Tick             uint64

	// Stuck detector
	LastStuckCheck time.Duration
	Stuck          bool
	StuckSince     time.Duration

	MatchID uuid.UUID
	Tuning  config.Tuning
	Rand    *vmath.FastRand

	Events *event.Queue
	Status *status.Registry

	systems      []System
	nextSphereID int

	statTicks *atomic.Int64
}

// NewWorld creates an empty world with its own event queue and metric registry
func NewWorld(tuning config.Tuning, rng *vmath.FastRand) *World {
	if rng == nil {
		rng = vmath.NewTimeSeededRand()
	}
	reg := status.NewRegistry()
	return &World{
		Tuning:    tuning,
		Rand:      rng,
		Events:    event.NewQueue(),
		Status:    reg,
		MatchID:   uuid.New(),
		statTicks: reg.Ints.Get(status.KeyTicks),
	}
}

// AddSystem registers a system, keeping the pipeline sorted by priority
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the pipeline in execution order
func (w *World) Systems() []System {
	return w.systems
}

// Update runs one playing tick: game time advances first, then every system in order
func (w *World) Update(dt time.Duration) {
	w.GameTime += dt
	w.Tick++
	w.statTicks.Add(1)
	for _, s := range w.systems {
		s.Update(w, dt)
	}
}

// NextSphereID hands out IDs unique within the current round
func (w *World) NextSphereID() int {
	id := w.nextSphereID
	w.nextSphereID++
	return id
}

// ResetRound clears per-round state, keeping systems, queue and registry
func (w *World) ResetRound() {
	w.Spheres = nil
	w.nextSphereID = 0
	w.GameTime = 0
	w.CountdownElapsed = 0
	w.LastStuckCheck = 0
	w.Stuck = false
	w.StuckSince = 0
	w.MatchID = uuid.New()
}

// Player returns the human-controlled hippo, nil if absent
func (w *World) Player() *component.Hippo {
	for _, h := range w.Hippos {
		if h.IsPlayer() {
			return h
		}
	}
	return nil
}

// LiveSpheres returns every non-eaten sphere, power-ups included
func (w *World) LiveSpheres() []*component.Sphere {
	live := make([]*component.Sphere, 0, len(w.Spheres))
	for _, s := range w.Spheres {
		if !s.Eaten {
			live = append(live, s)
		}
	}
	return live
}

// LivePowerUps counts power-ups still collectible
func (w *World) LivePowerUps() int {
	n := 0
	for _, s := range w.Spheres {
		if s.LivePowerUp() {
			n++
		}
	}
	return n
}

// AllEaten reports the terminal condition of a round
func (w *World) AllEaten() bool {
	for _, s := range w.Spheres {
		if !s.Eaten {
			return false
		}
	}
	return true
}

// StuckFor returns the length of the current stuck episode, zero when none
func (w *World) StuckFor() time.Duration {
	if !w.Stuck {
		return 0
	}
	return w.GameTime - w.StuckSince
}

// TotalScore sums all hippo scores
func (w *World) TotalScore() int {
	total := 0
	for _, h := range w.Hippos {
		total += h.Score
	}
	return total
}
