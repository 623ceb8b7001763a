// Package arena owns one hungry-hippos round loop: the world, its systems and the phase machine
package arena

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/config"
	"github.com/lixenwraith/hippo-arena/engine"
	"github.com/lixenwraith/hippo-arena/engine/fsm"
	"github.com/lixenwraith/hippo-arena/event"
	"github.com/lixenwraith/hippo-arena/status"
	"github.com/lixenwraith/hippo-arena/system"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// Arena is the facade hosts drive; all methods are safe for concurrent use
type Arena struct {
	mu    sync.Mutex
	world *engine.World
	fsm   *fsm.Machine[*engine.World]
	ai    *system.AISystem

	statRounds   *atomic.Int64
	statPhase    *status.AtomicString
	statMatch    *status.AtomicString
	statGameTime *status.AtomicFloat
}

// New builds a world with the full system pipeline and enters the first countdown
// A nil rng seeds from the wall clock
func New(tuning config.Tuning, rng *vmath.FastRand) (*Arena, error) {
	if err := tuning.Validate(); err != nil {
		return nil, fmt.Errorf("arena tuning: %w", err)
	}

	w := engine.NewWorld(tuning, rng)
	a := &Arena{
		world:        w,
		fsm:          fsm.NewMachine[*engine.World](),
		ai:           system.NewAISystem(w),
		statRounds:   w.Status.Ints.Get(status.KeyRounds),
		statPhase:    w.Status.Strings.Get(status.KeyPhase),
		statMatch:    w.Status.Strings.Get(status.KeyMatchID),
		statGameTime: w.Status.Floats.Get(status.KeyGameTimeSec),
	}

	w.AddSystem(system.NewPowerUpSystem())
	w.AddSystem(a.ai)
	w.AddSystem(system.NewHippoSystem(w))
	w.AddSystem(system.NewPhysicsSystem(w))
	w.AddSystem(system.NewStuckSystem(w))

	system.PlaceHippos(w)

	a.buildPhaseMachine()
	if err := a.fsm.Init(w, fsm.StateID(engine.PhaseCountdown)); err != nil {
		return nil, fmt.Errorf("phase machine: %w", err)
	}
	return a, nil
}

// Advance runs one tick of the phase machine
func (a *Arena) Advance(dt time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fsm.Update(a.world, dt)
	a.statGameTime.Set(a.world.GameTime.Seconds())
}

// ActivatePlayer strikes with the human hippo; ignored outside play or while already striking
func (a *Arena) ActivatePlayer() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.world.Phase != engine.PhasePlaying {
		return false
	}
	p := a.world.Player()
	if p == nil {
		return false
	}
	return system.Activate(a.world, p)
}

// Restart abandons the current round and starts a new countdown
func (a *Arena) Restart() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fsm.HandleEvent(a.world, event.EventRestartRequest)
}

// HandleInput applies a host intent, returning true if it changed the arena
func (a *Arena) HandleInput(t event.EventType) bool {
	switch t {
	case event.EventActivateRequest:
		return a.ActivatePlayer()
	case event.EventRestartRequest:
		a.Restart()
		return true
	default:
		return false
	}
}

// SetAutoplay hands the player hippo to the sniper policy
func (a *Arena) SetAutoplay(on bool) {
	a.ai.SetAutoplay(on)
}

// Phase returns the current round phase
func (a *Arena) Phase() engine.Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.world.Phase
}

// View runs fn with exclusive access to the world; fn must not retain it
func (a *Arena) View(fn func(w *engine.World)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	fn(a.world)
}

// Events returns the notification queue; a single consumer must drain it
func (a *Arena) Events() *event.Queue {
	return a.world.Events
}

// Status returns the metric registry
func (a *Arena) Status() *status.Registry {
	return a.world.Status
}

// Standing is the outcome summary of a hippo
type Standing struct {
	HippoID int    `json:"hippo_id" msgpack:"hippo_id"`
	Name    string `json:"name" msgpack:"name"`
	Score   int    `json:"score" msgpack:"score"`
}

// Winner returns the highest-scoring hippo, ties going to the later one
func (a *Arena) Winner() Standing {
	a.mu.Lock()
	defer a.mu.Unlock()
	return winnerOf(a.world.Hippos)
}

func winnerOf(hippos []*component.Hippo) Standing {
	if len(hippos) == 0 {
		return Standing{HippoID: component.NoOwner}
	}
	best := hippos[0]
	for _, h := range hippos[1:] {
		if !(best.Score > h.Score) {
			best = h
		}
	}
	return Standing{HippoID: best.ID, Name: best.DisplayName(), Score: best.Score}
}

func (a *Arena) logRoundStart(w *engine.World) {
	personalities := make([]string, 0, len(w.Hippos))
	for _, h := range w.Hippos {
		personalities = append(personalities, h.Direction.String()+"="+h.Personality.String())
	}
	log.Printf("[arena] round %s: %d spheres, hippos %v", w.MatchID, len(w.Spheres), personalities)
}
