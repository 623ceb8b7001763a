package system

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hippo-arena/engine"
	"github.com/lixenwraith/hippo-arena/event"
	"github.com/lixenwraith/hippo-arena/parameter"
	"github.com/lixenwraith/hippo-arena/physics"
	"github.com/lixenwraith/hippo-arena/status"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// StuckSystem detects parked spheres and shakes them loose
// A round with live spheres can never stall for longer than about StuckTimeLimit plus two check intervals
type StuckSystem struct {
	statShakes *atomic.Int64
}

func NewStuckSystem(w *engine.World) *StuckSystem {
	return &StuckSystem{
		statShakes: w.Status.Ints.Get(status.KeyStuckShakes),
	}
}

func (s *StuckSystem) Name() string {
	return "stuck"
}

func (s *StuckSystem) Priority() int {
	return parameter.PriorityStuck
}

func (s *StuckSystem) Update(w *engine.World, _ time.Duration) {
	if w.GameTime-w.LastStuckCheck < w.Tuning.StuckCheckInterval() {
		return
	}
	w.LastStuckCheck = w.GameTime

	live := w.LiveSpheres()
	if len(live) == 0 {
		return
	}

	for _, sp := range live {
		if sp.Vel.Mag() >= w.Tuning.StuckSpeedThreshold {
			w.Stuck = false
			return
		}
	}

	if !w.Stuck {
		w.Stuck = true
		w.StuckSince = w.GameTime
		return
	}

	if w.GameTime-w.StuckSince > w.Tuning.StuckTimeLimit() {
		Shake(w)
		w.Stuck = false
		s.statShakes.Add(1)
		log.Printf("[arena] shook %d parked spheres at %v", len(live), w.GameTime)
		w.Events.Emit(event.EventStuckRecovered, nil)
	}
}

// Shake adds a random impulse to every live sphere
func Shake(w *engine.World) {
	for _, sp := range w.Spheres {
		if sp.Eaten {
			continue
		}
		impulse := vmath.FromAngle(w.Rand.Angle()).Scale(w.Rand.Range(parameter.ShakeMinImpulse, parameter.ShakeMaxImpulse))
		physics.ApplyImpulse(sp, impulse)
	}
}
