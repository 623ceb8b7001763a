package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hippo-arena/engine"
	"github.com/lixenwraith/hippo-arena/parameter"
	"github.com/lixenwraith/hippo-arena/physics"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// PhysicsSystem moves every live sphere one step
// Motion is per tick, not per unit time; dt is ignored
type PhysicsSystem struct {
	statContacts *atomic.Int64
}

func NewPhysicsSystem(w *engine.World) *PhysicsSystem {
	return &PhysicsSystem{
		statContacts: w.Status.Ints.Get("physics.contacts"),
	}
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update(w *engine.World, _ time.Duration) {
	contacts := physics.Step(w.Spheres, physics.Params{
		Center:          vmath.V2(parameter.CenterX, parameter.CenterY),
		BoardSize:       parameter.BoardSize,
		Attraction:      w.Tuning.AttractionForce,
		Damping:         w.Tuning.Damping,
		WallRestitution: w.Tuning.WallRestitution,
		CollisionScale:  w.Tuning.CollisionVelocityScale,
	})
	s.statContacts.Add(int64(contacts))
}
