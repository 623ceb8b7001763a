package system

import (
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/engine"
	"github.com/lixenwraith/hippo-arena/parameter"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// Policy is the strike strategy of one personality
// Decide inspects the world without mutating it; Commit records scheduling state after a strike
type Policy interface {
	Decide(w *engine.World, h *component.Hippo) bool
	Commit(w *engine.World, h *component.Hippo)
}

// DefaultPolicies returns the strategy table of the autonomous personalities
func DefaultPolicies() map[component.Personality]Policy {
	return map[component.Personality]Policy{
		component.PersonalitySniper: SniperPolicy{},
		component.PersonalityMasher: MasherPolicy{},
		component.PersonalityRando:  RandoPolicy{},
		component.PersonalityRhythm: RhythmPolicy{},
	}
}

// AISystem decides strikes for idle autonomous hippos
type AISystem struct {
	policies map[component.Personality]Policy
	autoplay atomic.Bool

	statStrikes *atomic.Int64
}

// NewAISystem creates the AI decision system with the default strategy table
func NewAISystem(w *engine.World) *AISystem {
	return &AISystem{
		policies:    DefaultPolicies(),
		statStrikes: w.Status.Ints.Get("ai.strikes"),
	}
}

func (s *AISystem) Name() string {
	return "ai"
}

func (s *AISystem) Priority() int {
	return parameter.PriorityAI
}

// SetAutoplay lets the sniper policy drive the player hippo
func (s *AISystem) SetAutoplay(on bool) {
	s.autoplay.Store(on)
}

// SetPolicy overrides the strategy of one personality
func (s *AISystem) SetPolicy(p component.Personality, policy Policy) {
	s.policies[p] = policy
}

func (s *AISystem) Update(w *engine.World, _ time.Duration) {
	for _, h := range w.Hippos {
		if h.Eating {
			continue
		}

		personality := h.Personality
		if h.IsPlayer() {
			if !s.autoplay.Load() {
				continue
			}
			personality = component.PersonalitySniper
		}

		policy, ok := s.policies[personality]
		if !ok {
			continue
		}
		if policy.Decide(w, h) && Activate(w, h) {
			policy.Commit(w, h)
			s.statStrikes.Add(1)
		}
	}
}

// SniperPolicy strikes at the first sphere near a probe point beyond the head
// Scanning stops at the first qualifying sphere even when the cooldown blocks the strike
type SniperPolicy struct{}

func (SniperPolicy) Decide(w *engine.World, h *component.Hippo) bool {
	facing := h.Facing()
	probe := vmath.Polar(h.Pos, h.Angle, parameter.HeadSize+parameter.SniperRangeFactor*parameter.HeadSize)

	for _, sp := range w.Spheres {
		if sp.Eaten {
			continue
		}
		approaching := -sp.Vel.Dot(facing)
		if vmath.Dist(sp.Pos, probe) < parameter.HeadSize/2 && approaching > parameter.SniperRetreatThreshold {
			return w.GameTime-h.LastAction > w.Tuning.SniperCooldown()
		}
	}
	return false
}

func (SniperPolicy) Commit(w *engine.World, h *component.Hippo) {
	h.LastAction = w.GameTime
}

// MasherPolicy strikes on a fixed interval, shortened under speed
type MasherPolicy struct{}

func (MasherPolicy) Decide(w *engine.World, h *component.Hippo) bool {
	interval := w.Tuning.MasherInterval()
	if h.HasBuff(component.PowerUpSpeed) {
		interval = time.Duration(float64(interval) * parameter.SpeedFactor)
	}
	return w.GameTime-h.LastAction > interval
}

func (MasherPolicy) Commit(w *engine.World, h *component.Hippo) {
	h.LastAction = w.GameTime
}

// RandoPolicy strikes at uniformly random intervals
type RandoPolicy struct{}

func (RandoPolicy) Decide(w *engine.World, h *component.Hippo) bool {
	return w.GameTime > h.NextAction
}

func (RandoPolicy) Commit(w *engine.World, h *component.Hippo) {
	h.NextAction = w.GameTime + w.Rand.Duration(w.Tuning.RandoMin(), w.Tuning.RandoMax())
}

// RhythmPolicy cycles through a fixed interval pattern
type RhythmPolicy struct{}

func (RhythmPolicy) Decide(w *engine.World, h *component.Hippo) bool {
	return w.GameTime-h.LastAction > w.Tuning.RhythmInterval(h.RhythmPhase)
}

func (RhythmPolicy) Commit(w *engine.World, h *component.Hippo) {
	h.LastAction = w.GameTime
	h.RhythmPhase = (h.RhythmPhase + 1) % w.Tuning.RhythmLen()
}
