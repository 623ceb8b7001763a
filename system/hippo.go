package system

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/engine"
	"github.com/lixenwraith/hippo-arena/event"
	"github.com/lixenwraith/hippo-arena/parameter"
	"github.com/lixenwraith/hippo-arena/status"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// Activate starts a strike; a hippo already acting is left untouched
// Every strike, human or autonomous, goes through here
func Activate(w *engine.World, h *component.Hippo) bool {
	if h.Eating {
		return false
	}
	h.Eating = true
	h.Progress = 0
	w.Events.Emit(event.EventHippoStrike, &event.HippoPayload{HippoID: h.ID})
	return true
}

// HippoSystem advances strike animations, buff expiry, captures and power-up collection
type HippoSystem struct {
	statCaptures *atomic.Int64
	statPowerUps *atomic.Int64
}

// NewHippoSystem creates the hippo action system
func NewHippoSystem(w *engine.World) *HippoSystem {
	return &HippoSystem{
		statCaptures: w.Status.Ints.Get(status.KeyCaptures),
		statPowerUps: w.Status.Ints.Get(status.KeyPowerUps),
	}
}

func (s *HippoSystem) Name() string {
	return "hippo"
}

func (s *HippoSystem) Priority() int {
	return parameter.PriorityHippo
}

// Update processes hippos in slice order; earlier hippos win contested spheres
func (s *HippoSystem) Update(w *engine.World, dt time.Duration) {
	for _, h := range w.Hippos {
		expireBuff(w, h)
		if h.Eating {
			s.advance(w, h, dt)
		}
	}
}

func expireBuff(w *engine.World, h *component.Hippo) {
	if h.Buff != component.PowerUpNone && w.GameTime > h.BuffEnd {
		h.Buff = component.PowerUpNone
	}
}

// StrikeDuration is the animation length for h, shortened under speed
func StrikeDuration(t time.Duration, h *component.Hippo) time.Duration {
	if h.HasBuff(component.PowerUpSpeed) {
		return time.Duration(float64(t) * parameter.SpeedFactor)
	}
	return t
}

func (s *HippoSystem) advance(w *engine.World, h *component.Hippo, dt time.Duration) {
	duration := StrikeDuration(w.Tuning.Animation(), h)
	h.Progress += float64(dt) / float64(duration)

	if h.Progress >= 1 {
		h.Retract()
		return
	}

	factor := parameter.ExtensionFactor
	if h.HasBuff(component.PowerUpRange) {
		factor = parameter.RangeExtensionFactor
	}
	extension := math.Sin(h.Progress*math.Pi) * parameter.HeadSize * factor
	h.Head = vmath.Polar(h.Pos, h.Angle, parameter.HeadSize+extension)

	if h.Progress > w.Tuning.EatingWindowStart && h.Progress < w.Tuning.EatingWindowEnd {
		s.capture(w, h)
		s.collect(w, h)
	}
}

// capture eats every sphere centred in the head box and repels near misses
func (s *HippoSystem) capture(w *engine.World, h *component.Hippo) {
	size := parameter.HeadSize
	if h.HasBuff(component.PowerUpRange) {
		size *= parameter.RangeHitBoxFactor
	}
	box := vmath.BoxAround(h.Head, size)

	for _, sp := range w.Spheres {
		if sp.Eaten {
			continue
		}

		if box.Contains(sp.Pos) {
			sp.Eaten = true
			sp.EatenBy = h.ID
			points := sp.Points(parameter.PlainPoints, parameter.BonusPoints)
			h.Score += points
			s.statCaptures.Add(1)
			w.Events.Emit(event.EventSphereEaten, &event.SphereEatenPayload{
				HippoID:  h.ID,
				SphereID: sp.ID,
				Points:   points,
				Bonus:    sp.Bonus,
			})
			continue
		}

		away := sp.Pos.Sub(box.Closest(sp.Pos))
		if away.Mag() < sp.Radius {
			sp.Vel = sp.Vel.Add(away.Normalize().Scale(w.Tuning.MouthRepulsion))
		}
	}
}

// collect grants buffs from uncollected power-ups centred in the unboosted head box
// A power-up already eaten, by any hippo, stays collectible until someone collects it
func (s *HippoSystem) collect(w *engine.World, h *component.Hippo) {
	box := vmath.BoxAround(h.Head, parameter.HeadSize)

	for _, sp := range w.Spheres {
		pu := sp.PowerUp
		if pu == nil || pu.Collected {
			continue
		}
		if !box.Contains(sp.Pos) {
			continue
		}

		pu.Collected = true
		h.Buff = pu.Type
		h.BuffEnd = w.GameTime + w.Tuning.PowerUpDuration()
		s.statPowerUps.Add(1)
		w.Events.Emit(event.EventPowerUpCollected, &event.PowerUpPayload{
			HippoID:  h.ID,
			SphereID: sp.ID,
			Type:     pu.Type,
		})

		if pu.Type == component.PowerUpStun {
			stunRivals(w, h)
		}
	}
}

// stunRivals interrupts every other acting hippo and delays its next action
func stunRivals(w *engine.World, by *component.Hippo) {
	for _, o := range w.Hippos {
		if o.ID == by.ID || !o.Eating {
			continue
		}
		o.Retract()
		o.LastAction = w.GameTime + w.Tuning.StunDelay()
		w.Events.Emit(event.EventHippoStunned, &event.HippoPayload{HippoID: o.ID})
	}
}
