package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/hippo-arena/event"
	"github.com/lixenwraith/hippo-arena/parameter"
	"github.com/lixenwraith/hippo-arena/vmath"
)

func TestStuckRecoveryLiveness(t *testing.T) {
	w := newArenaWorld(t, 31)
	s := NewStuckSystem(w)
	for i := 0; i < 5; i++ {
		addSphere(w, vmath.V2(200+float64(i)*40, 300))
	}

	// Episode opens at the 2s check and the shake fires at the first check more than 8s later
	var shakenAt time.Duration
	for w.GameTime < ms(20000) {
		w.GameTime += ms(10)
		s.Update(w, ms(10))
		if w.Spheres[0].Vel.Mag() > 0 {
			shakenAt = w.GameTime
			break
		}
	}

	if shakenAt != ms(12000) {
		t.Fatalf("Expected shake at 12s, got %v", shakenAt)
	}
	for _, sp := range w.Spheres {
		m := sp.Vel.Mag()
		if m < parameter.ShakeMinImpulse-1e-9 || m >= parameter.ShakeMaxImpulse {
			t.Errorf("Shake magnitude %v outside [%v,%v)", m, parameter.ShakeMinImpulse, parameter.ShakeMaxImpulse)
		}
	}
	if w.Stuck {
		t.Error("Episode must be cleared after shake")
	}

	var recovered bool
	for _, ev := range w.Events.Consume() {
		if ev.Type == event.EventStuckRecovered {
			recovered = true
		}
	}
	if !recovered {
		t.Error("Expected stuck recovery event")
	}
}

func TestStuckEpisodeClearedByMotion(t *testing.T) {
	w := newArenaWorld(t, 32)
	s := NewStuckSystem(w)
	sp := addSphere(w, vmath.V2(300, 300))

	w.GameTime = ms(2000)
	s.Update(w, 0)
	if !w.Stuck || w.StuckSince != ms(2000) {
		t.Fatalf("Expected episode opened at 2s, stuck=%v since=%v", w.Stuck, w.StuckSince)
	}

	sp.Vel = vmath.V2(parameter.StuckSpeedThreshold, 0)
	w.GameTime = ms(4000)
	s.Update(w, 0)
	if w.Stuck {
		t.Error("Sphere at threshold speed must clear the episode")
	}
}

func TestStuckCheckThrottled(t *testing.T) {
	w := newArenaWorld(t, 33)
	s := NewStuckSystem(w)
	addSphere(w, vmath.V2(300, 300))

	w.GameTime = ms(1999)
	s.Update(w, 0)
	if w.Stuck || w.LastStuckCheck != 0 {
		t.Error("Check must not run before the interval elapses")
	}
	w.GameTime = ms(2000)
	s.Update(w, 0)
	if !w.Stuck || w.LastStuckCheck != ms(2000) {
		t.Error("Check must run once the interval elapses")
	}
}

func TestStuckIgnoresEmptyBoard(t *testing.T) {
	w := newArenaWorld(t, 34)
	s := NewStuckSystem(w)
	sp := addSphere(w, vmath.V2(300, 300))
	sp.Eaten = true

	w.GameTime = ms(2000)
	s.Update(w, 0)
	if w.Stuck {
		t.Error("No live spheres must not open an episode")
	}
}
