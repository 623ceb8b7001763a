package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/parameter"
	"github.com/lixenwraith/hippo-arena/vmath"
)

func TestPlaceHippos(t *testing.T) {
	w := newArenaWorld(t, 41)

	if len(w.Hippos) != 4 {
		t.Fatalf("Expected 4 hippos, got %d", len(w.Hippos))
	}
	wantDir := []component.Direction{component.DirectionN, component.DirectionE, component.DirectionS, component.DirectionW}
	for i, h := range w.Hippos {
		if h.ID != i || h.Direction != wantDir[i] {
			t.Errorf("Hippo %d: id=%d dir=%v", i, h.ID, h.Direction)
		}
		if h.IsPlayer() != (i == 0) {
			t.Errorf("Hippo %d: player=%v", i, h.IsPlayer())
		}
		if d := vmath.Dist(h.BaseHead, h.Pos); math.Abs(d-parameter.HeadSize) > 1e-9 {
			t.Errorf("Hippo %d: base head at %v from body", i, d)
		}
		if h.Head != h.BaseHead {
			t.Errorf("Hippo %d: head not at base", i)
		}
		// Every hippo faces the centre
		toCenter := vmath.V2(parameter.CenterX, parameter.CenterY).Sub(h.Pos).Normalize()
		if toCenter.Dot(h.Facing()) < 0.999 {
			t.Errorf("Hippo %d does not face the centre", i)
		}
	}
	player := w.Player()
	if player.Pos != vmath.V2(parameter.CenterX, parameter.BoardSize-parameter.HippoOffset) {
		t.Errorf("Unexpected player seat %+v", player.Pos)
	}
}

func TestResetHippos(t *testing.T) {
	w := newArenaWorld(t, 42)
	for _, h := range w.Hippos {
		h.Score = 9
		h.Eating = true
		h.Progress = 0.5
		h.Head = vmath.V2(1, 1)
		h.Buff = component.PowerUpRange
		h.LastAction = ms(100)
		h.RhythmPhase = 3
	}

	seen := make(map[component.Personality]bool)
	for i := 0; i < 30; i++ {
		ResetHippos(w)
		for _, h := range w.Hippos[1:] {
			seen[h.Personality] = true
		}
	}

	for _, h := range w.Hippos {
		if h.Score != 0 || h.Eating || h.Head != h.BaseHead || h.Buff != component.PowerUpNone || h.LastAction != 0 || h.RhythmPhase != 0 {
			t.Errorf("Hippo %d not reset: %+v", h.ID, *h)
		}
	}
	if !w.Hippos[0].IsPlayer() {
		t.Error("Player personality must survive reset")
	}
	if seen[component.PersonalityPlayer] {
		t.Error("Autonomous hippo rolled the player personality")
	}
	if len(seen) != len(component.AIPersonalities) {
		t.Errorf("Expected all %d personalities over 30 rerolls, saw %d", len(component.AIPersonalities), len(seen))
	}
}

func TestSpawnSpheres(t *testing.T) {
	w := newArenaWorld(t, 43)
	SpawnSpheres(w)

	if len(w.Spheres) != parameter.SphereCount {
		t.Fatalf("Expected %d spheres, got %d", parameter.SphereCount, len(w.Spheres))
	}
	center := vmath.V2(parameter.CenterX, parameter.CenterY)
	ids := make(map[int]bool)
	half := parameter.SpawnSpeedRange / 2
	for _, sp := range w.Spheres {
		d := vmath.Dist(sp.Pos, center)
		if d < parameter.SpawnInnerRadius-1e-9 || d >= parameter.SpawnInnerRadius+parameter.SpawnBandWidth {
			t.Errorf("Sphere %d at distance %v outside spawn annulus", sp.ID, d)
		}
		if math.Abs(sp.Vel.X) > half || math.Abs(sp.Vel.Y) > half {
			t.Errorf("Sphere %d initial velocity %+v out of range", sp.ID, sp.Vel)
		}
		if sp.Eaten || sp.EatenBy != component.NoOwner || sp.IsPowerUp() {
			t.Errorf("Sphere %d not fresh: %+v", sp.ID, *sp)
		}
		if ids[sp.ID] {
			t.Errorf("Duplicate sphere id %d", sp.ID)
		}
		ids[sp.ID] = true
	}
}

func TestSpawnSpheresBonusChance(t *testing.T) {
	w := newArenaWorld(t, 44)
	w.Tuning.BonusChance = 0
	SpawnSpheres(w)
	for _, sp := range w.Spheres {
		if sp.Bonus {
			t.Fatal("Zero bonus chance produced a bonus sphere")
		}
	}
}
