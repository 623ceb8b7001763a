package system

import (
	"math"
	"testing"
	"time"

	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/config"
	"github.com/lixenwraith/hippo-arena/engine"
	"github.com/lixenwraith/hippo-arena/parameter"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// newArenaWorld returns a world with hippos seated and no spheres
func newArenaWorld(t *testing.T, seed uint64) *engine.World {
	t.Helper()
	w := engine.NewWorld(config.DefaultTuning(), vmath.NewFastRand(seed))
	PlaceHippos(w)
	return w
}

// headAt computes the strike head position of h at the given progress
func headAt(h *component.Hippo, progress, factor float64) vmath.Vec2 {
	ext := math.Sin(progress*math.Pi) * parameter.HeadSize * factor
	return vmath.Polar(h.Pos, h.Angle, parameter.HeadSize+ext)
}

func addSphere(w *engine.World, pos vmath.Vec2) *component.Sphere {
	sp := &component.Sphere{
		ID:      w.NextSphereID(),
		Pos:     pos,
		Radius:  parameter.SphereRadius,
		EatenBy: component.NoOwner,
	}
	w.Spheres = append(w.Spheres, sp)
	return sp
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
