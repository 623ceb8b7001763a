package physics

import (
	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// separationFallback is the push axis for coincident centres
var separationFallback = vmath.Vec2{X: 1}

// ResolvePair separates two overlapping spheres and exchanges their velocities
// Each sphere moves half the overlap along the centre line; velocities swap scaled by velocityScale
// Not momentum conserving: this is the arcade exchange the board is tuned for
// Returns false when the spheres do not overlap
func ResolvePair(a, b *component.Sphere, velocityScale float64) bool {
	minDist := a.Radius + b.Radius
	d := b.Pos.Sub(a.Pos)
	dist := d.Mag()
	if dist >= minDist {
		return false
	}

	axis := separationFallback
	if dist > 0 {
		axis = d.Scale(1 / dist)
	}
	push := axis.Scale((minDist - dist) * 0.5)

	a.Pos = a.Pos.Sub(push)
	b.Pos = b.Pos.Add(push)

	a.Vel, b.Vel = b.Vel.Scale(velocityScale), a.Vel.Scale(velocityScale)
	return true
}
