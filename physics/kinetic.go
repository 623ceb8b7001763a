package physics

import (
	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// Attract adds a fixed-magnitude pull toward center, skipped when already on it
func Attract(s *component.Sphere, center vmath.Vec2, force float64) {
	d := center.Sub(s.Pos)
	dist := d.Mag()
	if dist > 0 {
		s.Vel = s.Vel.Add(d.Scale(force / dist))
	}
}

// Damp applies multiplicative velocity decay
func Damp(s *component.Sphere, factor float64) {
	s.Vel = s.Vel.Scale(factor)
}

// Integrate advances position by one tick of velocity
func Integrate(s *component.Sphere) {
	s.Pos = s.Pos.Add(s.Vel)
}

// ApplyImpulse adds velocity delta
func ApplyImpulse(s *component.Sphere, impulse vmath.Vec2) {
	s.Vel = s.Vel.Add(impulse)
}

// ReflectBounds bounces the sphere off the square board [0,size]
// The offending velocity component is reversed and scaled by restitution, position clamped inside
// Returns true if any reflection occurred
func ReflectBounds(s *component.Sphere, size, restitution float64) bool {
	r := s.Radius
	reflected := false
	if s.Pos.X-r < 0 || s.Pos.X+r > size {
		s.Vel.X = -s.Vel.X * restitution
		s.Pos.X = vmath.Clamp(s.Pos.X, r, size-r)
		reflected = true
	}
	if s.Pos.Y-r < 0 || s.Pos.Y+r > size {
		s.Vel.Y = -s.Vel.Y * restitution
		s.Pos.Y = vmath.Clamp(s.Pos.Y, r, size-r)
		reflected = true
	}
	return reflected
}
