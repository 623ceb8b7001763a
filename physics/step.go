package physics

import (
	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/vmath"
)

// Params configures one physics pass
type Params struct {
	Center          vmath.Vec2
	BoardSize       float64
	Attraction      float64
	Damping         float64
	WallRestitution float64
	CollisionScale  float64
}

// Step runs one tick over every live sphere in slice order
// Each sphere is attracted, damped, moved, bounced, then resolved against every other live sphere
// A pair is visited from both sides; the second visit is a no-op unless still overlapping
// Returns the number of pair contacts resolved
func Step(spheres []*component.Sphere, p Params) int {
	contacts := 0
	for i, s := range spheres {
		if s.Eaten {
			continue
		}

		Attract(s, p.Center, p.Attraction)
		Damp(s, p.Damping)
		Integrate(s)
		ReflectBounds(s, p.BoardSize, p.WallRestitution)

		for j, other := range spheres {
			if j == i || other.Eaten {
				continue
			}
			if ResolvePair(s, other, p.CollisionScale) {
				contacts++
			}
		}
	}
	return contacts
}
