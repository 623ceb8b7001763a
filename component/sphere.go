package component

import (
	"time"

	"github.com/lixenwraith/hippo-arena/vmath"
)

// NoOwner marks a sphere nobody has eaten
const NoOwner = -1

// Sphere is a consumable token; power-ups are spheres carrying a PowerUp tag
// Once Eaten is set the sphere is inert and never reverts
type Sphere struct {
	ID     int
	Pos    vmath.Vec2
	Vel    vmath.Vec2
	Radius float64
	Bonus  bool

	Eaten   bool
	EatenBy int

	// PowerUp is nil for plain spheres
	PowerUp *PowerUp
}

// PowerUp is the capability tag turning a sphere into a collectible buff
type PowerUp struct {
	Type      PowerUpType
	Collected bool
	SpawnTime time.Duration
}

// Points is the score awarded for capturing the sphere
func (s *Sphere) Points(plain, bonus int) int {
	if s.Bonus {
		return bonus
	}
	return plain
}

// IsPowerUp reports whether the sphere carries the power-up tag
func (s *Sphere) IsPowerUp() bool {
	return s.PowerUp != nil
}

// LivePowerUp reports an uncollected, uneaten power-up
func (s *Sphere) LivePowerUp() bool {
	return s.PowerUp != nil && !s.PowerUp.Collected && !s.Eaten
}
