package parameter

// Sphere physics, applied once per tick
const (
	// AttractionForce is the velocity added per tick toward the board centre
	AttractionForce = 0.05

	// Damping is the multiplicative velocity decay per tick
	Damping = 0.98

	// WallRestitution scales the reflected velocity component on boundary contact
	WallRestitution = 0.9

	// CollisionVelocityScale scales the swapped velocities on sphere contact
	CollisionVelocityScale = 0.8

	// MouthRepulsion is the impulse pushing near-miss spheres away from the head box
	MouthRepulsion = 5.0
)
