package parameter

// Board geometry, all in board units on a 600x600 square
const (
	// BoardSize is the side of the square arena
	BoardSize = 600.0

	// CenterX, CenterY locate the attraction point
	CenterX = BoardSize / 2
	CenterY = BoardSize / 2

	// SphereDiameter is the collision diameter shared by every sphere
	SphereDiameter = BoardSize / 20
	SphereRadius   = SphereDiameter / 2

	// HippoSize is the body length; HippoOffset is the distance of the body from the board edge
	HippoSize   = BoardSize / 3.5
	HippoOffset = HippoSize / 3

	// HeadSize is the head extent, also the side of the capture hit box
	HeadSize = BoardSize / 7
)

// Sphere batch
const (
	// SphereCount is the number of spheres created per round
	SphereCount = 45

	// SpawnInnerRadius and SpawnBandWidth describe the spawn annulus around the centre
	SpawnInnerRadius = BoardSize / 6
	SpawnBandWidth   = BoardSize / 3

	// SpawnMaxAttempts bounds the overlap-free placement retries per sphere
	SpawnMaxAttempts = 100

	// SpawnSpeedRange is the width of the uniform initial velocity range centred on zero
	SpawnSpeedRange = 3.0

	// BonusChance is the probability a sphere is worth BonusPoints
	BonusChance = 0.15

	PlainPoints = 1
	BonusPoints = 3
)
