package parameter

// System priorities, lower runs first within a playing tick
const (
	PriorityPowerUpSpawn = 10
	PriorityAI           = 20
	PriorityHippo        = 30
	PriorityPhysics      = 40
	PriorityStuck        = 50
)
