package parameter

import "time"

// Phase clock
const (
	// CountdownDuration is the pre-round delay before play starts
	CountdownDuration = 3000 * time.Millisecond

	// GoBannerDuration is how long the start banner stays after countdown
	GoBannerDuration = 500 * time.Millisecond
)

// Power-ups
const (
	// PowerUpSpawnChance is the per-tick spawn probability while playing
	PowerUpSpawnChance = 0.0005

	// PowerUpMaxLive caps concurrently live power-ups
	PowerUpMaxLive = 2

	PowerUpRadius   = 15.0
	PowerUpDuration = 5000 * time.Millisecond

	// StunDelay postpones the next action of stunned hippos
	StunDelay = 1000 * time.Millisecond

	// PowerUpInnerRadius and PowerUpBandWidth describe the spawn annulus
	PowerUpInnerRadius = BoardSize / 4
	PowerUpBandWidth   = BoardSize / 6

	// PowerUpPulsePeriod divides the age of a power-up in the render pulse term
	PowerUpPulsePeriod = 200 * time.Millisecond
)

// Stuck detector
const (
	StuckCheckInterval = 2000 * time.Millisecond

	// StuckSpeedThreshold is the speed under which a sphere counts as parked
	StuckSpeedThreshold = 0.2

	// StuckTimeLimit is the episode length after which the shake is applied
	StuckTimeLimit = 8000 * time.Millisecond

	// StuckWarningAfter is the episode length after which the HUD shows a warning
	StuckWarningAfter = 5000 * time.Millisecond

	ShakeMinImpulse = 2.0
	ShakeMaxImpulse = 5.0
)
