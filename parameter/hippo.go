package parameter

import "time"

// Strike animation
const (
	// AnimationDuration is the full strike-and-retract time
	AnimationDuration = 300 * time.Millisecond

	// EatingWindowStart and EatingWindowEnd bound the exclusive progress interval in which captures run
	EatingWindowStart = 0.4
	EatingWindowEnd   = 0.6

	// ExtensionFactor scales the head extension; RangeExtensionFactor replaces it under a range buff
	ExtensionFactor      = 1.1
	RangeExtensionFactor = 1.5

	// RangeHitBoxFactor enlarges the capture box under a range buff
	RangeHitBoxFactor = 1.3

	// SpeedFactor shortens the animation and the masher interval under a speed buff
	SpeedFactor = 0.7
)

// AI personalities
const (
	// SniperRangeFactor places the sniper probe this many head sizes beyond the base head
	SniperRangeFactor = 1.8

	// SniperCooldown is the minimum time between sniper strikes
	SniperCooldown = 500 * time.Millisecond

	// SniperRetreatThreshold rejects targets moving away faster than this along the facing axis
	SniperRetreatThreshold = -0.5

	MasherInterval = 400 * time.Millisecond

	RandoMinInterval = 500 * time.Millisecond
	RandoMaxInterval = 2000 * time.Millisecond
)

// RhythmPattern is the cyclic strike interval sequence of the rhythm personality
var RhythmPattern = [...]time.Duration{
	600 * time.Millisecond,
	400 * time.Millisecond,
	400 * time.Millisecond,
	1200 * time.Millisecond,
}
