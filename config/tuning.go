package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/hippo-arena/parameter"
)

// Tuning holds the gameplay knobs of one arena
// Board geometry is fixed by parameter; durations are milliseconds in TOML
type Tuning struct {
	SphereCount int     `toml:"sphere_count"`
	BonusChance float64 `toml:"bonus_chance"`

	AttractionForce        float64 `toml:"attraction_force"`
	Damping                float64 `toml:"damping"`
	WallRestitution        float64 `toml:"wall_restitution"`
	CollisionVelocityScale float64 `toml:"collision_velocity_scale"`
	MouthRepulsion         float64 `toml:"mouth_repulsion"`

	AnimationMs       int64   `toml:"animation_ms"`
	EatingWindowStart float64 `toml:"eating_window_start"`
	EatingWindowEnd   float64 `toml:"eating_window_end"`

	CountdownMs int64 `toml:"countdown_ms"`

	PowerUpSpawnChance float64 `toml:"powerup_spawn_chance"`
	PowerUpMaxLive     int     `toml:"powerup_max_live"`
	PowerUpDurationMs  int64   `toml:"powerup_duration_ms"`
	StunDelayMs        int64   `toml:"stun_delay_ms"`

	StuckCheckIntervalMs int64   `toml:"stuck_check_interval_ms"`
	StuckTimeLimitMs     int64   `toml:"stuck_time_limit_ms"`
	StuckSpeedThreshold  float64 `toml:"stuck_speed_threshold"`

	SniperCooldownMs int64   `toml:"sniper_cooldown_ms"`
	MasherIntervalMs int64   `toml:"masher_interval_ms"`
	RandoMinMs       int64   `toml:"rando_min_ms"`
	RandoMaxMs       int64   `toml:"rando_max_ms"`
	RhythmPatternMs  []int64 `toml:"rhythm_pattern_ms"`
}

// DefaultTuning mirrors the parameter constants
func DefaultTuning() Tuning {
	pattern := make([]int64, len(parameter.RhythmPattern))
	for i, d := range parameter.RhythmPattern {
		pattern[i] = d.Milliseconds()
	}

	return Tuning{
		SphereCount: parameter.SphereCount,
		BonusChance: parameter.BonusChance,

		AttractionForce:        parameter.AttractionForce,
		Damping:                parameter.Damping,
		WallRestitution:        parameter.WallRestitution,
		CollisionVelocityScale: parameter.CollisionVelocityScale,
		MouthRepulsion:         parameter.MouthRepulsion,

		AnimationMs:       parameter.AnimationDuration.Milliseconds(),
		EatingWindowStart: parameter.EatingWindowStart,
		EatingWindowEnd:   parameter.EatingWindowEnd,

		CountdownMs: parameter.CountdownDuration.Milliseconds(),

		PowerUpSpawnChance: parameter.PowerUpSpawnChance,
		PowerUpMaxLive:     parameter.PowerUpMaxLive,
		PowerUpDurationMs:  parameter.PowerUpDuration.Milliseconds(),
		StunDelayMs:        parameter.StunDelay.Milliseconds(),

		StuckCheckIntervalMs: parameter.StuckCheckInterval.Milliseconds(),
		StuckTimeLimitMs:     parameter.StuckTimeLimit.Milliseconds(),
		StuckSpeedThreshold:  parameter.StuckSpeedThreshold,

		SniperCooldownMs: parameter.SniperCooldown.Milliseconds(),
		MasherIntervalMs: parameter.MasherInterval.Milliseconds(),
		RandoMinMs:       parameter.RandoMinInterval.Milliseconds(),
		RandoMaxMs:       parameter.RandoMaxInterval.Milliseconds(),
		RhythmPatternMs:  pattern,
	}
}

// Validate rejects values the simulation cannot run with
func (t *Tuning) Validate() error {
	switch {
	case t.SphereCount < 0:
		return fmt.Errorf("%w: arena.sphere_count must not be negative, got %d", ErrInvalid, t.SphereCount)
	case !isProbability(t.BonusChance):
		return fmt.Errorf("%w: arena.bonus_chance must be in [0,1], got %g", ErrInvalid, t.BonusChance)
	case !isProbability(t.PowerUpSpawnChance):
		return fmt.Errorf("%w: arena.powerup_spawn_chance must be in [0,1], got %g", ErrInvalid, t.PowerUpSpawnChance)
	case t.Damping <= 0 || t.Damping > 1:
		return fmt.Errorf("%w: arena.damping must be in (0,1], got %g", ErrInvalid, t.Damping)
	case t.AnimationMs <= 0:
		return fmt.Errorf("%w: arena.animation_ms must be positive, got %d", ErrInvalid, t.AnimationMs)
	case t.EatingWindowStart <= 0 || t.EatingWindowEnd >= 1 || t.EatingWindowStart >= t.EatingWindowEnd:
		return fmt.Errorf("%w: arena eating window (%g,%g) must lie inside (0,1)", ErrInvalid, t.EatingWindowStart, t.EatingWindowEnd)
	case t.CountdownMs < 0:
		return fmt.Errorf("%w: arena.countdown_ms must not be negative, got %d", ErrInvalid, t.CountdownMs)
	case t.PowerUpMaxLive < 0:
		return fmt.Errorf("%w: arena.powerup_max_live must not be negative, got %d", ErrInvalid, t.PowerUpMaxLive)
	case t.StuckCheckIntervalMs <= 0:
		return fmt.Errorf("%w: arena.stuck_check_interval_ms must be positive, got %d", ErrInvalid, t.StuckCheckIntervalMs)
	case t.RandoMinMs > t.RandoMaxMs:
		return fmt.Errorf("%w: arena.rando_min_ms %d exceeds rando_max_ms %d", ErrInvalid, t.RandoMinMs, t.RandoMaxMs)
	case len(t.RhythmPatternMs) == 0:
		return fmt.Errorf("%w: arena.rhythm_pattern_ms must not be empty", ErrInvalid)
	}
	for i, ms := range t.RhythmPatternMs {
		if ms <= 0 {
			return fmt.Errorf("%w: arena.rhythm_pattern_ms[%d] must be positive, got %d", ErrInvalid, i, ms)
		}
	}
	return nil
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}

func ms(v int64) time.Duration {
	return time.Duration(v) * time.Millisecond
}

func (t *Tuning) Animation() time.Duration          { return ms(t.AnimationMs) }
func (t *Tuning) Countdown() time.Duration          { return ms(t.CountdownMs) }
func (t *Tuning) PowerUpDuration() time.Duration    { return ms(t.PowerUpDurationMs) }
func (t *Tuning) StunDelay() time.Duration          { return ms(t.StunDelayMs) }
func (t *Tuning) StuckCheckInterval() time.Duration { return ms(t.StuckCheckIntervalMs) }
func (t *Tuning) StuckTimeLimit() time.Duration     { return ms(t.StuckTimeLimitMs) }
func (t *Tuning) SniperCooldown() time.Duration     { return ms(t.SniperCooldownMs) }
func (t *Tuning) MasherInterval() time.Duration     { return ms(t.MasherIntervalMs) }
func (t *Tuning) RandoMin() time.Duration           { return ms(t.RandoMinMs) }
func (t *Tuning) RandoMax() time.Duration           { return ms(t.RandoMaxMs) }

// MaxStep is the exclusive upper bound on a tick delta
// It equals the eating window of a speed-buffed strike; a larger step can jump the whole window
func (t *Tuning) MaxStep() time.Duration {
	window := t.EatingWindowEnd - t.EatingWindowStart
	return time.Duration(float64(t.Animation()) * parameter.SpeedFactor * window)
}

// ValidateStep rejects tick deltas under which no strike could ever capture
func (t *Tuning) ValidateStep(dt time.Duration) error {
	if limit := t.MaxStep(); dt <= 0 || dt >= limit {
		return fmt.Errorf("%w: tick step %v must be in (0, %v)", ErrInvalid, dt, limit)
	}
	return nil
}

// RhythmInterval returns the interval of the given phase, wrapping the index
func (t *Tuning) RhythmInterval(phase int) time.Duration {
	n := len(t.RhythmPatternMs)
	return ms(t.RhythmPatternMs[((phase%n)+n)%n])
}

// RhythmLen is the number of phases in the rhythm pattern
func (t *Tuning) RhythmLen() int {
	return len(t.RhythmPatternMs)
}
