package component

import (
	"time"

	"github.com/lixenwraith/hippo-arena/vmath"
)

// Direction is the board side label of a hippo
type Direction uint8

const (
	DirectionN Direction = iota
	DirectionE
	DirectionS
	DirectionW
)

func (d Direction) String() string {
	return [...]string{"N", "E", "S", "W"}[d&3]
}

// Hippo is one of the four fixed arena participants
// Head equals BaseHead whenever Eating is false
type Hippo struct {
	ID        int
	Direction Direction
	Pos       vmath.Vec2
	Angle     float64 // facing, radians

	Head     vmath.Vec2
	BaseHead vmath.Vec2

	Eating   bool
	Progress float64 // strike animation progress in [0,1]

	Score       int
	Personality Personality

	// Scheduling state, all relative to game time
	LastAction  time.Duration
	NextAction  time.Duration
	RhythmPhase int

	Buff    PowerUpType
	BuffEnd time.Duration
}

// Facing returns the unit vector of the facing angle
func (h *Hippo) Facing() vmath.Vec2 {
	return vmath.FromAngle(h.Angle)
}

// IsPlayer reports whether the hippo is human-controlled
func (h *Hippo) IsPlayer() bool {
	return h.Personality == PersonalityPlayer
}

// HasBuff reports whether the given buff is active
func (h *Hippo) HasBuff(p PowerUpType) bool {
	return h.Buff == p
}

// Retract snaps the hippo back to idle
func (h *Hippo) Retract() {
	h.Eating = false
	h.Progress = 0
	h.Head = h.BaseHead
}

// Label is the scoreboard name: "You" for the player, the direction otherwise
func (h *Hippo) Label() string {
	if h.IsPlayer() {
		return "You"
	}
	return h.Direction.String()
}

// DisplayName is the banner name, e.g. "Sniper (E)"
func (h *Hippo) DisplayName() string {
	if h.IsPlayer() {
		return "You"
	}
	return h.Personality.Title() + " (" + h.Direction.String() + ")"
}
