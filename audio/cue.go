package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hippo-arena/event"
)

// Cue identifies a sound effect
type Cue int

const (
	CueNone Cue = iota
	CueStrike
	CueChomp
	CueBonus
	CuePowerUpSpawn
	CuePowerUp
	CueStun
	CueShake
	CueGo
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueStrike:
		return "strike"
	case CueChomp:
		return "chomp"
	case CueBonus:
		return "bonus"
	case CuePowerUpSpawn:
		return "powerup_spawn"
	case CuePowerUp:
		return "powerup"
	case CueStun:
		return "stun"
	case CueShake:
		return "shake"
	case CueGo:
		return "go"
	case CueGameOver:
		return "gameover"
	default:
		return "none"
	}
}

// CueFor maps an arena event to its sound, CueNone when silent
// Strikes are audible for the player only; rival strikes would drown the board
func CueFor(ev event.GameEvent) Cue {
	switch ev.Type {
	case event.EventHippoStrike:
		if p, ok := ev.Payload.(*event.HippoPayload); ok && p.HippoID == 0 {
			return CueStrike
		}
	case event.EventSphereEaten:
		if p, ok := ev.Payload.(*event.SphereEatenPayload); ok && p.Bonus {
			return CueBonus
		}
		return CueChomp
	case event.EventPowerUpSpawned:
		return CuePowerUpSpawn
	case event.EventPowerUpCollected:
		return CuePowerUp
	case event.EventHippoStunned:
		return CueStun
	case event.EventStuckRecovered:
		return CueShake
	case event.EventPhaseChanged:
		if p, ok := ev.Payload.(*event.PhasePayload); ok {
			switch p.To {
			case "playing":
				return CueGo
			case "gameover":
				return CueGameOver
			}
		}
	}
	return CueNone
}

// Sound synthesizes the streamer of a cue, nil for CueNone
func Sound(c Cue, rate beep.SampleRate) beep.Streamer {
	const ms = time.Millisecond
	switch c {
	case CueStrike:
		return glide(180, 90, 60*ms, WaveTriangle, rate)
	case CueChomp:
		return tone(220, 70*ms, WaveSquare, rate)
	case CueBonus:
		return beep.Seq(
			tone(660, 60*ms, WaveSine, rate),
			tone(990, 90*ms, WaveSine, rate),
		)
	case CuePowerUpSpawn:
		return glide(400, 800, 120*ms, WaveSine, rate)
	case CuePowerUp:
		return beep.Seq(
			tone(523, 70*ms, WaveSine, rate),
			tone(659, 70*ms, WaveSine, rate),
			tone(784, 120*ms, WaveSine, rate),
		)
	case CueStun:
		return glide(600, 120, 200*ms, WaveSquare, rate)
	case CueShake:
		return tone(0, 250*ms, WaveNoise, rate)
	case CueGo:
		return tone(880, 200*ms, WaveSine, rate)
	case CueGameOver:
		return beep.Seq(
			tone(523, 150*ms, WaveTriangle, rate),
			tone(392, 150*ms, WaveTriangle, rate),
			tone(262, 300*ms, WaveTriangle, rate),
		)
	default:
		return nil
	}
}
