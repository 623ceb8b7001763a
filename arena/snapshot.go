package arena

import (
	"github.com/lixenwraith/hippo-arena/component"
	"github.com/lixenwraith/hippo-arena/engine"
)

// SphereView is the wire form of a live sphere
type SphereView struct {
	ID      int     `json:"id" msgpack:"id"`
	X       float64 `json:"x" msgpack:"x"`
	Y       float64 `json:"y" msgpack:"y"`
	Radius  float64 `json:"r" msgpack:"r"`
	Bonus   bool    `json:"bonus,omitempty" msgpack:"bonus,omitempty"`
	PowerUp string  `json:"powerup,omitempty" msgpack:"powerup,omitempty"`
	// SpawnMs is the power-up spawn time, zero for plain spheres
	SpawnMs int64 `json:"spawn_ms,omitempty" msgpack:"spawn_ms,omitempty"`
}

// HippoView is the wire form of a hippo
type HippoView struct {
	ID          int     `json:"id" msgpack:"id"`
	Direction   string  `json:"dir" msgpack:"dir"`
	Personality string  `json:"personality" msgpack:"personality"`
	Name        string  `json:"name" msgpack:"name"`
	X           float64 `json:"x" msgpack:"x"`
	Y           float64 `json:"y" msgpack:"y"`
	Angle       float64 `json:"angle" msgpack:"angle"`
	HeadX       float64 `json:"head_x" msgpack:"head_x"`
	HeadY       float64 `json:"head_y" msgpack:"head_y"`
	Eating      bool    `json:"eating" msgpack:"eating"`
	Progress    float64 `json:"progress" msgpack:"progress"`
	Score       int     `json:"score" msgpack:"score"`
	Buff        string  `json:"buff,omitempty" msgpack:"buff,omitempty"`
}

// Snapshot is an immutable copy of the arena after a tick
type Snapshot struct {
	MatchID     string `json:"match_id" msgpack:"match_id"`
	Phase       string `json:"phase" msgpack:"phase"`
	Tick        uint64 `json:"tick" msgpack:"tick"`
	GameTimeMs  int64  `json:"game_time_ms" msgpack:"game_time_ms"`
	CountdownMs int64  `json:"countdown_ms" msgpack:"countdown_ms"`
	StuckMs     int64  `json:"stuck_ms,omitempty" msgpack:"stuck_ms,omitempty"`

	// Configured totals, so clients can show remaining time
	CountdownTotalMs int64 `json:"countdown_total_ms" msgpack:"countdown_total_ms"`
	StuckLimitMs     int64 `json:"stuck_limit_ms" msgpack:"stuck_limit_ms"`

	Spheres []SphereView `json:"spheres" msgpack:"spheres"`
	Hippos  []HippoView  `json:"hippos" msgpack:"hippos"`
	Winner  *Standing    `json:"winner,omitempty" msgpack:"winner,omitempty"`
}

// Snapshot copies the current world into wire form
func (a *Arena) Snapshot() Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return snapshotOf(a.world)
}

func snapshotOf(w *engine.World) Snapshot {
	snap := Snapshot{
		MatchID:     w.MatchID.String(),
		Phase:       w.Phase.String(),
		Tick:        w.Tick,
		GameTimeMs:  w.GameTime.Milliseconds(),
		CountdownMs: w.CountdownElapsed.Milliseconds(),
		StuckMs:     w.StuckFor().Milliseconds(),
		Spheres:     make([]SphereView, 0, len(w.Spheres)),
		Hippos:      make([]HippoView, 0, len(w.Hippos)),

		CountdownTotalMs: w.Tuning.Countdown().Milliseconds(),
		StuckLimitMs:     w.Tuning.StuckTimeLimit().Milliseconds(),
	}

	for _, s := range w.Spheres {
		if s.Eaten {
			continue
		}
		v := SphereView{ID: s.ID, X: s.Pos.X, Y: s.Pos.Y, Radius: s.Radius, Bonus: s.Bonus}
		if s.LivePowerUp() {
			v.PowerUp = s.PowerUp.Type.String()
			v.SpawnMs = s.PowerUp.SpawnTime.Milliseconds()
		}
		snap.Spheres = append(snap.Spheres, v)
	}

	for _, h := range w.Hippos {
		v := HippoView{
			ID:          h.ID,
			Direction:   h.Direction.String(),
			Personality: h.Personality.String(),
			Name:        h.DisplayName(),
			X:           h.Pos.X,
			Y:           h.Pos.Y,
			Angle:       h.Angle,
			HeadX:       h.Head.X,
			HeadY:       h.Head.Y,
			Eating:      h.Eating,
			Progress:    h.Progress,
			Score:       h.Score,
		}
		if h.Buff != component.PowerUpNone {
			v.Buff = h.Buff.String()
		}
		snap.Hippos = append(snap.Hippos, v)
	}

	if w.Phase == engine.PhaseGameOver {
		win := winnerOf(w.Hippos)
		snap.Winner = &win
	}
	return snap
}
