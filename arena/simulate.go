package arena

import (
	"context"
	"time"

	"github.com/lixenwraith/hippo-arena/engine"
)

// Result summarizes a headless run
type Result struct {
	MatchID   string
	Ticks     int
	GameTime  time.Duration
	Phase     engine.Phase
	Completed bool // the round reached gameover
	Scores    []int
	Winner    Standing
}

// Simulate drives the arena with a fixed step until gameover, maxTicks or cancellation
// maxTicks <= 0 means no tick limit
func (a *Arena) Simulate(ctx context.Context, dt time.Duration, maxTicks int) Result {
	ticks := 0
	for maxTicks <= 0 || ticks < maxTicks {
		if ctx.Err() != nil {
			break
		}
		a.Advance(dt)
		ticks++
		if a.Phase() == engine.PhaseGameOver {
			break
		}
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	w := a.world
	res := Result{
		MatchID:   w.MatchID.String(),
		Ticks:     ticks,
		GameTime:  w.GameTime,
		Phase:     w.Phase,
		Completed: w.Phase == engine.PhaseGameOver,
		Scores:    make([]int, len(w.Hippos)),
		Winner:    winnerOf(w.Hippos),
	}
	for i, h := range w.Hippos {
		res.Scores[i] = h.Score
	}
	return res
}
