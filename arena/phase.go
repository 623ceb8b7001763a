package arena

import (
	"log"
	"time"

	"github.com/lixenwraith/hippo-arena/engine"
	"github.com/lixenwraith/hippo-arena/engine/fsm"
	"github.com/lixenwraith/hippo-arena/event"
	"github.com/lixenwraith/hippo-arena/system"
)

type (
	transition = fsm.Transition[*engine.World]
	action     = fsm.Action[*engine.World]
)

var (
	stateCountdown = fsm.StateID(engine.PhaseCountdown)
	statePlaying   = fsm.StateID(engine.PhasePlaying)
	stateGameOver  = fsm.StateID(engine.PhaseGameOver)
)

// buildPhaseMachine wires countdown -> playing -> gameover with restart from anywhere
func (a *Arena) buildPhaseMachine() {
	m := a.fsm

	countdown := m.AddState(stateCountdown, engine.PhaseCountdown.String())
	countdown.OnEnter = []action{{Func: a.enterCountdown}}
	countdown.OnUpdate = []fsm.UpdateFunc[*engine.World]{
		func(w *engine.World, dt time.Duration) { w.CountdownElapsed += dt },
	}

	playing := m.AddState(statePlaying, engine.PhasePlaying.String())
	playing.OnEnter = []action{{Func: enterPlaying}}
	playing.OnUpdate = []fsm.UpdateFunc[*engine.World]{
		func(w *engine.World, dt time.Duration) { w.Update(dt) },
	}

	gameOver := m.AddState(stateGameOver, engine.PhaseGameOver.String())
	gameOver.OnEnter = []action{{Func: enterGameOver}}

	m.AddTransition(stateCountdown, transition{
		TargetID: statePlaying,
		Guard: func(w *engine.World, inState time.Duration) bool {
			return inState >= w.Tuning.Countdown()
		},
	})
	m.AddTransition(statePlaying, transition{
		TargetID: stateGameOver,
		Guard: func(w *engine.World, _ time.Duration) bool {
			return w.AllEaten()
		},
	})

	for _, id := range []fsm.StateID{stateCountdown, statePlaying, stateGameOver} {
		m.AddTransition(id, transition{
			TargetID: stateCountdown,
			Event:    event.EventRestartRequest,
			Reenter:  true,
		})
	}

	m.OnTransition(a.phaseChanged)
}

// enterCountdown resets the round: new match, fresh spheres, reset hippos
func (a *Arena) enterCountdown(w *engine.World, _ any) {
	w.Phase = engine.PhaseCountdown
	w.ResetRound()
	system.SpawnSpheres(w)
	system.ResetHippos(w)

	a.statRounds.Add(1)
	a.statMatch.Store(w.MatchID.String())
	a.logRoundStart(w)
}

func enterPlaying(w *engine.World, _ any) {
	w.Phase = engine.PhasePlaying
	w.GameTime = 0
}

func enterGameOver(w *engine.World, _ any) {
	w.Phase = engine.PhaseGameOver
	win := winnerOf(w.Hippos)
	log.Printf("[arena] round %s over after %v: winner %s with %d", w.MatchID, w.GameTime, win.Name, win.Score)
}

func (a *Arena) phaseChanged(w *engine.World, from, to fsm.StateID) {
	a.statPhase.Store(engine.Phase(to).String())
	w.Events.Emit(event.EventPhaseChanged, &event.PhasePayload{
		From: engine.Phase(from).String(),
		To:   engine.Phase(to).String(),
	})
}
