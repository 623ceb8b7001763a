package engine

// Phase is the round lifecycle state, values double as FSM state IDs
type Phase int

const (
	PhaseNone Phase = iota
	PhaseCountdown
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseCountdown:
		return "countdown"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "none"
	}
}
