package event

// EventType represents the type of game event
type EventType int

const (
	EventNone EventType = iota

	// === Input Event ===

	// EventActivateRequest asks the player hippo to strike
	// Trigger: Space/Enter/left click | Consumer: arena.ActivatePlayer | Payload: nil
	EventActivateRequest

	// EventRestartRequest asks for a fresh round
	// Trigger: r key | Consumer: arena.Restart | Payload: nil
	EventRestartRequest

	// EventPauseToggle freezes or resumes game time
	// Trigger: p key | Consumer: host loop (PausableClock) | Payload: nil
	EventPauseToggle

	// EventQuitRequest ends the host loop
	// Trigger: q, Esc, Ctrl+C | Consumer: host loop | Payload: nil
	EventQuitRequest

	// === Arena Event ===

	// EventHippoStrike is emitted when a hippo enters the acting state
	// Trigger: Activate | Consumer: AudioCue | Payload: *HippoPayload
	EventHippoStrike EventType = iota + 100

	// EventSphereEaten is emitted on every capture
	// Trigger: HippoSystem eating window | Consumer: AudioCue, status | Payload: *SphereEatenPayload
	EventSphereEaten

	// EventPowerUpSpawned is emitted when a power-up enters the board
	// Trigger: PowerUpSystem | Consumer: AudioCue | Payload: *PowerUpPayload
	EventPowerUpSpawned

	// EventPowerUpCollected is emitted when a hippo gains a buff
	// Trigger: HippoSystem eating window | Consumer: AudioCue | Payload: *PowerUpPayload
	EventPowerUpCollected

	// EventHippoStunned is emitted for each rival interrupted by a stun
	// Trigger: stun collection | Consumer: AudioCue | Payload: *HippoPayload
	EventHippoStunned

	// EventStuckRecovered is emitted when the shake impulse is applied
	// Trigger: StuckSystem | Consumer: AudioCue, status | Payload: nil
	EventStuckRecovered

	// EventPhaseChanged is emitted on every phase FSM transition
	// Trigger: arena FSM | Consumer: AudioCue, spectators | Payload: *PhasePayload
	EventPhaseChanged
)

// GameEvent is a single queued event
type GameEvent struct {
	Type    EventType
	Payload any
}

func (t EventType) String() string {
	switch t {
	case EventActivateRequest:
		return "activate"
	case EventRestartRequest:
		return "restart"
	case EventPauseToggle:
		return "pause"
	case EventQuitRequest:
		return "quit"
	case EventHippoStrike:
		return "strike"
	case EventSphereEaten:
		return "sphere_eaten"
	case EventPowerUpSpawned:
		return "powerup_spawned"
	case EventPowerUpCollected:
		return "powerup_collected"
	case EventHippoStunned:
		return "stunned"
	case EventStuckRecovered:
		return "stuck_recovered"
	case EventPhaseChanged:
		return "phase_changed"
	default:
		return "none"
	}
}
