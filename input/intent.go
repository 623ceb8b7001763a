package input

import "github.com/lixenwraith/hippo-arena/event"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// Arena intents
	IntentActivate // Space, Enter, left click
	IntentRestart  // r

	// Host intents
	IntentPause          // p
	IntentQuit           // q, Esc, Ctrl+C
	IntentToggleMute     // m
	IntentToggleAutoplay // a
	IntentToggleStatus   // s
	IntentResize         // terminal resize event
)

// Event returns the request event carried into the arena or host loop, EventNone for host-local intents
func (t IntentType) Event() event.EventType {
	switch t {
	case IntentActivate:
		return event.EventActivateRequest
	case IntentRestart:
		return event.EventRestartRequest
	case IntentPause:
		return event.EventPauseToggle
	case IntentQuit:
		return event.EventQuitRequest
	default:
		return event.EventNone
	}
}

func (t IntentType) String() string {
	for name, it := range actionRegistry {
		if it == t {
			return name
		}
	}
	return "unknown"
}
