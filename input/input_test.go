package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/hippo-arena/event"
)

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDefaultBindings(t *testing.T) {
	m := NewMachine()

	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"space", key(' '), IntentActivate},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), IntentActivate},
		{"restart", key('r'), IntentRestart},
		{"restart upper", key('R'), IntentRestart},
		{"pause", key('p'), IntentPause},
		{"quit", key('q'), IntentQuit},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), IntentQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), IntentQuit},
		{"mute", key('m'), IntentToggleMute},
		{"unbound", key('z'), IntentNone},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := m.Process(tc.ev); got != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestMouseActivatesOnPressEdge(t *testing.T) {
	m := NewMachine()

	if got := m.Process(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone)); got != IntentActivate {
		t.Fatalf("Press should activate, got %v", got)
	}
	if got := m.Process(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone)); got != IntentNone {
		t.Errorf("Drag with button held should not activate again, got %v", got)
	}
	m.Process(tcell.NewEventMouse(6, 5, tcell.ButtonNone, tcell.ModNone))
	if got := m.Process(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone)); got != IntentActivate {
		t.Errorf("Second press should activate, got %v", got)
	}
	if got := m.Process(tcell.NewEventMouse(6, 5, tcell.Button2, tcell.ModNone)); got != IntentNone {
		t.Errorf("Right click should be ignored, got %v", got)
	}
}

func TestIntentEvents(t *testing.T) {
	if IntentActivate.Event() != event.EventActivateRequest {
		t.Error("Activate should map to EventActivateRequest")
	}
	if IntentRestart.Event() != event.EventRestartRequest {
		t.Error("Restart should map to EventRestartRequest")
	}
	if IntentToggleMute.Event() != event.EventNone {
		t.Error("Mute is host-local")
	}
}

func TestLoadKeyConfigOverrides(t *testing.T) {
	override, err := LoadKeyConfig(map[string]string{
		"space": "none",
		"x":     "activate",
		"Esc":   "pause",
	})
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	m := NewMachine()
	m.SetKeyTable(MergeKeyTable(DefaultKeyTable(), override))

	if got := m.Process(key(' ')); got != IntentNone {
		t.Errorf("Space should be unbound, got %v", got)
	}
	if got := m.Process(key('x')); got != IntentActivate {
		t.Errorf("x should activate, got %v", got)
	}
	if got := m.Process(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)); got != IntentPause {
		t.Errorf("Esc should pause, got %v", got)
	}
	if got := m.Process(key('q')); got != IntentQuit {
		t.Errorf("Unrelated bindings should survive, got %v", got)
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	if _, err := LoadKeyConfig(map[string]string{"x": "fly"}); err == nil {
		t.Error("Unknown action should fail")
	}
	if _, err := LoadKeyConfig(map[string]string{"hyper-z": "quit"}); err == nil {
		t.Error("Unknown key name should fail")
	}
}
