package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine turns tcell events into intents
// Mouse activation fires on the press edge only, so a held button strikes once
type Machine struct {
	keyTable *KeyTable
	buttons  tcell.ButtonMask
}

// NewMachine creates a machine with the default bindings
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// SetKeyTable replaces the active bindings
func (m *Machine) SetKeyTable(kt *KeyTable) {
	m.keyTable = kt
}

// Process maps a single event; unknown input yields IntentNone
func (m *Machine) Process(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return IntentResize
	}
	return IntentNone
}

func (m *Machine) processKey(ev *tcell.EventKey) IntentType {
	if ev.Key() != tcell.KeyRune {
		return m.keyTable.SpecialKeys[ev.Key()]
	}
	r := normalizeRune(ev.Rune())
	// Some terminals report Ctrl+letter as a modified rune
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if r == 'c' {
			return IntentQuit
		}
		return IntentNone
	}
	return m.keyTable.Runes[r]
}

func (m *Machine) processMouse(ev *tcell.EventMouse) IntentType {
	prev := m.buttons
	m.buttons = ev.Buttons()
	if m.buttons&tcell.Button1 != 0 && prev&tcell.Button1 == 0 {
		return IntentActivate
	}
	return IntentNone
}

func normalizeRune(r rune) rune {
	return unicode.ToLower(r)
}
