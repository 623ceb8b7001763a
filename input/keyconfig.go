package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeys indexes tcell key names in lower case, e.g. "enter", "esc", "ctrl-c"
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses [keys] bindings (key name → action name) into a sparse override table
// Returns error on unknown action names or invalid key names
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		SpecialKeys: make(map[tcell.Key]IntentType),
		Runes:       make(map[rune]IntentType),
	}

	for keyStr, actionName := range bindings {
		it, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			kt.Runes[r] = it
			continue
		}
		k, ok := specialKeys[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("[keys] unknown key name: %q", keyStr)
		}
		kt.SpecialKeys[k] = it
	}

	return kt, nil
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return normalizeRune(runes[0]), true
	}
	return 0, false
}

func resolveAction(name string) (IntentType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	it, ok := ActionIntent(name)
	if !ok {
		return IntentNone, fmt.Errorf("unknown action: %q", name)
	}
	return it, nil
}
