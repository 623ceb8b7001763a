package input

// actionRegistry maps canonical action names to intents
// Used by the keymap loader to resolve TOML action strings
var actionRegistry = map[string]IntentType{
	// Unbind sentinel
	"none": IntentNone,

	"activate":        IntentActivate,
	"restart":         IntentRestart,
	"pause":           IntentPause,
	"quit":            IntentQuit,
	"toggle_mute":     IntentToggleMute,
	"toggle_autoplay": IntentToggleAutoplay,
	"toggle_status":   IntentToggleStatus,
}

// ActionIntent resolves an action name
func ActionIntent(name string) (IntentType, bool) {
	it, ok := actionRegistry[name]
	return it, ok
}
