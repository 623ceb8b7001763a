// Package config loads the arena configuration from TOML, layered over defaults
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/hippo-arena/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the full runtime configuration of the host shell and the arena
type Config struct {
	Arena    Tuning   `toml:"arena"`
	Display  Display  `toml:"display"`
	Audio    Audio    `toml:"audio"`
	Spectate Spectate `toml:"spectate"`
	Log      Log      `toml:"log"`

	// Keys overrides input bindings: key name → action name
	Keys map[string]string `toml:"keys"`
}

// Display controls the terminal host
type Display struct {
	FPS        int  `toml:"fps"`
	ShowStatus bool `toml:"show_status"`
}

// Audio controls sound cues
type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // linear gain in [0,1], 0 = silent
}

// Spectate controls the read-only snapshot feed; empty Addr disables it
type Spectate struct {
	Addr string `toml:"addr"`
}

// Log controls the debug log file
type Log struct {
	Debug     bool   `toml:"debug"`
	Dir       string `toml:"dir"`
	MaxSizeMB int    `toml:"max_size_mb"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Arena: DefaultTuning(),
		Display: Display{
			FPS:        parameter.FrameRate,
			ShowStatus: true,
		},
		Audio: Audio{
			Enabled: true,
			Volume:  0.8,
		},
		Log: Log{
			Dir:       "logs",
			MaxSizeMB: 10,
		},
	}
}

// Load reads path over Default and validates the result
// Unknown keys are rejected so typos do not silently fall back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys in %s: %s", ErrInvalid, path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every section
func (c *Config) Validate() error {
	if err := c.Arena.Validate(); err != nil {
		return err
	}
	if c.Display.FPS <= 0 {
		return fmt.Errorf("%w: display.fps must be positive, got %d", ErrInvalid, c.Display.FPS)
	}
	if err := c.Arena.ValidateStep(c.Display.FrameInterval()); err != nil {
		return fmt.Errorf("display.fps %d too low: %w", c.Display.FPS, err)
	}
	if !isProbability(c.Audio.Volume) {
		return fmt.Errorf("%w: audio.volume must be in [0,1], got %g", ErrInvalid, c.Audio.Volume)
	}
	if c.Log.MaxSizeMB <= 0 {
		return fmt.Errorf("%w: log.max_size_mb must be positive, got %d", ErrInvalid, c.Log.MaxSizeMB)
	}
	return nil
}

// FrameInterval converts the configured FPS into a tick interval
func (d Display) FrameInterval() time.Duration {
	return time.Second / time.Duration(d.FPS)
}
