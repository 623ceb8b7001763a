package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/hippo-arena/event"
)

func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Abs(smp[0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never drained")
	return 0, 0
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		name string
		ev   event.GameEvent
		want Cue
	}{
		{"player strike", event.GameEvent{Type: event.EventHippoStrike, Payload: &event.HippoPayload{HippoID: 0}}, CueStrike},
		{"rival strike silent", event.GameEvent{Type: event.EventHippoStrike, Payload: &event.HippoPayload{HippoID: 2}}, CueNone},
		{"plain capture", event.GameEvent{Type: event.EventSphereEaten, Payload: &event.SphereEatenPayload{Points: 1}}, CueChomp},
		{"bonus capture", event.GameEvent{Type: event.EventSphereEaten, Payload: &event.SphereEatenPayload{Points: 3, Bonus: true}}, CueBonus},
		{"spawn", event.GameEvent{Type: event.EventPowerUpSpawned}, CuePowerUpSpawn},
		{"collect", event.GameEvent{Type: event.EventPowerUpCollected}, CuePowerUp},
		{"stun", event.GameEvent{Type: event.EventHippoStunned}, CueStun},
		{"shake", event.GameEvent{Type: event.EventStuckRecovered}, CueShake},
		{"go", event.GameEvent{Type: event.EventPhaseChanged, Payload: &event.PhasePayload{From: "countdown", To: "playing"}}, CueGo},
		{"over", event.GameEvent{Type: event.EventPhaseChanged, Payload: &event.PhasePayload{From: "playing", To: "gameover"}}, CueGameOver},
		{"countdown silent", event.GameEvent{Type: event.EventPhaseChanged, Payload: &event.PhasePayload{To: "countdown"}}, CueNone},
		{"input silent", event.GameEvent{Type: event.EventRestartRequest}, CueNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CueFor(tt.ev); got != tt.want {
				t.Errorf("CueFor = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSoundLengths(t *testing.T) {
	rate := beep.SampleRate(48000)
	tests := []struct {
		cue  Cue
		want time.Duration
	}{
		{CueStrike, 60 * time.Millisecond},
		{CueChomp, 70 * time.Millisecond},
		{CueBonus, 150 * time.Millisecond},
		{CuePowerUp, 260 * time.Millisecond},
		{CueShake, 250 * time.Millisecond},
		{CueGameOver, 600 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			n, peak := drain(t, Sound(tt.cue, rate))
			if n != rate.N(tt.want) {
				t.Errorf("Expected %d samples, got %d", rate.N(tt.want), n)
			}
			if peak == 0 || peak > 1 {
				t.Errorf("Expected audible normalized output, peak %v", peak)
			}
		})
	}

	if Sound(CueNone, rate) != nil {
		t.Error("CueNone must have no sound")
	}
}

func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	env := NewEnvelope(NewOscillator(0, time.Second, WaveSquare, rate), time.Second, 100*time.Millisecond, 200*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	// Square wave at zero frequency holds +1, so samples equal the envelope gain
	if buf[0][0] != 0 {
		t.Errorf("Attack must start silent, got %v", buf[0][0])
	}
	if buf[50][0] != 0.5 {
		t.Errorf("Expected half gain mid-attack, got %v", buf[50][0])
	}
	if buf[500][0] != 1 {
		t.Errorf("Expected full sustain, got %v", buf[500][0])
	}
	if buf[900][0] != 0.5 {
		t.Errorf("Expected half gain mid-release, got %v", buf[900][0])
	}
	if n, ok := env.Stream(buf); n != 0 || ok {
		t.Errorf("Drained envelope must report done, got %d %v", n, ok)
	}
}

func TestSoundManagerUninitialized(t *testing.T) {
	sm := NewSoundManager(0.5)
	sm.Play(CueChomp)
	sm.HandleEvents([]event.GameEvent{{Type: event.EventStuckRecovered}})
	sm.Cleanup()
	if !sm.ToggleMute() || sm.ToggleMute() {
		t.Error("ToggleMute should alternate")
	}
}
