package status

import "sync/atomic"

// Well-known metric keys written by the arena and its hosts
const (
	KeyTicks         = "arena.ticks"
	KeyCaptures      = "arena.captures"
	KeyPowerUps      = "arena.powerups_collected"
	KeyStuckShakes   = "arena.stuck_recoveries"
	KeyRounds        = "arena.rounds"
	KeyPhase         = "arena.phase"
	KeyMatchID       = "arena.match_id"
	KeyGameTimeSec   = "arena.game_time_s"
	KeySpectators    = "spectate.clients"
	KeySpectateDrops = "spectate.dropped_frames"
	KeyRenderFPS     = "render.fps"
	KeyPaused        = "host.paused"
)

// Registry groups metric maps by value type
// Systems cache pointers at construction and update atomics from the tick loop
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// Snapshot flattens every metric into a plain map for JSON export
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any)
	r.Bools.Export(out, func(p *atomic.Bool) any { return p.Load() })
	r.Ints.Export(out, func(p *atomic.Int64) any { return p.Load() })
	r.Floats.Export(out, func(p *AtomicFloat) any { return p.Get() })
	r.Strings.Export(out, func(p *AtomicString) any { return p.Load() })
	return out
}
