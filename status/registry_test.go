package status

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestMetricMapGetCaches(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	a := m.Get("x")
	a.Add(3)
	b := m.Get("x")
	if a != b {
		t.Fatal("Expected cached pointer on second Get")
	}
	if b.Load() != 3 {
		t.Errorf("Expected 3, got %d", b.Load())
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Get("shared").Add(1)
			}
		}()
	}
	wg.Wait()
	if got := m.Get("shared").Load(); got != 800 {
		t.Errorf("Expected 800, got %d", got)
	}
	out := make(map[string]any)
	m.Export(out, func(p *atomic.Int64) any { return p.Load() })
	if len(out) != 1 {
		t.Errorf("Expected 1 key, got %v", out)
	}
}

func TestRegistrySnapshot(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyCaptures).Store(7)
	r.Strings.Get(KeyPhase).Store("playing")
	r.Floats.Get(KeyGameTimeSec).Set(1.5)
	r.Bools.Get(KeyPaused).Store(true)

	snap := r.Snapshot()
	if snap[KeyCaptures] != int64(7) {
		t.Errorf("captures: got %v", snap[KeyCaptures])
	}
	if snap[KeyPhase] != "playing" {
		t.Errorf("phase: got %v", snap[KeyPhase])
	}
	if snap[KeyGameTimeSec] != 1.5 {
		t.Errorf("game time: got %v", snap[KeyGameTimeSec])
	}
	if snap[KeyPaused] != true {
		t.Errorf("paused: got %v", snap[KeyPaused])
	}
	if len(snap) != 4 {
		t.Errorf("Expected 4 metrics, got %v", snap)
	}
}
