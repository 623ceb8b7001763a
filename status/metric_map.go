package status

import "sync"

// MetricMap hands out one cell of type T per key
// Cells are created on first use and never removed, so cached pointers stay valid
type MetricMap[T any] struct {
	cells sync.Map // string -> *T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the cell for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.cells.Load(key); ok {
		return v.(*T)
	}
	v, _ := m.cells.LoadOrStore(key, new(T))
	return v.(*T)
}

// Export writes read(cell) for every key into out
func (m *MetricMap[T]) Export(out map[string]any, read func(*T) any) {
	m.cells.Range(func(k, v any) bool {
		out[k.(string)] = read(v.(*T))
		return true
	})
}
