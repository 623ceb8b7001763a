package engine

import "time"

// System is one stage of the per-tick pipeline
// Systems run in ascending Priority order and mutate the World they are given
type System interface {
	Name() string
	Priority() int
	Update(w *World, dt time.Duration)
}
