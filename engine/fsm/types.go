package fsm

import (
	"time"

	"github.com/lixenwraith/hippo-arena/event"
)

// StateID is a unique identifier for a node
type StateID int

const StateNone StateID = 0

// Machine is a flat finite state machine runtime
// T is the context type passed to actions and guards (e.g., *engine.World)
type Machine[T any] struct {
	// Graph data, immutable after construction
	nodes map[StateID]*Node[T]

	InitialStateID StateID

	// Runtime state
	activeStateID StateID
	timeInState   time.Duration

	onTransition func(ctx T, from, to StateID)
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	OnEnter  []Action[T]
	OnUpdate []UpdateFunc[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    event.EventType // EventNone = tick (auto-transition)
	Guard    GuardFunc[T]    // nil = always true

	// Reenter runs exit and enter actions even when TargetID is the active state
	Reenter bool
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any
}

// GuardFunc returns true if the transition should occur
// inState is the time spent in the active state including the current tick
type GuardFunc[T any] func(ctx T, inState time.Duration) bool

// ActionFunc executes a side effect on enter or exit
type ActionFunc[T any] func(ctx T, args any)

// UpdateFunc runs once per tick while its state is active
type UpdateFunc[T any] func(ctx T, dt time.Duration)
