package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/hippo-arena/event"
)

// NewMachine creates an empty FSM
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// AddState adds a node to the machine
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:   id,
		Name: name,
	}
	m.nodes[id] = node
	return node
}

// AddTransition appends a transition to the source node, unknown sources are ignored
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) {
	if node, ok := m.nodes[sourceID]; ok {
		node.Transitions = append(node.Transitions, t)
	}
}

// OnTransition registers a hook called after every completed state change
func (m *Machine[T]) OnTransition(fn func(ctx T, from, to StateID)) {
	m.onTransition = fn
}

// Init enters the initial state, running its enter actions
func (m *Machine[T]) Init(ctx T, initialID StateID) error {
	node, ok := m.nodes[initialID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initialID)
	}
	for _, t := range m.allTransitions() {
		if _, ok := m.nodes[t.TargetID]; !ok {
			return fmt.Errorf("transition targets unknown state ID %d", t.TargetID)
		}
	}

	m.InitialStateID = initialID
	m.activeStateID = initialID
	m.timeInState = 0
	runActions(ctx, node.OnEnter)
	if m.onTransition != nil {
		m.onTransition(ctx, StateNone, initialID)
	}
	return nil
}

// Update advances the active state by dt
// OnUpdate actions run first, then tick transitions are evaluated in order
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}

	m.timeInState += dt

	node := m.nodes[m.activeStateID]
	for _, fn := range node.OnUpdate {
		fn(ctx, dt)
	}

	// OnUpdate may have triggered an event transition
	node = m.nodes[m.activeStateID]
	for _, trans := range node.Transitions {
		if trans.Event != event.EventNone {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx, m.timeInState) {
			m.transition(ctx, trans)
			return
		}
	}
}

// HandleEvent routes an external event to the active state
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, eventType event.EventType) bool {
	if m.activeStateID == StateNone || eventType == event.EventNone {
		return false
	}

	node := m.nodes[m.activeStateID]
	for _, trans := range node.Transitions {
		if trans.Event != eventType {
			continue
		}
		if trans.Guard == nil || trans.Guard(ctx, m.timeInState) {
			m.transition(ctx, trans)
			return true
		}
	}
	return false
}

func (m *Machine[T]) transition(ctx T, trans Transition[T]) {
	from := m.activeStateID
	if from == trans.TargetID && !trans.Reenter {
		return
	}

	target, ok := m.nodes[trans.TargetID]
	if !ok {
		panic(fmt.Sprintf("FSM: attempted transition to unknown state ID %d", trans.TargetID))
	}

	runActions(ctx, m.nodes[from].OnExit)

	m.activeStateID = trans.TargetID
	m.timeInState = 0

	runActions(ctx, target.OnEnter)

	if m.onTransition != nil {
		m.onTransition(ctx, from, trans.TargetID)
	}
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, a := range actions {
		a.Func(ctx, a.Args)
	}
}

func (m *Machine[T]) allTransitions() []Transition[T] {
	var out []Transition[T]
	for _, n := range m.nodes {
		out = append(out, n.Transitions...)
	}
	return out
}

// State returns the active StateID
func (m *Machine[T]) State() StateID {
	return m.activeStateID
}

// StateName returns the name of the active state, empty before Init
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// Name returns the name registered for id
func (m *Machine[T]) Name(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns the time spent in the active state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
