package event

import (
	"sync/atomic"

	"github.com/lixenwraith/hippo-arena/parameter"
)

// Queue is a lock-free MPSC ring buffer for game events
// Thread-Safety:
//   - Push: Lock-free CAS, multiple producers OK (input goroutine, simulation)
//   - Consume: Single consumer (host loop)
//   - Published flags prevent reading partial writes
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push adds event using CAS on tail, then marks the slot published
func (q *Queue) Push(ev GameEvent) {
	for {
		currentTail := q.tail.Load()
		nextTail := currentTail + 1

		if q.tail.CompareAndSwap(currentTail, nextTail) {
			idx := currentTail & parameter.EventBufferMask

			q.events[idx] = ev
			q.published[idx].Store(true) // MUST be after write

			currentHead := q.head.Load()
			if nextTail-currentHead > parameter.EventQueueSize {
				q.head.CompareAndSwap(currentHead, nextTail-parameter.EventQueueSize)
			}
			return
		}
	}
}

// Emit is shorthand for Push with a payload
func (q *Queue) Emit(t EventType, payload any) {
	q.Push(GameEvent{Type: t, Payload: payload})
}

// Consume returns all pending events in FIFO order and advances head
// Stops at the first slot whose writer has not finished
func (q *Queue) Consume() []GameEvent {
	currentHead := q.head.Load()
	currentTail := q.tail.Load()
	if currentTail == currentHead {
		return nil
	}

	available := currentTail - currentHead
	if available > parameter.EventQueueSize {
		available = parameter.EventQueueSize
		currentHead = currentTail - parameter.EventQueueSize
	}

	result := make([]GameEvent, 0, available)
	for i := uint64(0); i < available; i++ {
		idx := (currentHead + i) & parameter.EventBufferMask
		if !q.published[idx].Load() {
			break
		}
		result = append(result, q.events[idx])
		q.events[idx] = GameEvent{}
		q.published[idx].Store(false)
	}

	q.head.Store(currentHead + uint64(len(result)))
	return result
}

// Len returns the approximate number of pending events
func (q *Queue) Len() int {
	n := q.tail.Load() - q.head.Load()
	if n > parameter.EventQueueSize {
		n = parameter.EventQueueSize
	}
	return int(n)
}
