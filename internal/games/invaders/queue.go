package invaders

import "github.com/vovakirdan/alien-attack/internal/core"

// DefaultQueueSize is the input buffer capacity used when none is configured.
const DefaultQueueSize = 10

// Queue is a fixed-capacity FIFO of input actions. When full, Push evicts
// the oldest action to make room.
type Queue struct {
	buf   []core.Action
	head  int
	count int
}

// NewQueue creates an empty queue. Capacities below 1 become 1.
func NewQueue(capacity int) *Queue {
	return &Queue{buf: make([]core.Action, max(capacity, 1))}
}

// Push appends an action, dropping the oldest one on overflow.
func (q *Queue) Push(a core.Action) {
	if q.count == len(q.buf) {
		q.head = (q.head + 1) % len(q.buf)
		q.count--
	}
	q.buf[(q.head+q.count)%len(q.buf)] = a
	q.count++
}

// Pop removes and returns the oldest action. It returns false when empty.
func (q *Queue) Pop() (core.Action, bool) {
	if q.count == 0 {
		return core.ActionNone, false
	}
	a := q.buf[q.head]
	q.head = (q.head + 1) % len(q.buf)
	q.count--
	return a, true
}

// Len returns the number of buffered actions.
func (q *Queue) Len() int {
	return q.count
}

// Cap returns the queue capacity.
func (q *Queue) Cap() int {
	return len(q.buf)
}

// Clear drops every buffered action.
func (q *Queue) Clear() {
	q.head, q.count = 0, 0
}
