package invaders

import (
	"testing"

	"github.com/vovakirdan/alien-attack/internal/core"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(DefaultQueueSize)
	in := []core.Action{core.ActionUp, core.ActionFire, core.ActionLeft}
	for _, a := range in {
		q.Push(a)
	}

	for i, want := range in {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() #%d = %v, %v; expected %v, true", i, got, ok, want)
		}
	}
	if _, ok := q.Pop(); ok {
		t.Error("Pop() on empty queue should report false")
	}
}

func TestQueueDropsOldestOnOverflow(t *testing.T) {
	q := NewQueue(10)
	seq := []core.Action{
		core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight,
		core.ActionFire, core.ActionConfirm, core.ActionRestart, core.ActionQuit,
		core.ActionPause, core.ActionUp, core.ActionDown, core.ActionLeft,
	}

	for i, a := range seq {
		q.Push(a)
		if q.Len() > q.Cap() {
			t.Fatalf("after push %d Len() = %d exceeds Cap() = %d", i, q.Len(), q.Cap())
		}
	}
	if q.Len() != 10 {
		t.Fatalf("Len() = %d, expected 10", q.Len())
	}

	// The two oldest entries were evicted
	for i, want := range seq[2:] {
		got, ok := q.Pop()
		if !ok || got != want {
			t.Fatalf("Pop() #%d = %v, expected %v", i, got, want)
		}
	}
}

func TestQueueInterleaved(t *testing.T) {
	q := NewQueue(3)
	q.Push(core.ActionUp)
	q.Push(core.ActionDown)
	if a, _ := q.Pop(); a != core.ActionUp {
		t.Errorf("Pop() = %v, expected Up", a)
	}
	q.Push(core.ActionLeft)
	q.Push(core.ActionRight)
	q.Push(core.ActionFire) // evicts Down

	want := []core.Action{core.ActionLeft, core.ActionRight, core.ActionFire}
	for _, w := range want {
		if a, _ := q.Pop(); a != w {
			t.Errorf("Pop() = %v, expected %v", a, w)
		}
	}
}

func TestQueueCapacityAndClear(t *testing.T) {
	if NewQueue(0).Cap() != 1 {
		t.Error("capacity below 1 should become 1")
	}

	q := NewQueue(4)
	q.Push(core.ActionFire)
	q.Push(core.ActionFire)
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d", q.Len())
	}
	if a, ok := q.Pop(); ok || a != core.ActionNone {
		t.Errorf("Pop() after Clear = %v, %v", a, ok)
	}
}
