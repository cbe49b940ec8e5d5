package events

import (
	"testing"

	"github.com/Faultbox/paperman/internal/game/entity"
)

func TestQueue(t *testing.T) {
	var q Queue[TurningAnimationFinished]

	if got := q.Drain(); got != nil {
		t.Errorf("Drain() on empty queue = %v, want nil", got)
	}

	q.Push(TurningAnimationFinished{Handle: 1, State: entity.AnimTurning})
	q.Push(TurningAnimationFinished{Handle: 2, State: entity.AnimTurning})
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}

	got := q.Drain()
	if len(got) != 2 || got[0].Handle != 1 || got[1].Handle != 2 {
		t.Errorf("Drain() = %v, want handles [1 2]", got)
	}
	if q.Len() != 0 {
		t.Errorf("Len() after Drain = %d, want 0", q.Len())
	}

	q.Push(TurningAnimationFinished{Handle: 3})
	q.Clear()
	if q.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", q.Len())
	}
}

func TestNilQueue(t *testing.T) {
	var q *Queue[int]
	q.Push(1)
	q.Clear()
	if q.Drain() != nil || q.Len() != 0 {
		t.Error("nil queue is not empty")
	}
}
