// Package events holds the per-tick message list used between simulation
// steps.
package events

import "github.com/Faultbox/paperman/internal/game/entity"

// TurningAnimationFinished reports that a character's one-shot turn clip
// ended. State is the animation state that was playing.
type TurningAnimationFinished struct {
	Handle entity.Handle
	State  entity.AnimationState
}

// Queue is a FIFO message list that lives for one tick.
type Queue[T any] struct {
	items []T
}

// Push appends a message.
func (q *Queue[T]) Push(msg T) {
	if q == nil {
		return
	}
	q.items = append(q.items, msg)
}

// Drain returns all messages in push order and empties the queue.
func (q *Queue[T]) Drain() []T {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending messages.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Clear drops pending messages.
func (q *Queue[T]) Clear() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
