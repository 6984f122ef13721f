package queue

import (
	"iter"
)

// Deque is a double-ended queue backed by a single slice and a head cursor.
// Values popped from the front leave room that [Deque.PushFront] reuses, so pushing back what was just popped never grows the backing slice.
//
// Note that a Deque is not concurrency safe.
type Deque[T any] struct {
	values []T
	head   int
}

// NewDeque creates a [Deque] holding a copy of the given values, in order.
func NewDeque[T any](vals ...T) *Deque[T] {
	values := make([]T, len(vals))
	copy(values, vals)
	return &Deque[T]{values: values}
}

// Len gets the number of values remaining in the [Deque].
func (q *Deque[T]) Len() int {
	return len(q.values) - q.head
}

// PushFront puts a value at the head of the [Deque], so it's the next one returned by [Deque.PopFront].
func (q *Deque[T]) PushFront(val T) {
	if q.head > 0 {
		q.head--
		q.values[q.head] = val
		return
	}
	q.values = append([]T{val}, q.values...)
}

// PeekFront returns the head value without removing it.
// False will be returned if the Deque is empty.
func (q *Deque[T]) PeekFront() (T, bool) {
	if q.Len() == 0 {
		var mt T
		return mt, false
	}
	return q.values[q.head], true
}

// PopFront removes and returns the head value.
// False will be returned if the Deque is empty.
func (q *Deque[T]) PopFront() (T, bool) {
	val, ok := q.PeekFront()
	if !ok {
		return val, false
	}
	var mt T
	q.values[q.head] = mt
	q.head++
	return val, true
}

// Drain removes every remaining value and returns them in order.
// Nil is returned if the Deque is empty.
func (q *Deque[T]) Drain() []T {
	if q.Len() == 0 {
		return nil
	}
	rest := make([]T, q.Len())
	copy(rest, q.values[q.head:])
	q.values = q.values[:0]
	q.head = 0
	return rest
}

// All consumes the [Deque] from the front, yielding values until it's empty or iteration stops.
// Values pushed to the front during iteration are yielded next.
func (q *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			val, ok := q.PopFront()
			if !ok {
				return
			}
			if !yield(val) {
				return
			}
		}
	}
}
