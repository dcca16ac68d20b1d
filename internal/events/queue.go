// Package events provides the unbounded multi-producer queue that carries
// state machine events between background tasks and the frame loop.
package events

import "sync"

// Sender is the producer side of a Queue. It is safe to share between
// goroutines. Send never blocks.
type Sender[T any] interface {
	// Send enqueues v. It reports false when the queue has been closed;
	// callers treat that as a dropped delivery, not an error.
	Send(v T) bool
}

// Queue is an unbounded FIFO with any number of senders and a single
// receiver. Closing it drops pending items and makes further sends fail.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
}

// NewQueue creates an open, empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Send enqueues v without blocking.
func (q *Queue[T]) Send(v T) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}
	q.items = append(q.items, v)
	return true
}

// TryRecv dequeues the oldest item, if any.
func (q *Queue[T]) TryRecv() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if len(q.items) == 0 {
		return zero, false
	}
	v := q.items[0]
	q.items[0] = zero
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil
	}
	return v, true
}

// Drain dequeues every item currently available.
func (q *Queue[T]) Drain() []T {
	q.mu.Lock()
	defer q.mu.Unlock()

	items := q.items
	q.items = nil
	return items
}

// Len returns the number of pending items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close marks the queue closed and discards pending items. Close is idempotent.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.closed = true
	q.items = nil
}

// Closed reports whether Close has been called.
func (q *Queue[T]) Closed() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed
}

// Discard is a Sender that drops everything. Useful where no receiver exists.
type Discard[T any] struct{}

// Send drops v and reports false.
func (Discard[T]) Send(T) bool { return false }
