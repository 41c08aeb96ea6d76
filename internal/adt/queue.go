package adt

import (
	"fmt"
	"strings"
)

// minQueueSize is the initial ring size of an unbounded Queue.
const minQueueSize = 8

// Queue is a FIFO queue backed by a growable ring buffer.
//
// The buffer length is always a power of two so positions wrap with a
// mask instead of a modulo. head and tail are free-running counters:
// tail-head is the number of queued elements.
//
// Enqueue is amortized O(1) (the ring doubles when full); Dequeue and
// Peek are O(1). The zero value is an empty, unbounded queue.
type Queue[T comparable] struct {
	buf  []T
	mask uint64
	head uint64 // next element to dequeue
	tail uint64 // next free slot
	max  int    // 0 means unbounded
}

// NewQueue creates an empty, unbounded Queue.
func NewQueue[T comparable]() *Queue[T] {
	return &Queue[T]{}
}

// NewQueueWithCapacity creates an empty, unbounded Queue whose ring holds
// at least capacity elements before it has to grow.
func NewQueueWithCapacity[T comparable](capacity int) *Queue[T] {
	q := &Queue[T]{}
	if capacity > 0 {
		q.resize(roundPow2(capacity))
	}
	return q
}

// NewBoundedQueue creates a Queue that holds at most max elements.
// A max below 1 yields an unbounded queue.
func NewBoundedQueue[T comparable](max int) *Queue[T] {
	if max < 0 {
		max = 0
	}
	q := &Queue[T]{max: max}
	if max > 0 {
		q.resize(roundPow2(max))
	}
	return q
}

// roundPow2 rounds n up to the next power of two, minimum minQueueSize.
func roundPow2(n int) int {
	size := minQueueSize
	for size < n {
		size <<= 1
	}
	return size
}

// resize moves the queued elements to a new ring of the given size.
func (q *Queue[T]) resize(size int) {
	buf := make([]T, size)
	n := q.tail - q.head
	for i := uint64(0); i < n; i++ {
		buf[i] = q.buf[(q.head+i)&q.mask]
	}
	q.buf = buf
	q.mask = uint64(size - 1)
	q.head = 0
	q.tail = n
}

// Enqueue adds v to the rear of the queue.
// Returns ErrFull if the queue is bounded and at capacity.
func (q *Queue[T]) Enqueue(v T) error {
	n := q.tail - q.head
	if q.max > 0 && n >= uint64(q.max) {
		return fmt.Errorf("queue enqueue: %w (max %d)", ErrFull, q.max)
	}
	if n >= uint64(len(q.buf)) {
		q.resize(roundPow2(2 * len(q.buf)))
	}
	q.buf[q.tail&q.mask] = v
	q.tail++
	return nil
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (T, error) {
	var zero T
	if q.tail == q.head {
		return zero, fmt.Errorf("queue dequeue: %w", ErrEmpty)
	}
	i := q.head & q.mask
	v := q.buf[i]
	q.buf[i] = zero
	q.head++
	return v, nil
}

// Peek returns the front element without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if q.tail == q.head {
		var zero T
		return zero, fmt.Errorf("queue peek: %w", ErrEmpty)
	}
	return q.buf[q.head&q.mask], nil
}

// Search scans front to rear and returns the 0-based position of v
// from the front, or NotFound.
func (q *Queue[T]) Search(v T) int {
	n := q.tail - q.head
	for i := uint64(0); i < n; i++ {
		if q.buf[(q.head+i)&q.mask] == v {
			return int(i)
		}
	}
	return NotFound
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int { return int(q.tail - q.head) }

// IsEmpty reports whether the queue has no elements.
func (q *Queue[T]) IsEmpty() bool { return q.tail == q.head }

// IsFull reports whether a bounded queue is at capacity.
func (q *Queue[T]) IsFull() bool { return q.max > 0 && q.Len() >= q.max }

// Cap returns the current ring size.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// Values returns the elements front first, i.e. in Dequeue order.
func (q *Queue[T]) Values() []T {
	n := q.tail - q.head
	out := make([]T, n)
	for i := uint64(0); i < n; i++ {
		out[i] = q.buf[(q.head+i)&q.mask]
	}
	return out
}

// Insert is Enqueue.
func (q *Queue[T]) Insert(v T) error { return q.Enqueue(v) }

// Remove is Dequeue.
func (q *Queue[T]) Remove() (T, error) { return q.Dequeue() }

// String renders the queue front first, e.g. "front [A B C] rear".
func (q *Queue[T]) String() string {
	if q.IsEmpty() {
		return "empty queue"
	}
	parts := make([]string, 0, q.Len())
	for _, v := range q.Values() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "front [" + strings.Join(parts, " ") + "] rear"
}
