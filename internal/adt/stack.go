package adt

import (
	"fmt"
	"strings"
)

// Stack is a LIFO stack backed by a slice.
//
// The top of the stack is the end of the slice, so Push and Pop are
// amortized O(1). The zero value is an empty, unbounded stack.
type Stack[T comparable] struct {
	items []T
	max   int // 0 means unbounded
}

// NewStack creates an empty, unbounded Stack.
func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{}
}

// NewStackWithCapacity creates an empty, unbounded Stack with room for
// capacity elements before the backing slice has to grow.
func NewStackWithCapacity[T comparable](capacity int) *Stack[T] {
	return &Stack[T]{items: make([]T, 0, max(capacity, 0))}
}

// NewBoundedStack creates a Stack that holds at most max elements.
// A max below 1 yields an unbounded stack.
func NewBoundedStack[T comparable](max int) *Stack[T] {
	if max < 0 {
		max = 0
	}
	return &Stack[T]{items: make([]T, 0, max), max: max}
}

// Push adds v to the top of the stack.
// Returns ErrFull if the stack is bounded and at capacity.
func (s *Stack[T]) Push(v T) error {
	if s.max > 0 && len(s.items) >= s.max {
		return fmt.Errorf("stack push: %w (max %d)", ErrFull, s.max)
	}
	s.items = append(s.items, v)
	return nil
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, fmt.Errorf("stack pop: %w", ErrEmpty)
	}
	last := len(s.items) - 1
	v := s.items[last]
	var zero T
	s.items[last] = zero // release the reference for the GC
	s.items = s.items[:last]
	return v, nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if len(s.items) == 0 {
		var zero T
		return zero, fmt.Errorf("stack peek: %w", ErrEmpty)
	}
	return s.items[len(s.items)-1], nil
}

// Search scans from the top and returns the 1-based distance of v from
// the top (the top element is at distance 1), or NotFound.
func (s *Stack[T]) Search(v T) int {
	for i := len(s.items) - 1; i >= 0; i-- {
		if s.items[i] == v {
			return len(s.items) - i
		}
	}
	return NotFound
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// IsFull reports whether a bounded stack is at capacity.
// Always false for an unbounded stack.
func (s *Stack[T]) IsFull() bool { return s.max > 0 && len(s.items) >= s.max }

// Cap returns the number of elements the stack holds before it has to grow.
func (s *Stack[T]) Cap() int { return cap(s.items) }

// Values returns the elements top first, i.e. in Pop order.
func (s *Stack[T]) Values() []T {
	out := make([]T, len(s.items))
	for i, v := range s.items {
		out[len(s.items)-1-i] = v
	}
	return out
}

// Insert is Push.
func (s *Stack[T]) Insert(v T) error { return s.Push(v) }

// Remove is Pop.
func (s *Stack[T]) Remove() (T, error) { return s.Pop() }

// String renders the stack top first, e.g. "top [40 30 20] bottom".
func (s *Stack[T]) String() string {
	if len(s.items) == 0 {
		return "empty stack"
	}
	parts := make([]string, 0, len(s.items))
	for _, v := range s.Values() {
		parts = append(parts, fmt.Sprint(v))
	}
	return "top [" + strings.Join(parts, " ") + "] bottom"
}
