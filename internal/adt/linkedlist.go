package adt

import (
	"fmt"
	"iter"
	"strings"
)

type node[T comparable] struct {
	value T
	next  *node[T]
}

// LinkedList is a singly linked list with head and tail pointers.
//
// InsertHead and InsertTail are O(1). Delete, Search, InsertAt and
// Access walk from the head and are O(n). tail is nil exactly when
// head is nil; every mutation keeps the two consistent.
//
// The zero value is an empty list.
type LinkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// NewLinkedList creates an empty LinkedList.
func NewLinkedList[T comparable]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// InsertHead adds v at the front of the list.
func (l *LinkedList[T]) InsertHead(v T) {
	n := &node[T]{value: v, next: l.head}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.size++
}

// InsertTail adds v at the end of the list.
func (l *LinkedList[T]) InsertTail(v T) {
	n := &node[T]{value: v}
	if l.tail == nil {
		l.head = n
		l.tail = n
	} else {
		l.tail.next = n
		l.tail = n
	}
	l.size++
}

// InsertAt inserts v so that it ends up at position index.
// Valid positions are [0, Len()]; Len() appends.
func (l *LinkedList[T]) InsertAt(index int, v T) error {
	if index < 0 || index > l.size {
		return &IndexError{Op: "linked list insert", Index: index, Len: l.size + 1}
	}
	switch index {
	case 0:
		l.InsertHead(v)
	case l.size:
		l.InsertTail(v)
	default:
		prev := l.nodeAt(index - 1)
		prev.next = &node[T]{value: v, next: prev.next}
		l.size++
	}
	return nil
}

// Delete removes the first node holding v.
// Returns ErrNotFound if no node matches; the list is left unchanged.
func (l *LinkedList[T]) Delete(v T) error {
	var prev *node[T]
	for cur := l.head; cur != nil; prev, cur = cur, cur.next {
		if cur.value != v {
			continue
		}
		if prev == nil {
			l.head = cur.next
		} else {
			prev.next = cur.next
		}
		if cur == l.tail {
			l.tail = prev // nil when the list became empty
		}
		cur.next = nil
		l.size--
		return nil
	}
	return fmt.Errorf("linked list delete %v: %w", v, ErrNotFound)
}

// Search returns the 0-based index of the first node holding v, or NotFound.
func (l *LinkedList[T]) Search(v T) int {
	i := 0
	for cur := l.head; cur != nil; cur = cur.next {
		if cur.value == v {
			return i
		}
		i++
	}
	return NotFound
}

// Access returns the element at position index.
// Returns an *IndexError if index is outside [0, Len()).
func (l *LinkedList[T]) Access(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, &IndexError{Op: "linked list access", Index: index, Len: l.size}
	}
	return l.nodeAt(index).value, nil
}

// nodeAt walks to position i. The caller guarantees 0 <= i < size.
func (l *LinkedList[T]) nodeAt(i int) *node[T] {
	cur := l.head
	for ; i > 0; i-- {
		cur = cur.next
	}
	return cur
}

// Peek returns the head element.
func (l *LinkedList[T]) Peek() (T, error) {
	if l.head == nil {
		var zero T
		return zero, fmt.Errorf("linked list peek: %w", ErrEmpty)
	}
	return l.head.value, nil
}

// Clear removes every element.
func (l *LinkedList[T]) Clear() {
	l.head = nil
	l.tail = nil
	l.size = 0
}

// Len returns the number of nodes.
func (l *LinkedList[T]) Len() int { return l.size }

// IsEmpty reports whether the list has no nodes.
func (l *LinkedList[T]) IsEmpty() bool { return l.size == 0 }

// All iterates the values from head to tail.
func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Values returns the elements from head to tail.
func (l *LinkedList[T]) Values() []T {
	out := make([]T, 0, l.size)
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}

// Insert is InsertTail.
func (l *LinkedList[T]) Insert(v T) error {
	l.InsertTail(v)
	return nil
}

// String renders the list as "10 -> 20 -> nil".
func (l *LinkedList[T]) String() string {
	if l.head == nil {
		return "empty list"
	}
	var b strings.Builder
	for v := range l.All() {
		fmt.Fprintf(&b, "%v -> ", v)
	}
	b.WriteString("nil")
	return b.String()
}
