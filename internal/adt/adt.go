// Package adt provides the textbook abstract data types measured by the
// benchmark harness.
//
// This package offers three implementations:
//   - Stack: LIFO, backed by a growable slice
//   - Queue: FIFO, backed by a growable power-of-two ring buffer
//   - LinkedList: singly linked with head and tail pointers
//
// # Failure policy
//
// Removing or peeking at an empty Stack or Queue returns ErrEmpty.
// LinkedList.Access outside [0, Len()) returns an *IndexError, which
// matches ErrIndexOutOfRange. LinkedList.Delete of a value that is not
// present returns ErrNotFound. Search never fails: a miss returns NotFound.
//
// None of the types are safe for concurrent use. Each instance is owned
// by exactly one caller.
package adt

// NotFound is returned by Search when the value is not present.
const NotFound = -1

// Collection is the capability set shared by every structure.
type Collection[T comparable] interface {
	// Insert adds v using the structure's own discipline
	// (top of stack, rear of queue, tail of list).
	Insert(v T) error

	// Search returns the structure-specific position of v, or NotFound.
	// It does not mutate the structure.
	Search(v T) int

	// Len returns the number of elements. O(1).
	Len() int

	// IsEmpty reports whether Len() == 0. O(1).
	IsEmpty() bool

	// Values returns a copy of the elements in removal order for
	// stacks and queues, and in list order for linked lists.
	Values() []T
}

// Buffer is a Collection with a fixed removal end.
//
// Stack and Queue implement Buffer: Remove and Peek operate on the
// element the discipline would hand out next.
type Buffer[T comparable] interface {
	Collection[T]

	// Remove removes and returns the next element.
	// Returns ErrEmpty if there is none.
	Remove() (T, error)

	// Peek returns the next element without removing it.
	// Returns ErrEmpty if there is none.
	Peek() (T, error)
}
