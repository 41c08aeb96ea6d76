package adt

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when removing or peeking at an empty structure.
	ErrEmpty = errors.New("adt: structure is empty")

	// ErrFull is returned when inserting into a bounded structure at capacity.
	ErrFull = errors.New("adt: structure is full")

	// ErrNotFound is returned by LinkedList.Delete when no node matches.
	ErrNotFound = errors.New("adt: value not found")

	// ErrIndexOutOfRange is matched by every *IndexError.
	ErrIndexOutOfRange = errors.New("adt: index out of range")
)

// IndexError reports an ordinal position outside the valid range.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("adt: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

// Unwrap lets errors.Is(err, ErrIndexOutOfRange) succeed.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
