// Package clock provides the monotonic time sources used to bound
// benchmark timing windows.
//
// This package offers several implementations of the Clock interface:
//   - Std: time.Since against a fixed origin
//   - Runtime: runtime.nanotime via go:linkname (no time.Time construction)
//   - Manual: advanced explicitly, for deterministic tests
//
// Only differences between two readings are meaningful.
package clock

import "time"

// Clock reads a monotonic instant.
//
// Implementations need not be safe for concurrent use; the harness reads
// its clock from a single goroutine.
type Clock interface {
	// Now returns the time elapsed since an arbitrary fixed origin.
	Now() time.Duration
}

// Since returns the time elapsed on c since start.
func Since(c Clock, start time.Duration) time.Duration {
	return c.Now() - start
}

// Std reads time.Now's monotonic component relative to its creation.
type Std struct {
	origin time.Time
}

// NewStd creates a Std clock anchored at the current instant.
func NewStd() *Std {
	return &Std{origin: time.Now()}
}

// Now returns the time elapsed since the clock was created.
func (s *Std) Now() time.Duration {
	return time.Since(s.origin)
}

// Manual is a Clock that only moves when told to.
// The zero value reads 0.
type Manual struct {
	now time.Duration
}

// NewManual creates a Manual clock reading start.
func NewManual(start time.Duration) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual reading.
func (m *Manual) Now() time.Duration {
	return m.now
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.now += d
}

// Default is the clock the harness uses when none is configured.
func Default() Clock {
	return NewRuntime()
}
