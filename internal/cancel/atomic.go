package cancel

import "sync/atomic"

// AtomicCanceler uses an atomic.Bool for cancellation signaling.
//
// Each call to Done() performs a single atomic load. Tests use it to
// stop a sweep at an exact point.
type AtomicCanceler struct {
	done atomic.Bool
}

// NewAtomic creates a new AtomicCanceler.
func NewAtomic() *AtomicCanceler {
	return &AtomicCanceler{}
}

// Done returns true if cancellation has been triggered.
func (a *AtomicCanceler) Done() bool {
	return a.done.Load()
}

// Cancel triggers cancellation.
//
// Safe to call multiple times; subsequent calls are no-ops.
func (a *AtomicCanceler) Cancel() {
	a.done.Store(true)
}

// Reset clears the cancellation flag so the canceler can drive
// another sweep. Not safe to call concurrently with Done() or Cancel().
func (a *AtomicCanceler) Reset() {
	a.done.Store(false)
}
