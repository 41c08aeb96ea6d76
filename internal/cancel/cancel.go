// Package cancel provides the stop signal a benchmark sweep polls
// between measurements.
//
// This package offers three implementations of the Canceler interface:
//   - ContextCanceler: wraps context.Context (e.g. signal.NotifyContext)
//   - AtomicCanceler: an atomic.Bool, cheap to poll and easy to trip in tests
//   - Never: never fires
//
// A sweep checks Done() only outside timing windows, so a cancellation
// never truncates a sample; it stops the sweep before the next
// measurement and leaves the results gathered so far intact.
package cancel

// Canceler provides cancellation signaling to a sweep.
//
// Implementations must be safe for concurrent use:
//   - The sweep goroutine calls Done()
//   - Cancel() may be called from another goroutine (a signal handler)
type Canceler interface {
	// Done returns true if cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation. Safe to call multiple times.
	Cancel()
}

// Never is a Canceler that never fires. Cancel is a no-op.
type Never struct{}

// Done always returns false.
func (Never) Done() bool { return false }

// Cancel does nothing.
func (Never) Cancel() {}
