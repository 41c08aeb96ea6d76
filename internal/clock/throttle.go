package clock

import "time"

// Throttle reports at most once per interval, checking the clock only
// every N calls.
//
// The harness uses it to rate-limit progress logging during long sweeps
// without reading the clock on every measurement.
//
// Example: With every=10 and interval=time.Second, the clock is read
// once per 10 calls to Ready, and Ready returns true if a second has
// passed since the last true.
type Throttle struct {
	clock    Clock
	interval time.Duration
	every    int
	count    int
	last     time.Duration
}

// NewThrottle creates a Throttle on c.
//
// Parameters:
//   - interval: minimum wall time between two true results
//   - every: read the clock only every N calls to Ready()
func NewThrottle(c Clock, interval time.Duration, every int) *Throttle {
	if every < 1 {
		every = 1
	}
	return &Throttle{
		clock:    c,
		interval: interval,
		every:    every,
		last:     c.Now(),
	}
}

// Ready returns true if the interval has elapsed since the last true.
//
// The clock is only read every N calls (as specified by 'every').
// On other calls, this returns false immediately.
func (t *Throttle) Ready() bool {
	t.count++
	if t.count%t.every != 0 {
		return false
	}

	now := t.clock.Now()
	if now-t.last >= t.interval {
		t.last = now
		return true
	}
	return false
}

// Reset restarts the interval from now.
func (t *Throttle) Reset() {
	t.count = 0
	t.last = t.clock.Now()
}
