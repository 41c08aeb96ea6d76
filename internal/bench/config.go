// Package bench is the timing harness behind the growth analysis.
//
// For every registered Workload and input size the Harness builds a fresh,
// pre-populated structure, then times only the operation under test:
//
//	for each iteration:
//	    op := workload.Setup(size)   // untimed, O(size)
//	    [runtime.GC()]               // untimed, optional
//	    start := clock.Now()
//	    op()                         // the only code inside the window
//	    sample := clock.Now() - start
//
// Keeping setup out of the window is what makes ratios between sizes
// meaningful: a window that included the O(size) pre-population would
// report O(n) for every operation.
//
// A failing iteration (error or panic) aborts that measurement only. The
// failure is recorded and the sweep continues with the remaining sizes and
// workloads, so a report is always available, possibly partial.
//
// A Harness is not safe for concurrent use. The design assumes a quiescent
// process while a sweep runs.
package bench

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidConfig indicates an invalid harness configuration.
	ErrInvalidConfig = errors.New("bench: invalid configuration")

	// ErrUnknownWorkload indicates a (structure, operation) with no workload.
	ErrUnknownWorkload = errors.New("bench: unknown workload")

	// ErrCanceled indicates the sweep stopped before visiting every workload.
	ErrCanceled = errors.New("bench: sweep canceled")

	// ErrPanic wraps a panic raised by a workload.
	ErrPanic = errors.New("bench: workload panicked")
)

// DefaultSizes are the input sizes swept when none are given.
var DefaultSizes = []int{100, 500, 1000, 5000, 10000}

// Config holds harness configuration.
type Config struct {
	// Iterations is the number of timed repetitions per (workload, size).
	// Default: 10
	Iterations int

	// Warmup is the number of untimed repetitions before sampling starts.
	// Default: 1
	Warmup int

	// Sizes are the input sizes RunAll sweeps when called without sizes.
	// Default: DefaultSizes
	Sizes []int

	// CollectGarbage forces runtime.GC() before every timed window so a
	// collection triggered by setup garbage does not land inside it.
	// Default: true
	CollectGarbage bool
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() Config {
	return Config{
		Iterations:     10,
		Warmup:         1,
		Sizes:          slices.Clone(DefaultSizes),
		CollectGarbage: true,
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be at least 1, got %d", ErrInvalidConfig, c.Iterations)
	}
	if c.Warmup < 0 {
		return fmt.Errorf("%w: warmup must be non-negative, got %d", ErrInvalidConfig, c.Warmup)
	}
	return validateSizes(c.Sizes)
}

func validateSizes(sizes []int) error {
	if len(sizes) == 0 {
		return fmt.Errorf("%w: at least one input size is required", ErrInvalidConfig)
	}
	for _, n := range sizes {
		if n < 1 {
			return fmt.Errorf("%w: input sizes must be positive, got %d", ErrInvalidConfig, n)
		}
	}
	return nil
}
