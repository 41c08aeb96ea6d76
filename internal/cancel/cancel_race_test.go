package cancel_test

import (
	"context"
	"sync"
	"testing"

	"github.com/randomizedcoder/adt-complexity-bench/internal/cancel"
)

// pollUntilDone mimics a sweep: it polls Done() between units of work
// and returns how many units ran.
func pollUntilDone(c cancel.Canceler, limit int) int {
	n := 0
	for n < limit && !c.Done() {
		n++
	}
	return n
}

// testCancelFromOtherGoroutine cancels from a second goroutine, the way
// the CLI signal handler does. Run with: go test -race ./internal/cancel
func testCancelFromOtherGoroutine(t *testing.T, c cancel.Canceler, name string) {
	t.Helper()
	var wg sync.WaitGroup

	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pollUntilDone(c, 10000)
		}()
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		c.Cancel()
	}()

	wg.Wait()

	if !c.Done() {
		t.Errorf("%s: expected Done() = true after Cancel()", name)
	}
	if n := pollUntilDone(c, 10000); n != 0 {
		t.Errorf("%s: expected no work after cancellation, ran %d units", name, n)
	}
}

func TestContextCanceler_Race(t *testing.T) {
	testCancelFromOtherGoroutine(t, cancel.NewContext(context.Background()), "Context")
}

func TestAtomicCanceler_Race(t *testing.T) {
	testCancelFromOtherGoroutine(t, cancel.NewAtomic(), "Atomic")
}
