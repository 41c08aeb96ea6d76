package cancel_test

import (
	"context"
	"errors"
	"testing"

	"github.com/randomizedcoder/adt-complexity-bench/internal/cancel"
)

func TestContextCanceler(t *testing.T) {
	c := cancel.NewContext(context.Background())

	if c.Done() {
		t.Error("expected Done() = false before Cancel()")
	}

	c.Cancel()

	if !c.Done() {
		t.Error("expected Done() = true after Cancel()")
	}

	// Verify idempotent
	c.Cancel()
	if !c.Done() {
		t.Error("expected Done() = true after second Cancel()")
	}
	if c.Context().Err() == nil {
		t.Error("expected Context().Err() != nil after Cancel()")
	}
}

func TestContextCanceler_Parent(t *testing.T) {
	parent, stop := context.WithCancel(context.Background())
	c := cancel.NewContext(parent)

	if c.Done() {
		t.Error("expected Done() = false while parent is live")
	}

	stop()

	if !c.Done() {
		t.Error("expected Done() = true after parent is cancelled")
	}
}

func TestAtomicCanceler_Reset(t *testing.T) {
	c := cancel.NewAtomic()

	c.Cancel()
	if !c.Done() {
		t.Error("expected Done() = true after Cancel()")
	}

	c.Reset()
	if c.Done() {
		t.Error("expected Done() = false after Reset()")
	}
}

func TestNever(t *testing.T) {
	var c cancel.Canceler = cancel.Never{}
	c.Cancel()
	if c.Done() {
		t.Error("expected Never.Done() = false even after Cancel()")
	}
}

// Test that the firing implementations satisfy the interface
func TestCancelerInterface(t *testing.T) {
	testCases := []struct {
		name string
		c    cancel.Canceler
	}{
		{"Context", cancel.NewContext(context.Background())},
		{"Atomic", cancel.NewAtomic()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.c.Done() {
				t.Error("expected Done() = false initially")
			}

			tc.c.Cancel()

			if !tc.c.Done() {
				t.Error("expected Done() = true after Cancel()")
			}
		})
	}
}

func TestContextCanceler_Cause(t *testing.T) {
	c := cancel.NewContext(context.Background())
	if c.Cause() != nil {
		t.Errorf("expected nil cause before cancel, got %v", c.Cause())
	}

	deadline := errors.New("deadline reached")
	c.CancelWith(deadline)
	c.Cancel()

	if !errors.Is(c.Cause(), deadline) {
		t.Errorf("expected first cause %v, got %v", deadline, c.Cause())
	}
}

func TestContextCanceler_CancelCause(t *testing.T) {
	c := cancel.NewContext(context.Background())
	c.Cancel()
	if !errors.Is(c.Cause(), cancel.ErrStopped) {
		t.Errorf("expected ErrStopped, got %v", c.Cause())
	}
}
