package cancel

import "context"

// ErrStopped is the cause recorded when Cancel is called directly.
var ErrStopped = context.Canceled

// ContextCanceler fires when its parent context ends or Cancel is called.
// The CLI builds one from signal.NotifyContext so Ctrl-C stops a sweep
// after the measurement in progress.
type ContextCanceler struct {
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// NewContext derives a ContextCanceler from parent.
func NewContext(parent context.Context) *ContextCanceler {
	ctx, cancel := context.WithCancelCause(parent)
	return &ContextCanceler{ctx: ctx, cancel: cancel}
}

// Done polls ctx.Done() without blocking.
func (c *ContextCanceler) Done() bool {
	select {
	case <-c.ctx.Done():
		return true
	default:
		return false
	}
}

// Cancel stops the canceler with ErrStopped as the cause.
func (c *ContextCanceler) Cancel() {
	c.cancel(ErrStopped)
}

// CancelWith stops the canceler, recording cause. The first cause wins.
func (c *ContextCanceler) CancelWith(cause error) {
	c.cancel(cause)
}

// Cause reports why the canceler fired, or nil while it has not.
// A parent ended by a signal reports context.Canceled.
func (c *ContextCanceler) Cause() error {
	return context.Cause(c.ctx)
}

// Context returns the derived context.
func (c *ContextCanceler) Context() context.Context {
	return c.ctx
}
