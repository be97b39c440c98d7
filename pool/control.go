package pool

// The channel-based implementation of the Control interface.
//
// Cancel closes both channels, so a canceled pool always
// reads as done.
type control struct {
	cancel chan struct{}
	done   chan struct{}
}

func newControl() *control {
	return &control{
		cancel: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Cancel the execution of the pool.
//
// Calling Cancel more than once is a no-op.
func (c *control) Cancel() {
	select {
	case <-c.cancel:
	default:
		close(c.cancel)
	}
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

// Check if the pool has fully executed or has been canceled.
func (c *control) Done() <-chan struct{} {
	select {
	case <-c.cancel:
		return c.cancel
	default:
		return c.done
	}
}
