package results

// The outcome of invoking a single held callable.
//
// Err carries the exact error value the callable returned,
// without any wrapping or translation.
type Result[RET any] struct {
	Value RET
	Err   error
}

type Routine[RET any] interface {
	// Only used internally to send the outcome into the channel when done.
	Channel() chan<- Result[RET]
	// A way to read from the channel.
	//
	// When using read, the channel will not be closed.
	Read() <-chan Result[RET]
	// A way to close the channel used to send the outcome.
	Close()
}
