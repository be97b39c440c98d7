package results

// A result returned when executing a single held callable.
//
// This can be used to wait for the outcome of the callable.
type Single[RET any] interface {
	// Wait for, and return the outcome of the callable.
	//
	// The error is the callable's own error, unmodified.
	//
	// This will automatically close the channel; further calls
	// return the same outcome.
	Wait() (RET, error)

	Routine[RET]
}

// A result returned when executing a single held callable.
type result[RET any] struct {
	resultChan chan Result[RET]
	ret        *Result[RET]
}

// Initialize a new result.
func NewSingle[RET any](resultChan chan Result[RET]) Single[RET] {
	return &result[RET]{
		resultChan: resultChan,
	}
}

// Return the channel of the result.
//
//lint:ignore U1000 this is used inside of the pool!
func (r *result[RET]) Channel() chan<- Result[RET] {
	return r.resultChan
}

// A way to read from the channel.
//
// When using read, the channel will not be closed.
func (r *result[RET]) Read() <-chan Result[RET] {
	return r.resultChan
}

// Wait for, and return the outcome of the callable.
func (r *result[RET]) Wait() (RET, error) {
	if r.ret != nil {
		return r.ret.Value, r.ret.Err
	}
	defer r.Close()
	var res = <-r.resultChan
	r.ret = &res
	return res.Value, res.Err
}

// Close the result.
//
// This will be done automatically when calling Wait().
func (r *result[RET]) Close() {
	close(r.resultChan)
}
