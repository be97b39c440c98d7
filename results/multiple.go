package results

import "errors"

type Multiple[RET any] interface {
	// Wait for, and return the outcomes of the executed callables.
	//
	// Each outcome carries the callable's own error, unmodified.
	//
	// This will automatically close the channel.
	Wait() []Result[RET]

	// Wait for the outcomes and split them into the returned values
	// and the joined errors of every failed callable.
	//
	// The error is nil when every callable succeeded.
	Values() ([]RET, error)

	// Length of the batch.
	Len() int

	Routine[RET]
}

// The outcomes collected when executing a batch of held callables.
//
// This can be used to wait for the outcomes of the callables.
type results[RET any] struct {
	results chan Result[RET]
	len     int
	ret     []Result[RET]
}

// Initialize a new set of results.
func NewMultiple[RET any](r chan Result[RET], len int) Multiple[RET] {
	return &results[RET]{
		results: r,
		len:     len,
	}
}

// Length of the batch of results.
func (r *results[RET]) Len() int {
	return r.len
}

// Return the channel of the results.
//
// This is used internally to pass the outcomes to the pool.
//
//lint:ignore U1000 this is used inside of the pool!
func (r *results[RET]) Channel() chan<- Result[RET] {
	return r.results
}

// A way to read from the channel.
//
// When using read, the channel will not be closed.
func (r *results[RET]) Read() <-chan Result[RET] {
	return r.results
}

// Close the results.
//
// This is used to close the channel of the results.
//
// This will be done automatically when calling Wait().
func (r *results[RET]) Close() {
	close(r.results)
}

// Wait for, and return the outcomes of the executed callables.
func (r *results[RET]) Wait() []Result[RET] {
	if r.ret != nil {
		return r.ret
	}
	defer r.Close()
	var outcomes = make([]Result[RET], 0, r.len)
	for outcome := range r.results {
		outcomes = append(outcomes, outcome)
		if len(outcomes) == r.len {
			break
		}
	}
	r.ret = outcomes
	return outcomes
}

// Wait for the outcomes and split them into values and joined errors.
func (r *results[RET]) Values() ([]RET, error) {
	var (
		outcomes = r.Wait()
		values   = make([]RET, 0, len(outcomes))
		errs     []error
	)
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			errs = append(errs, outcome.Err)
			continue
		}
		values = append(values, outcome.Value)
	}
	return values, errors.Join(errs...)
}
