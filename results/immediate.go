package results

type Immediate[RET any] interface {
	// Does not actually wait in a goroutine.
	// This can be used for testing, or when using no goroutines.
	//
	// A held callable set with NewImmediateFunc is invoked on every Wait.
	Wait() (RET, error)

	// No-op.
	// This is to differentiate between an Immediate and a Single with type casting.
	Immediate()

	// Close() will be a no-op.
	// Channel() chan<- Result[RET] will return nil.
	// Read() <-chan Result[RET] will return nil.
	Routine[RET] // To conform to the Routine interface for use in pools.
}

func IsImmediate[RET any](r Routine[RET]) bool {
	_, ok := r.(Immediate[RET])
	return ok
}

type immediate[RET any] struct {
	result Result[RET]
	fn     func() (RET, error)
}

// NewImmediate wraps an already computed outcome.
func NewImmediate[RET any](value RET, err error) Immediate[RET] {
	return &immediate[RET]{
		result: Result[RET]{Value: value, Err: err},
	}
}

// NewImmediateFunc holds a callable which is invoked synchronously on Wait.
func NewImmediateFunc[RET any](fn func() (RET, error)) Immediate[RET] {
	return &immediate[RET]{
		fn: fn,
	}
}

func (i *immediate[RET]) Close() {}

func (i *immediate[RET]) Read() <-chan Result[RET] { return nil }

func (i *immediate[RET]) Channel() chan<- Result[RET] { return nil }

func (i *immediate[RET]) Immediate() {}

func (i *immediate[RET]) Wait() (RET, error) {
	if i.fn != nil {
		return i.fn()
	}
	return i.result.Value, i.result.Err
}
