package callable_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/Nigel2392/callable"
	"github.com/stretchr/testify/require"
)

func TestCallFunc0(t *testing.T) {
	value, err := callable.CallFunc0(func() (string, error) {
		return "Hello", nil
	})
	require.NoError(t, err)
	require.Equal(t, "Hello", value)
}

func TestCallFunc1(t *testing.T) {
	value, err := callable.CallFunc1(func(x int) (int, error) {
		return x * 2, nil
	}, 21)
	require.NoError(t, err)
	require.Equal(t, 42, value)
}

func TestCallFunc2(t *testing.T) {
	value, err := callable.CallFunc2(func(a, b string) (string, error) {
		return a + b, nil
	}, "Hello, ", "World")
	require.NoError(t, err)
	require.Equal(t, "Hello, World", value)
}

func TestCallFunc5(t *testing.T) {
	value, err := callable.CallFunc5(func(a, b, c, d, e int) (int, error) {
		return a + b + c + d + e, nil
	}, 1, 2, 3, 4, 5)
	require.NoError(t, err)
	require.Equal(t, 15, value)
}

func TestHoldFunc0(t *testing.T) {
	var supplier = callable.OfFunc0(func() (string, error) {
		return "cached", nil
	})

	// Invoking the held callable at a later point still
	// yields the callable's own result.
	value, err := supplier.Call()
	require.NoError(t, err)
	require.Equal(t, "cached", value)

	value, err = supplier.Call()
	require.NoError(t, err)
	require.Equal(t, "cached", value)
}

func TestHoldIsIdentity(t *testing.T) {
	var calls int
	var fn = func(x int) (int, error) {
		calls++
		return x * 2, nil
	}

	var held = callable.OfFunc1(fn)

	// Holding does not invoke the callable.
	require.Equal(t, 0, calls)

	// Invoking through the held reference behaves exactly like
	// calling the callable directly.
	direct, directErr := fn(21)
	viaHeld, heldErr := held.Call(21)
	require.Equal(t, direct, viaHeld)
	require.Equal(t, directErr, heldErr)
	require.Equal(t, 2, calls)
}

func TestCallProc0(t *testing.T) {
	var ran bool
	var err = callable.CallProc0(func() error {
		ran = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, ran)
}

func TestCallProc2(t *testing.T) {
	var joined string
	var err = callable.CallProc2(func(a, b string) error {
		joined = a + b
		return nil
	}, "Hello, ", "World")
	require.NoError(t, err)
	require.Equal(t, "Hello, World", joined)
}

func TestHoldProc0(t *testing.T) {
	var count int
	var held = callable.OfProc0(func() error {
		count++
		return nil
	})

	require.NoError(t, held.Call())
	require.NoError(t, held.Call())
	require.Equal(t, 2, count)
}

// The wrappers must hand the callable's error to the invoker
// reference-identical, never wrapped or translated.
func TestErrPropagatedVerbatim(t *testing.T) {
	var sentinel = errors.New("boom")

	_, err := callable.CallFunc0(func() (int, error) {
		return 0, sentinel
	})
	require.Same(t, sentinel, err)

	_, err = callable.CallFunc1(func(int) (int, error) {
		return 0, sentinel
	}, 1)
	require.Same(t, sentinel, err)

	err = callable.CallProc0(func() error {
		return sentinel
	})
	require.Same(t, sentinel, err)

	err = callable.CallProc3(func(int, int, int) error {
		return sentinel
	}, 1, 2, 3)
	require.Same(t, sentinel, err)
}

type timeoutErr struct {
	op string
}

func (e *timeoutErr) Error() string {
	return fmt.Sprintf("%s timed out", e.op)
}

func TestErrTypePreserved(t *testing.T) {
	var raised = &timeoutErr{op: "dial"}

	_, err := callable.CallFunc2(func(string, int) (string, error) {
		return "", raised
	}, "host", 80)
	require.Same(t, raised, err)

	var typed *timeoutErr
	require.ErrorAs(t, err, &typed)
	require.Equal(t, "dial", typed.op)
}

func TestErrPropagatedThroughHeld(t *testing.T) {
	var sentinel = errors.New("boom")
	var held = callable.OfFunc1(func(int) (int, error) {
		return 0, sentinel
	})

	_, err := held.Call(1)
	require.Same(t, sentinel, err)
}

func TestBindFunc(t *testing.T) {
	var concat = func(a, b string) (string, error) {
		return a + b, nil
	}

	var bound = callable.BindFunc2(concat, "Hello, ", "World")

	value, err := bound.Call()
	require.NoError(t, err)
	require.Equal(t, "Hello, World", value)
}

func TestBindProc(t *testing.T) {
	var sum int
	var add = func(a, b, c int) error {
		sum = a + b + c
		return nil
	}

	var bound = callable.BindProc3(add, 1, 2, 3)

	require.NoError(t, bound.Call())
	require.Equal(t, 6, sum)
}

func TestBindErrPropagated(t *testing.T) {
	var sentinel = errors.New("boom")
	var bound = callable.BindFunc1(func(int) (int, error) {
		return 0, sentinel
	}, 1)

	_, err := bound.Call()
	require.Same(t, sentinel, err)
}
