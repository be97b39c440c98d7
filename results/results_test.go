package results_test

import (
	"errors"
	"testing"

	"github.com/Nigel2392/callable/results"
	"github.com/stretchr/testify/require"
)

func TestSingleWait(t *testing.T) {
	var ch = make(chan results.Result[string], 1)
	var single = results.NewSingle(ch)

	single.Channel() <- results.Result[string]{Value: "Hello"}

	value, err := single.Wait()
	require.NoError(t, err)
	require.Equal(t, "Hello", value)
}

func TestSingleWaitIdempotent(t *testing.T) {
	var ch = make(chan results.Result[int], 1)
	var single = results.NewSingle(ch)

	ch <- results.Result[int]{Value: 42}

	value, err := single.Wait()
	require.NoError(t, err)
	require.Equal(t, 42, value)

	// A second Wait returns the same outcome instead of
	// closing the channel again.
	value, err = single.Wait()
	require.NoError(t, err)
	require.Equal(t, 42, value)
}

func TestSingleWaitErr(t *testing.T) {
	var sentinel = errors.New("boom")
	var ch = make(chan results.Result[int], 1)
	var single = results.NewSingle(ch)

	ch <- results.Result[int]{Err: sentinel}

	_, err := single.Wait()
	require.Same(t, sentinel, err)
}

func TestMultipleWait(t *testing.T) {
	var ch = make(chan results.Result[int], 3)
	var multiple = results.NewMultiple(ch, 3)
	require.Equal(t, 3, multiple.Len())

	for i := 1; i <= 3; i++ {
		ch <- results.Result[int]{Value: i}
	}

	var outcomes = multiple.Wait()
	require.Len(t, outcomes, 3)

	// Wait is idempotent after the channel is closed.
	require.Equal(t, outcomes, multiple.Wait())
}

func TestMultipleValues(t *testing.T) {
	var sentinel = errors.New("boom")
	var ch = make(chan results.Result[int], 3)
	var multiple = results.NewMultiple(ch, 3)

	ch <- results.Result[int]{Value: 1}
	ch <- results.Result[int]{Err: sentinel}
	ch <- results.Result[int]{Value: 3}

	values, err := multiple.Values()
	require.ErrorIs(t, err, sentinel)
	require.ElementsMatch(t, []int{1, 3}, values)
}

func TestImmediate(t *testing.T) {
	var imm = results.NewImmediate("cached", nil)

	value, err := imm.Wait()
	require.NoError(t, err)
	require.Equal(t, "cached", value)

	require.Nil(t, imm.Read())
	require.Nil(t, imm.Channel())
	require.True(t, results.IsImmediate[string](imm))
}

func TestImmediateFunc(t *testing.T) {
	var calls int
	var imm = results.NewImmediateFunc(func() (int, error) {
		calls++
		return 42, nil
	})

	// Holding the callable does not invoke it.
	require.Equal(t, 0, calls)

	value, err := imm.Wait()
	require.NoError(t, err)
	require.Equal(t, 42, value)
	require.Equal(t, 1, calls)
}

func TestIsImmediate(t *testing.T) {
	var ch = make(chan results.Result[int], 1)
	require.False(t, results.IsImmediate[int](results.NewSingle(ch)))
}
