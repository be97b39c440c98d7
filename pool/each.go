package pool

import (
	"golang.org/x/sync/errgroup"

	"github.com/Nigel2392/callable"
)

// Each invokes the given procedures concurrently, running at most
// limit of them at once, and waits for all of them to finish.
//
// A limit of 0 or less means no limit. The first error returned by
// any procedure is returned, unmodified.
func Each(limit int, fns ...callable.Proc0) error {
	var grp = new(errgroup.Group)
	if limit > 0 {
		grp.SetLimit(limit)
	}
	for _, fn := range fns {
		grp.Go(fn.Call)
	}
	return grp.Wait()
}

// Collect invokes the given callables concurrently, running at most
// limit of them at once, and returns their values in input order.
//
// A limit of 0 or less means no limit. The first error returned by
// any callable is returned, unmodified; the slot of a failed callable
// is left at the zero value.
func Collect[RET any](limit int, fns ...callable.Func0[RET]) ([]RET, error) {
	var grp = new(errgroup.Group)
	if limit > 0 {
		grp.SetLimit(limit)
	}
	var values = make([]RET, len(fns))
	for i, fn := range fns {
		i, fn := i, fn
		grp.Go(func() error {
			var value, err = fn.Call()
			if err != nil {
				return err
			}
			values[i] = value
			return nil
		})
	}
	return values, grp.Wait()
}
