// Package callable provides uniform wrappers around fallible callables.
//
// A callable takes a fixed amount of arguments, optionally returns a value,
// and may fail with an error. The package gives every such shape a named
// type (Func0 through Func5 for value-returning callables, Proc0 through
// Proc5 for void ones) together with two operations:
//
//   - OfFuncN / OfProcN hold a callable for later invocation.
//     Holding is the identity: the callable is returned unchanged,
//     only its type is fixed.
//
//   - CallFuncN / CallProcN invoke a callable immediately with
//     the supplied arguments.
//
// The wrappers are fully transparent: any error the callable returns is
// handed to the invoker unmodified. There is no wrapping, no logging,
// no recovery and no retry anywhere in this package.
//
//	var supplier = callable.OfFunc0(func() (string, error) {
//		return "cached", nil
//	})
//
//	// Invoke at any later point.
//	var result, err = supplier.Call()
//
// The BindFuncN / BindProcN functions bind arguments at hold time,
// producing a zero-arity held callable for use with the pool and
// accumulator subpackages.
//
// The per-arity declarations live in funcs_gen.go and are emitted by
// cmd/callable-gen.
package callable

//go:generate go run ./cmd/callable-gen --arity 5 --package callable --out funcs_gen.go
