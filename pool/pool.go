package pool

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/Nigel2392/callable"
	"github.com/Nigel2392/callable/results"
)

// The size type used inside the Pool interface.
//
// This is a uint to make sure the size is always positive,
// as it might be used in channels and slices.
type Size uint32

// Maximum buffer size for the queue of executing held callables.
//
// This is to prevent the pool from using too much memory.
//
// Feel free to edit this variable.
var MaxSafeBuffer Size = 16384

// Maximum amount of workers for the pool of executing held callables.
//
// This is to prevent running too many goroutines at once.
//
// Feel free to edit this variable.
var MaxSafeWorkers Size = getMaxWorkers(512) // 512 * logical cpu's

// A control is used to control the execution of the pool.
// It can be used to cancel the execution of the pool.
//
// It can also be used to check if the pool has fully executed.
type Control interface {
	// Cancel the execution of the pool.
	//
	// All held callables still in the queue will be canceled.
	//
	// Already running callables will be run to completion.
	Cancel()

	// Check if the pool has fully executed or has been canceled.
	//
	// Done does not fire until every worker has finished the
	// callable it is currently executing.
	Done() <-chan struct{}
}

// A pool of held callables.
//
// The pool executes the callables it holds and delivers every
// outcome, including the callable's verbatim error, as a
// results.Result through the results.Multiple interface.
type Pool[RET any] interface {
	// Execute the held callables, and return the
	// results.Multiple[RET] containing a channel for the outcomes.
	//
	// The amount of callables executed at once is determined by the amount of workers.
	Run(workers, chanBufferSize Size) (results.Multiple[RET], Control)

	// Add a callable to the pool.
	Add(fn func() (RET, error))

	// Add many callables to the pool.
	AddMany(fns []func() (RET, error))

	// Add held callables to the pool.
	//
	// This is a shortcut for AddMany.
	AddFuncs(fns ...callable.Func0[RET])
}

// Our implementation of the Pool interface.
type poolRunner[RET any] struct {
	// If the pool is unsafe, it will disable the check for
	// the maximum amount of workers and buffer size.
	Unsafe bool
	funcs  []callable.Func0[RET]
	mu     *sync.Mutex
}

// Create a new pool.
//
// This pool can be used to execute multiple held callables at once.
func New[RET any](initialSliceSize int) Pool[RET] {
	var p = &poolRunner[RET]{
		funcs: make([]callable.Func0[RET], 0, initialSliceSize),
		mu:    &sync.Mutex{},
	}

	return p
}

// Create a new pool without the safety checks on the
// maximum amount of workers and buffer size.
func NewUnsafe[RET any](initialSliceSize int) Pool[RET] {
	var p = &poolRunner[RET]{
		Unsafe: true,
		funcs:  make([]callable.Func0[RET], 0, initialSliceSize),
		mu:     &sync.Mutex{},
	}

	return p
}

// Go invokes the given callable on its own goroutine, and returns a
// results.Single to wait for its outcome.
//
// The outcome carries the callable's own error, unmodified.
func Go[RET any](fn func() (RET, error)) results.Single[RET] {
	var single = results.NewSingle(make(chan results.Result[RET], 1))
	go func() {
		var value, err = callable.OfFunc0(fn).Call()
		single.Channel() <- results.Result[RET]{Value: value, Err: err}
	}()
	return single
}

// Add a callable to the pool.
//
// The callable will be executed in parallel with the other callables.
func (b *poolRunner[RET]) Add(fn func() (RET, error)) {
	b.funcs = append(b.funcs, callable.OfFunc0(fn))
}

// Add many callables to the pool.
func (b *poolRunner[RET]) AddMany(fns []func() (RET, error)) {
	if len(fns) > 1 && cap(b.funcs) < len(b.funcs)+len(fns) {
		// Grow the slice to the correct size.
		var newSlice = make([]callable.Func0[RET], len(b.funcs), len(b.funcs)+len(fns))
		copy(newSlice, b.funcs)
		b.funcs = newSlice
	}
	for _, fn := range fns {
		b.funcs = append(b.funcs, callable.OfFunc0(fn))
	}
}

// Add held callables to the pool.
//
// This is a shortcut for AddMany.
func (b *poolRunner[RET]) AddFuncs(fns ...callable.Func0[RET]) {
	if len(fns) == 0 {
		panic("no held callables provided")
	}
	if cap(b.funcs) < len(b.funcs)+len(fns) {
		var newSlice = make([]callable.Func0[RET], len(b.funcs)+len(fns))
		copy(newSlice, b.funcs)
		copy(newSlice[len(b.funcs):], fns)
		b.funcs = newSlice
		return
	}
	b.funcs = append(b.funcs, fns...)
}

// Execute the held callables, and return the outcomes.
func (b *poolRunner[RET]) Run(workers, chanBufferSize Size) (results.Multiple[RET], Control) {

	// Check if the pool holds any callables.
	if len(b.funcs) == 0 {
		panic("this pool holds no callables")
	}

	// Initialize the pool for running.
	workers, funcQueue, resultQueue, res := b.initializeQueue(workers, chanBufferSize, len(b.funcs))

	// Initialize a new controller.
	var cc = newControl()

	// Execute the callables.
	b.startWorkers(workers, funcQueue, resultQueue, b.funcs, cc)

	return res, cc
}

func (b *poolRunner[RET]) initializeQueue(workers, chanBufferSize Size, resultQueueSize int) (Size, chan callable.Func0[RET], chan results.Result[RET], results.Multiple[RET]) {
	workers, chanBufferSize = b.checkWorkersAndBufferSize(workers, chanBufferSize)
	var funcQueue, resultQueue, res = b.createQueues(chanBufferSize, resultQueueSize)
	return workers, funcQueue, resultQueue, res
}

// Initialize the queues for the given buffer size.
func (b *poolRunner[RET]) createQueues(chanBufferSize Size, resultQueueSize int) (chan callable.Func0[RET], chan results.Result[RET], results.Multiple[RET]) {
	var funcQueue = make(chan callable.Func0[RET], chanBufferSize)
	var resultQueue = make(chan results.Result[RET], resultQueueSize)
	var res = results.NewMultiple(resultQueue, resultQueueSize)
	return funcQueue, resultQueue, res
}

// Initialize the workers and start the pool.
func (b *poolRunner[RET]) startWorkers(workers Size, funcQueue chan callable.Func0[RET], resultQueue chan results.Result[RET], fns []callable.Func0[RET], cc *control) {
	// Start the workers.
	var wg = &sync.WaitGroup{}
	wg.Add(int(workers))
	for i := Size(0); i < workers; i++ {
		go b.worker(wg, funcQueue, resultQueue, cc)
	}
	// Send a signal by closing the finished channel,
	// but only once every worker has returned.
	go func() {
		wg.Wait()
		b.mu.Lock()
		select {
		case <-cc.done:
		default:
			close(cc.done)
		}
		b.mu.Unlock()
	}()
	go func() {
		defer close(funcQueue)
		for _, fn := range fns {
			select {
			case <-cc.cancel:
				return
			default:
				funcQueue <- fn
			}
		}
	}()
}

// Initialize a new worker for the pool, with the given callable queue and result queue.
func (b *poolRunner[RET]) worker(wg *sync.WaitGroup, funcQueue chan callable.Func0[RET], resultQueue chan results.Result[RET], cc *control) {
	defer wg.Done()
	for fn := range funcQueue {
		select {
		case <-cc.cancel:
			return
		default:
			var value, err = fn.Call()
			resultQueue <- results.Result[RET]{Value: value, Err: err}
		}
	}
}

// Check if the amount of workers and buffer size is valid.
// If not, panic or set the value.
func (b *poolRunner[RET]) checkWorkersAndBufferSize(workers, chanBufferSize Size) (Size, Size) {
	if workers <= 0 {
		workers = 1
	}

	if chanBufferSize <= 0 {
		chanBufferSize = 1
	}

	var funcLen = Size(len(b.funcs))

	if !b.Unsafe {
		if workers > funcLen {
			workers = funcLen
		}

		if chanBufferSize > funcLen {
			chanBufferSize = funcLen
		}

		if workers > MaxSafeWorkers {
			panicCount("workers", MaxSafeWorkers, workers)
		}

		if chanBufferSize > MaxSafeBuffer {
			panicCount("buffer size", MaxSafeBuffer, chanBufferSize)
		}
	}
	return workers, chanBufferSize
}

func panicCount(n string, max, current Size) {
	panic(fmt.Errorf("%s of %d is too large (max: %d)! use NewUnsafe to override this check", n, current, max))
}

func getMaxWorkers(mult int) Size {
	var cpuCount = runtime.NumCPU()
	if cpuCount > 1 {
		return Size(cpuCount * mult)
	}
	return Size(mult)
}
