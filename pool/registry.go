package pool

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Nigel2392/callable"
	"github.com/Nigel2392/callable/results"
)

// A registry holds pools of held callables by key.
type Registry[KEY comparable, RET any] interface {
	// Get a pool from the registry.
	//
	// If the pool does not exist, it will be created.
	Get(poolKey KEY, sliceSize int) Pool[RET]

	// Add a pool to the registry.
	//
	// If the pool already exists, it will be overwritten.
	AddPool(poolKey KEY, pool Pool[RET])

	// Add a callable to the pool stored under the given key.
	Add(poolKey KEY, fn func() (RET, error))

	// Add many callables to the pool stored under the given key.
	AddMany(poolKey KEY, fns []func() (RET, error))

	// Add held callables to the pool stored under the given key.
	//
	// This is a shortcut for AddMany.
	AddFuncs(poolKey KEY, fns ...callable.Func0[RET])

	// Execute the callables held by the pool stored under the given key,
	// and return the results.Multiple[RET] containing a channel for the outcomes.
	//
	// The amount of callables executed at once is determined by the amount of workers.
	Run(poolKey KEY, workers, chanBufferSize Size) (results.Multiple[RET], Control)

	// Return the underlying map of pools.
	Pools() PoolMap[KEY, RET]

	// Remove a pool from the registry.
	//
	// If the pool does not exist, nothing will happen.
	Remove(poolKey KEY)
}

type PoolMap[KEY comparable, RET any] map[KEY]Pool[RET]

func (p PoolMap[KEY, RET]) String() string {
	var bld strings.Builder
	bld.WriteString("PoolMap:\n")
	for k, v := range p {
		bld.WriteString(fmt.Sprintf("%v: %v\n", k, v))
	}
	return bld.String()
}

type registry[KEY comparable, RET any] struct {
	pools PoolMap[KEY, RET]
	mu    *sync.Mutex
}

func NewRegistry[KEY comparable, RET any]() Registry[KEY, RET] {
	var r = &registry[KEY, RET]{
		pools: make(PoolMap[KEY, RET]),
		mu:    &sync.Mutex{},
	}

	return r
}

func (r *registry[KEY, RET]) Get(poolKey KEY, sliceSize int) Pool[RET] {
	r.mu.Lock()
	var p, ok = r.pools[poolKey]
	if !ok || p == nil {
		p = New[RET](sliceSize)
		r.pools[poolKey] = p
	}
	r.mu.Unlock()
	return p
}

func (r *registry[KEY, RET]) Add(poolKey KEY, fn func() (RET, error)) {
	var p = r.Get(poolKey, 1)
	p.Add(fn)
}

func (r *registry[KEY, RET]) AddMany(poolKey KEY, fns []func() (RET, error)) {
	var p = r.Get(poolKey, len(fns))
	p.AddMany(fns)
}

func (r *registry[KEY, RET]) AddFuncs(poolKey KEY, fns ...callable.Func0[RET]) {
	var p = r.Get(poolKey, len(fns))
	p.AddFuncs(fns...)
}

func (r *registry[KEY, RET]) AddPool(poolKey KEY, pool Pool[RET]) {
	r.mu.Lock()
	r.pools[poolKey] = pool
	r.mu.Unlock()
}

func (r *registry[KEY, RET]) Remove(poolKey KEY) {
	r.mu.Lock()
	delete(r.pools, poolKey)
	r.mu.Unlock()
}

func (r *registry[KEY, RET]) Run(poolKey KEY, workers, chanBufferSize Size) (results.Multiple[RET], Control) {
	var p = r.Get(poolKey, 0)
	if p == nil {
		panic("pool not found")
	}
	return p.Run(workers, chanBufferSize)
}

func (r *registry[KEY, RET]) Pools() PoolMap[KEY, RET] {
	return r.pools
}
