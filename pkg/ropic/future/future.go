package future

import (
	"context"
	"sync"

	"github.com/ib-77/ropic/pkg/ropic"
)

// Future is a single-value, settle-once container for a result produced
// by another goroutine. It implements the ropic.Awaitable protocol:
// Ready/Subscribe/Value.
//
// Completing a Future runs the registered resume callbacks on the
// completing goroutine, so Complete returns only after every parked
// consumer has been driven to its next suspension point.
type Future[T any] struct {
	mu      sync.Mutex
	done    bool
	value   T
	subs    []func()
	settled chan struct{}
}

// New returns an incomplete Future.
func New[T any]() *Future[T] {
	return &Future[T]{settled: make(chan struct{})}
}

// Of returns a Future already completed with v.
func Of[T any](v T) *Future[T] {
	f := New[T]()
	f.Complete(v)
	return f
}

// Complete resolves the Future with v and invokes the registered resume
// callbacks. Only the first call settles; later calls report false and
// leave the value untouched.
func (f *Future[T]) Complete(v T) bool {
	f.mu.Lock()
	if f.done {
		f.mu.Unlock()
		return false
	}
	f.done = true
	f.value = v
	subs := f.subs
	f.subs = nil
	close(f.settled)
	f.mu.Unlock()

	for _, resume := range subs {
		resume()
	}
	return true
}

// Ready reports whether the Future has been completed.
func (f *Future[T]) Ready() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.done
}

// Subscribe registers resume to run on completion. Reports false without
// registering when the Future completed first.
func (f *Future[T]) Subscribe(resume func()) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.done {
		return false
	}
	f.subs = append(f.subs, resume)
	return true
}

// Value returns the completed value. Reading an incomplete Future is a
// programming error and panics.
func (f *Future[T]) Value() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.done {
		panic("future: value read before completion")
	}
	return f.value
}

// Wait blocks until the Future completes or ctx is done.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.settled:
		return f.Value(), nil
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

var _ ropic.Awaitable[int] = (*Future[int])(nil)
