package future

import (
	"runtime"
	"sync/atomic"
)

// Promise is the producing end of an outcome cell. It is created free
// of any consumer, yields its paired Future exactly once via
// GetConsumer, and is meant to be resolved exactly once by SetValue or
// SetError.
//
// A Promise must not be copied after first use.
type Promise[T any] struct {
	c             *cell[T]
	consumerTaken atomic.Bool
}

// NewPromise creates a free-standing, unresolved Promise. If it is
// garbage collected before ever being resolved, its paired Future (and
// anything chained from it) resolves with ErrBrokenPromise instead of
// hanging forever.
//
// The finalizer is only installed here, not on the internal promises
// Then/ThenCompose/the combinators create for their own bookkeeping:
// those are always resolved deterministically by the wrapper closures
// that own them, so attaching a finalizer to every one of them would
// just be GC overhead with no corresponding risk to guard against.
func NewPromise[T any]() *Promise[T] {
	p := &Promise[T]{c: newCell[T]()}
	runtime.SetFinalizer(p, func(p *Promise[T]) {
		p.c.publish(*new(T), newBrokenPromiseError())
	})
	return p
}

// newInternalPromise creates a Promise with no finalizer and its
// consumer already taken, for use by code within this package that
// guarantees deterministic resolution of the pair it allocates.
func newInternalPromise[T any]() (*Promise[T], *Future[T]) {
	p := &Promise[T]{c: newCell[T]()}
	p.consumerTaken.Store(true)
	return p, &Future[T]{c: p.c}
}

// GetConsumer yields the Future paired with this Promise. A second call
// fails with ErrNoState: a Promise has at most one consumer.
func (p *Promise[T]) GetConsumer() (*Future[T], error) {
	if !p.consumerTaken.CompareAndSwap(false, true) {
		return nil, newNoStateError()
	}
	return &Future[T]{c: p.c}, nil
}

// SetValue resolves the Promise with a value. It returns ErrAlreadySet
// if the Promise was already resolved.
func (p *Promise[T]) SetValue(val T) error {
	return p.setOutcome(val, nil)
}

// SetError resolves the Promise with an error. The error is annotated
// with a captured stack trace via pkg/errors if it does not already
// carry one. It returns ErrAlreadySet if the Promise was already
// resolved.
func (p *Promise[T]) SetError(err error) error {
	return p.setOutcome(*new(T), wrapStack(err))
}

func (p *Promise[T]) setOutcome(val T, err error) error {
	if !p.c.publish(val, err) {
		return newAlreadySetError()
	}
	runtime.SetFinalizer(p, nil)
	return nil
}

// IsFree reports whether the Promise has not yet been resolved.
func (p *Promise[T]) IsFree() bool {
	return !p.c.isDone()
}
