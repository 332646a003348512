package future

// Void is the unit outcome type: a continuation that produces no
// payload resolves a Future[Void], mirroring the original source's
// future<void> specialization.
type Void struct{}

// Then attaches a continuation k that runs with this Future's resolved
// value and error, and produces a new Future carrying whatever k
// returns. k runs exactly once: inline on whichever goroutine publishes
// the outcome if f is still pending when Then is called, or inline on
// the calling goroutine if f is already resolved.
//
// Calling Then consumes f. A second Then or ThenCompose on the same
// Future returns a Future already in the ErrNoState error state, and a
// Get after Then fails with ErrNoState, diagnosing the misuse rather
// than blocking forever.
func Then[T, R any](f *Future[T], k func(val T, err error) (R, error)) *Future[R] {
	if f.consumed {
		return Failed[R](newNoStateError())
	}
	f.consumed = true

	p, out := newInternalPromise[R]()

	run := func(val T, err error) {
		defer guardPanic(func(pe *PanicError) { p.SetError(pe) })
		rv, rerr := k(val, err)
		p.setOutcome(rv, rerr)
	}

	if f.embedded {
		run(f.val, f.err)
		return out
	}
	f.c.onReady(run)
	return out
}

// ThenVoid is sugar for continuations that have no result of their own,
// the futurizer's "unit" row: k's return becomes Value(Void{}), or
// Error(err) if k itself panics or returns a non-nil error.
func ThenVoid[T any](f *Future[T], k func(val T, err error) error) *Future[Void] {
	return Then(f, func(val T, err error) (Void, error) {
		return Void{}, k(val, err)
	})
}

// ThenCompose is the futurizer's "flatten" row: k returns a Future[R]
// of its own rather than a plain R, and the result is that inner
// Future's eventual outcome, never a nested Future[Future[R]].
//
// Go cannot dispatch on a generic function's return shape at compile
// time, so flattening gets its own entry point instead of being
// inferred from Then's type parameter the way the original source's
// futurize<future<T>> partial specialization does.
func ThenCompose[T, R any](f *Future[T], k func(val T, err error) *Future[R]) *Future[R] {
	if f.consumed {
		return Failed[R](newNoStateError())
	}
	f.consumed = true

	p, out := newInternalPromise[R]()

	run := func(val T, err error) {
		var inner *Future[R]
		func() {
			defer guardPanic(func(pe *PanicError) { p.SetError(pe) })
			inner = k(val, err)
		}()
		if inner == nil {
			return
		}
		forwardInto(inner, p)
	}

	if f.embedded {
		run(f.val, f.err)
		return out
	}
	f.c.onReady(run)
	return out
}

// forwardInto resolves p with whatever inner eventually carries,
// without ever blocking the calling goroutine. The original source's
// forward_to calls a blocking get() here when inner is still pending;
// that would stall whichever goroutine is running the continuation (it
// may be the producer's own publishing goroutine). Chaining through the
// cell's continuation slot instead keeps the whole path non-blocking.
func forwardInto[R any](inner *Future[R], p *Promise[R]) {
	if inner.consumed {
		p.SetError(newNoStateError())
		return
	}
	inner.consumed = true

	if inner.embedded {
		p.setOutcome(inner.val, inner.err)
		return
	}
	inner.c.onReady(func(v R, err error) {
		p.setOutcome(v, err)
	})
}
