package future

import "sync/atomic"

// Tuple2 is the resolved-slot pair produced by WaitAll2/WaitAny2. Each
// non-nil slot is itself a Future, already resolved, carrying its own
// Value or Error independently of the others; WaitAny2 leaves the slot
// of the input that did not win nil.
type Tuple2[A, B any] struct {
	A *Future[A]
	B *Future[B]
}

// Tuple3 is the three-slot counterpart of Tuple2.
type Tuple3[A, B, C any] struct {
	A *Future[A]
	B *Future[B]
	C *Future[C]
}

// WaitAll2 resolves once both fa and fb have resolved, with each slot
// carrying its own input's outcome. It never short-circuits on error:
// an erroring input simply produces a slot whose Future.Failed() is
// true, and the aggregate still waits for every slot.
func WaitAll2[A, B any](fa *Future[A], fb *Future[B]) *Future[Tuple2[A, B]] {
	p, out := newInternalPromise[Tuple2[A, B]]()
	var remaining atomic.Int32
	remaining.Store(2)
	result := &Tuple2[A, B]{}

	finish := func() {
		if remaining.Add(-1) == 0 {
			p.SetValue(*result)
		}
	}

	Then(fa, func(v A, err error) (Void, error) {
		result.A = resolvedHandle(v, err)
		finish()
		return Void{}, nil
	})
	Then(fb, func(v B, err error) (Void, error) {
		result.B = resolvedHandle(v, err)
		finish()
		return Void{}, nil
	})
	return out
}

// WaitAny2 resolves on whichever of fa, fb resolves first. The slot for
// the input that did not win stays a nil *Future (not ready); callers
// must check which field is non-nil before reading it.
func WaitAny2[A, B any](fa *Future[A], fb *Future[B]) *Future[Tuple2[A, B]] {
	p, out := newInternalPromise[Tuple2[A, B]]()
	var done atomic.Bool

	Then(fa, func(v A, err error) (Void, error) {
		if done.CompareAndSwap(false, true) {
			p.SetValue(Tuple2[A, B]{A: resolvedHandle(v, err)})
		}
		return Void{}, nil
	})
	Then(fb, func(v B, err error) (Void, error) {
		if done.CompareAndSwap(false, true) {
			p.SetValue(Tuple2[A, B]{B: resolvedHandle(v, err)})
		}
		return Void{}, nil
	})
	return out
}

// WaitAll3 is the three-input counterpart of WaitAll2.
func WaitAll3[A, B, C any](fa *Future[A], fb *Future[B], fc *Future[C]) *Future[Tuple3[A, B, C]] {
	p, out := newInternalPromise[Tuple3[A, B, C]]()
	var remaining atomic.Int32
	remaining.Store(3)
	result := &Tuple3[A, B, C]{}

	finish := func() {
		if remaining.Add(-1) == 0 {
			p.SetValue(*result)
		}
	}

	Then(fa, func(v A, err error) (Void, error) {
		result.A = resolvedHandle(v, err)
		finish()
		return Void{}, nil
	})
	Then(fb, func(v B, err error) (Void, error) {
		result.B = resolvedHandle(v, err)
		finish()
		return Void{}, nil
	})
	Then(fc, func(v C, err error) (Void, error) {
		result.C = resolvedHandle(v, err)
		finish()
		return Void{}, nil
	})
	return out
}

// WaitAny3 is the three-input counterpart of WaitAny2.
func WaitAny3[A, B, C any](fa *Future[A], fb *Future[B], fc *Future[C]) *Future[Tuple3[A, B, C]] {
	p, out := newInternalPromise[Tuple3[A, B, C]]()
	var done atomic.Bool

	Then(fa, func(v A, err error) (Void, error) {
		if done.CompareAndSwap(false, true) {
			p.SetValue(Tuple3[A, B, C]{A: resolvedHandle(v, err)})
		}
		return Void{}, nil
	})
	Then(fb, func(v B, err error) (Void, error) {
		if done.CompareAndSwap(false, true) {
			p.SetValue(Tuple3[A, B, C]{B: resolvedHandle(v, err)})
		}
		return Void{}, nil
	})
	Then(fc, func(v C, err error) (Void, error) {
		if done.CompareAndSwap(false, true) {
			p.SetValue(Tuple3[A, B, C]{C: resolvedHandle(v, err)})
		}
		return Void{}, nil
	})
	return out
}

// WaitAllSlice is the runtime-arity, homogeneous counterpart of
// WaitAll2/WaitAll3: it resolves once every input has resolved, with
// slot i carrying input i's own outcome regardless of error.
func WaitAllSlice[T any](inputs []*Future[T]) *Future[[]*Future[T]] {
	p, out := newInternalPromise[[]*Future[T]]()
	if len(inputs) == 0 {
		p.SetValue(nil)
		return out
	}

	result := make([]*Future[T], len(inputs))
	var remaining atomic.Int32
	remaining.Store(int32(len(inputs)))

	for i, in := range inputs {
		i := i
		Then(in, func(v T, err error) (Void, error) {
			result[i] = resolvedHandle(v, err)
			if remaining.Add(-1) == 0 {
				p.SetValue(result)
			}
			return Void{}, nil
		})
	}
	return out
}

// WaitAnySlice is the runtime-arity, homogeneous counterpart of
// WaitAny2/WaitAny3: it resolves on the first input to resolve, with
// that input's slot populated and every other slot left nil.
func WaitAnySlice[T any](inputs []*Future[T]) *Future[[]*Future[T]] {
	p, out := newInternalPromise[[]*Future[T]]()
	if len(inputs) == 0 {
		p.SetValue(nil)
		return out
	}

	var done atomic.Bool
	for i, in := range inputs {
		i := i
		Then(in, func(v T, err error) (Void, error) {
			if done.CompareAndSwap(false, true) {
				result := make([]*Future[T], len(inputs))
				result[i] = resolvedHandle(v, err)
				p.SetValue(result)
			}
			return Void{}, nil
		})
	}
	return out
}

// resolvedHandle builds an already-resolved, unconsumed Future wrapping
// v/err, for combinator slots: the slot a caller reads must be its own
// fresh handle, never the input Future the combinator itself consumed
// via Then.
func resolvedHandle[T any](v T, err error) *Future[T] {
	if err != nil {
		return Failed[T](err)
	}
	return Ready[T](v)
}
