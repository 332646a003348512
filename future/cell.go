package future

import "sync"

// cell is the shared outcome cell described by the design: it is owned
// jointly by a Promise and the (at most one) Future built on top of it,
// and holds at most one of {value, error} plus at most one continuation
// registered to run once that outcome is published.
//
// done is closed exactly once, when the outcome is published, and is
// what blocking waits select on. mu only ever guards the short critical
// section around the resolved flag and the continuation slot; it is
// never held while a continuation runs, so a continuation that itself
// touches another cell cannot deadlock against this one.
type cell[T any] struct {
	mu       sync.Mutex
	done     chan struct{}
	resolved bool
	val      T
	err      error
	cont     func()
}

func newCell[T any]() *cell[T] {
	return &cell[T]{done: make(chan struct{})}
}

// publish sets the cell's outcome. It returns false if the cell was
// already resolved (double publish), in which case the outcome is left
// untouched. The registered continuation, if any, is invoked after the
// lock is released and after done is closed.
func (c *cell[T]) publish(v T, err error) bool {
	c.mu.Lock()
	if c.resolved {
		c.mu.Unlock()
		return false
	}
	c.resolved = true
	c.val, c.err = v, err
	cont := c.cont
	c.cont = nil
	c.mu.Unlock()

	close(c.done)
	if cont != nil {
		cont()
	}
	return true
}

// onReady registers cb to run with the resolved value and error. If the
// cell is already resolved, cb runs immediately, inline, on the calling
// goroutine. Otherwise cb runs later, inline, on whichever goroutine
// calls publish.
func (c *cell[T]) onReady(cb func(v T, err error)) {
	wrapper := func() {
		cb(c.val, c.err)
	}
	c.mu.Lock()
	if c.resolved {
		c.mu.Unlock()
		wrapper()
		return
	}
	c.cont = wrapper
	c.mu.Unlock()
}

func (c *cell[T]) isDone() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}
