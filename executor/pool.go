package executor

import (
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wavelet-run/outcome/routine"
)

var (
	// ErrPoolStarted is returned by Start on a Pool that is already
	// running or has already been stopped.
	ErrPoolStarted = errors.New("executor: pool already started or stopped")
	// ErrPoolNotRunning is returned by Stop on a Pool that was never
	// started, or was already stopped.
	ErrPoolNotRunning = errors.New("executor: pool not started or already stopped")
)

const (
	poolInitialized int32 = iota
	poolRunning
	poolStopped
)

// Pool is a bounded worker-pool Executor with a start/stop lifecycle,
// adapted from the plain semaphore-gated PoolExecutor plus a
// daemon-style state machine for Start/Stop.
//
// Submit accepts work before Start is called and after Stop: the
// semaphore gate has no notion of "not running", only of "how many
// tasks are in flight". Start/Stop only drive the lifecycle state;
// Stop and StopTimeout are what wait on the in-flight tasks.
type Pool struct {
	sem   chan struct{}
	state atomic.Int32
	wg    sync.WaitGroup
}

// NewPool creates a Pool that runs at most maxWorkers tasks
// concurrently. The pool must be started with Start before Stop or
// StopTimeout succeeds, but Submit works regardless.
func NewPool(maxWorkers int) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	return &Pool{sem: make(chan struct{}, maxWorkers)}
}

// Start transitions the pool from initialized to running. It returns
// ErrPoolStarted if the pool was already started or stopped.
func (p *Pool) Start() error {
	if p.state.CompareAndSwap(poolInitialized, poolRunning) {
		return nil
	}
	return ErrPoolStarted
}

// Stop transitions the pool from running to stopped and blocks until
// every submitted task has returned. It returns ErrPoolNotRunning if
// the pool was never started or was already stopped.
func (p *Pool) Stop() error {
	if !p.state.CompareAndSwap(poolRunning, poolStopped) {
		return ErrPoolNotRunning
	}
	p.wg.Wait()
	return nil
}

// StopTimeout is Stop bounded by a deadline: it still transitions the
// pool to stopped, but gives up waiting on straggling tasks after d
// rather than blocking forever on one that never returns. It reports
// false if d elapsed before every in-flight task finished; those tasks
// keep running in the background regardless.
func (p *Pool) StopTimeout(d time.Duration) (stopped bool, err error) {
	if !p.state.CompareAndSwap(poolRunning, poolStopped) {
		return false, ErrPoolNotRunning
	}
	return routine.RunWithTimeout(p.wg.Wait, d), nil
}

// Submit runs f on a pool goroutine once a slot is free, recovering
// any panic f raises so one bad task cannot take down the pool. f's
// own panic is reported nowhere by this package: a caller that needs
// the panic observed should capture it into the Promise f is
// resolving, via Then's own panic guard.
func (p *Pool) Submit(f func()) {
	p.wg.Add(1)
	p.sem <- struct{}{}
	routine.GoSafe(func() {
		defer func() { <-p.sem; p.wg.Done() }()
		f()
	})
}
