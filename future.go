package threadpool

import (
	"context"
	"sync"
	"time"
)

// Future is the caller-held handle for a submitted job's eventual
// value or failure. It is fulfilled exactly once, by the worker that
// executes the job; fulfillment happens-before any observation of
// readiness, so a reader that sees the Future ready always sees the
// final outcome.
//
// Get may be called any number of times and always returns the same
// result once available.
type Future[R any] struct {
	done chan struct{}
	once sync.Once
	val  R
	err  error
}

func newFuture[R any]() *Future[R] {
	return &Future[R]{done: make(chan struct{})}
}

// fulfill stores the job's value. First write wins.
func (f *Future[R]) fulfill(v R) {
	f.once.Do(func() {
		f.val = v
		close(f.done)
	})
}

// reject stores the job's failure. First write wins.
func (f *Future[R]) reject(err error) {
	f.once.Do(func() {
		f.err = err
		close(f.done)
	})
}

// Get blocks until the job's outcome is available, then returns the
// value or the captured failure. If ctx is done first, Get returns the
// context error; the job itself is unaffected and a later Get still
// observes its outcome.
func (f *Future[R]) Get(ctx context.Context) (R, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero R
		return zero, ctx.Err()
	}
}

// Ready reports whether the outcome is available, without blocking and
// without consuming it.
func (f *Future[R]) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks up to d for the outcome and reports whether it became
// available. A non-positive d makes Wait equivalent to Ready.
func (f *Future[R]) Wait(d time.Duration) bool {
	if d <= 0 {
		return f.Ready()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-f.done:
		return true
	case <-timer.C:
		return false
	}
}

// Done returns a channel closed when the outcome is available. Useful
// inside select statements.
func (f *Future[R]) Done() <-chan struct{} { return f.done }
