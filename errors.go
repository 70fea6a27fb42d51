package threadpool

import (
	"errors"
	"fmt"
)

var (
	// ErrPoolClosed is returned by Submit once shutdown has begun.
	// Jobs are never silently enqueued on a closed pool.
	ErrPoolClosed = errors.New("threadpool: pool closed")

	// ErrNilFunc is returned when a submitted Job has a nil Fn.
	ErrNilFunc = errors.New("threadpool: job func is nil")

	// ErrInvalidPriority is returned when a Job carries a priority
	// outside {Normal, High, Critical}.
	ErrInvalidPriority = errors.New("threadpool: invalid priority")
)

// PanicError wraps a value recovered from a panicking job. It is stored
// in the job's Future instead of propagating out of the worker.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("threadpool: job panicked: %v", e.Value)
}
