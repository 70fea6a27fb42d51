package threadpool

import (
	"context"
	"time"

	boff "github.com/Andrej220/go-utils/backoff"
	lg "github.com/Andrej220/go-utils/zlog"
	"github.com/google/uuid"
)

// Job describes a single unit of work submitted to the pool, producing
// a value of type R.
//
// Fn receives the job's context and runs on a worker goroutine with no
// pool lock held. Ctx controls cancellation before execution and
// retry backoff; once a worker has started Fn, the job runs to
// completion. CleanupFunc, if set, runs after the job finishes,
// including after a panic.
type Job[R any] struct {
	Fn          func(context.Context) (R, error)
	Ctx         context.Context
	Priority    Priority
	Retry       *RetryPolicy
	CleanupFunc func()
}

// task is the type-erased form of a Job held in the queues. The exec
// and fail closures capture the typed Future so the pool itself stays
// non-generic.
type task struct {
	exec     func(context.Context) error
	fail     func(error)
	ctx      context.Context
	id       string
	priority Priority
	cleanup  func()
}

// Submit wraps the job and a fresh Future, enqueues it at its priority
// level and wakes one idle worker. It never blocks on job execution;
// the returned Future carries the eventual value or failure.
//
// Submit is a free function because Go methods cannot introduce type
// parameters. It returns ErrPoolClosed once shutdown has begun,
// ErrNilFunc for a nil Fn and ErrInvalidPriority for an unknown level.
func Submit[R any](p *Pool, job Job[R]) (*Future[R], error) {
	if job.Fn == nil {
		return nil, ErrNilFunc
	}
	if !job.Priority.valid() {
		return nil, ErrInvalidPriority
	}
	if job.Ctx == nil {
		job.Ctx = context.Background()
	}

	fut := newFuture[R]()
	pol := p.defaultRetry.merge(job.Retry)
	fn := job.Fn

	t := &task{
		ctx:      job.Ctx,
		id:       uuid.NewString(),
		priority: job.Priority,
		cleanup:  job.CleanupFunc,
		fail:     fut.reject,
	}
	t.exec = func(ctx context.Context) error {
		v, err := runWithRetry(ctx, fn, pol)
		if err != nil {
			fut.reject(err)
			return err
		}
		fut.fulfill(v)
		return nil
	}

	if err := p.enqueue(t); err != nil {
		return nil, err
	}
	lg.FromContext(job.Ctx).Info("Job submitted",
		lg.String("job_id", t.id),
		lg.String("priority", job.Priority.String()),
	)
	return fut, nil
}

// runWithRetry executes fn up to pol.Attempts times with exponential
// backoff between failures. The backoff sleep is interruptible by ctx;
// cancellation during backoff surfaces ctx.Err() as the job's failure.
func runWithRetry[R any](ctx context.Context, fn func(context.Context) (R, error), pol RetryPolicy) (R, error) {
	var zero R
	logger := lg.FromContext(ctx)

	if pol.Attempts <= 1 {
		return fn(ctx)
	}

	bo := boff.New(pol.Initial, pol.Max, time.Now().UnixNano())
	for attempt := 1; ; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		if attempt == pol.Attempts {
			logger.Error("job failed", lg.Int("attempt", attempt), lg.Any("error", err))
			return zero, err
		}
		delay := bo.Next()
		logger.Warn("job attempt failed; backing off",
			lg.Int("attempt", attempt),
			lg.String("sleep", delay.String()),
			lg.Any("error", err),
		)
		timer := time.NewTimer(delay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			if !timer.Stop() {
				<-timer.C // drain if timer fired
			}
			logger.Info("Job canceled", lg.Any("reason", ctx.Err()))
			return zero, ctx.Err()
		}
	}
}
