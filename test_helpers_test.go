package threadpool_test

import (
	"context"
	"runtime"
	"testing"
	"time"

	tp "github.com/Andrej220/go-utils/tpool"
)

// noRetry keeps tests deterministic: one attempt per job unless the
// test sets its own policy.
var noRetry = tp.RetryPolicy{Attempts: 1}

var fastRetry = tp.RetryPolicy{Attempts: 3, Initial: 2 * time.Millisecond, Max: 5 * time.Millisecond}

func newTestPool(t *testing.T, workers int) *tp.Pool {
	t.Helper()
	return tp.New(workers, tp.Options{DefaultRetry: noRetry})
}

func waitUntil(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		runtime.Gosched()
	}
	t.Fatal("condition not satisfied before timeout")
}

// mustGet retrieves a future's value with a bounded wait.
func mustGet[R any](t *testing.T, fut *tp.Future[R]) R {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	v, err := fut.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	return v
}

// intJob builds a job returning a fixed value at the given priority.
func intJob(v int, prio tp.Priority) tp.Job[int] {
	return tp.Job[int]{
		Priority: prio,
		Fn: func(context.Context) (int, error) {
			return v, nil
		},
	}
}
