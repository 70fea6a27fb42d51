package threadpool

import (
	"time"
)

const (
	defaultAttempts     = 3
	defaultInitialRetry = 200 * time.Millisecond
	defaultMaxRetry     = 5 * time.Second
)

// RetryPolicy describes how many times and how often a job should be
// retried before its failure is stored in the Future.
//
// A zero policy means a single attempt and no retries. Zero fields in
// a policy with Attempts > 1 fall back to the package defaults.
type RetryPolicy struct {
	// Attempts is the maximum number of tries for a job.
	Attempts int

	// Initial is the first backoff duration.
	Initial time.Duration

	// Max is the cap for backoff duration.
	Max time.Duration
}

// GetDefaultRP returns a pointer to the default retry policy. Useful
// in tests or when constructing a pool with the same defaults.
func GetDefaultRP() *RetryPolicy {
	rp := RetryPolicy{
		Attempts: defaultAttempts,
		Initial:  defaultInitialRetry,
		Max:      defaultMaxRetry,
	}
	return &rp
}

// normalize fills backoff fields for a policy that actually retries.
func (rp RetryPolicy) normalize() RetryPolicy {
	if rp.Attempts <= 0 {
		rp.Attempts = 1
	}
	if rp.Attempts > 1 {
		if rp.Initial <= 0 {
			rp.Initial = defaultInitialRetry
		}
		if rp.Max <= 0 {
			rp.Max = defaultMaxRetry
		}
	}
	return rp
}

// merge overlays non-zero per-job values onto the pool default.
func (rp RetryPolicy) merge(job *RetryPolicy) RetryPolicy {
	if job == nil {
		return rp.normalize()
	}
	if job.Attempts > 0 {
		rp.Attempts = job.Attempts
	}
	if job.Initial > 0 {
		rp.Initial = job.Initial
	}
	if job.Max > 0 {
		rp.Max = job.Max
	}
	return rp.normalize()
}
