package threadpool

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by the pool to report queueing and
// execution activity.
//
// Implementations must be safe for concurrent use. All methods are
// expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncSubmitted increments the accepted-submissions counter.
	IncSubmitted()

	// IncExecuted increments the successfully executed counter.
	IncExecuted()

	// IncFailed increments the failed-jobs counter. Panics and
	// pre-execution cancellations count as failures.
	IncFailed()

	// SetQueued records the current queue depth.
	SetQueued(n int64)
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are optimized for hot paths.
// Reads are intended for cold-path observation.
type AtomicMetrics struct {
	submitted atomic.Uint64

	_ [56]byte // padding to avoid false sharing

	executed atomic.Uint64

	_ [56]byte

	failed atomic.Uint64

	_ [56]byte

	queued atomic.Int64
}

// Submitted returns the total number of accepted submissions.
func (m *AtomicMetrics) Submitted() uint64 { return m.submitted.Load() }

// Executed returns the total number of successfully executed jobs.
func (m *AtomicMetrics) Executed() uint64 { return m.executed.Load() }

// Failed returns the total number of failed jobs.
func (m *AtomicMetrics) Failed() uint64 { return m.failed.Load() }

// Queued returns the last recorded queue depth.
func (m *AtomicMetrics) Queued() int64 { return m.queued.Load() }

func (m *AtomicMetrics) IncSubmitted() { m.submitted.Add(1) }

func (m *AtomicMetrics) IncExecuted() { m.executed.Add(1) }

func (m *AtomicMetrics) IncFailed() { m.failed.Add(1) }

func (m *AtomicMetrics) SetQueued(n int64) { m.queued.Store(n) }

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards all
// metric updates. Used when metrics collection is disabled and zero
// overhead is desired.
type NoopMetrics struct{}

func (m *NoopMetrics) IncSubmitted() {}

func (m *NoopMetrics) IncExecuted() {}

func (m *NoopMetrics) IncFailed() {}

func (m *NoopMetrics) SetQueued(n int64) {}
