// Package threadpool provides a fixed-size worker pool that executes
// jobs ordered by a three-level priority scheme and hands each caller
// a Future for the job's eventual value or failure.
//
// Design goals
//
// The package is built around a deliberately simple concurrency model:
//
//   - One coarse-grained lock guards all queue state
//   - Workers sleep on a condition variable, never spin
//   - Job execution always happens outside the lock
//   - A submitted job runs exactly once, on exactly one worker
//
// Rather than optimizing the scheduler itself, threadpool optimizes
// for predictability: strict FIFO order within a priority level,
// strict preference for higher levels at every selection instant, and
// failures that are always observable through the submitting caller's
// Future.
//
// Architecture overview
//
// The pool is composed of three layers:
//
//   1. Queueing (priorityJobQueue)
//      Three FIFO queues, one per level {Normal, High, Critical}.
//      Selection scans Critical down to Normal and takes the front of
//      the first non-empty queue.
//
//   2. Execution (Pool / workers)
//      A fixed number of worker goroutines, chosen at construction
//      and never resized. Each runs a wait/select/execute loop
//      against the shared state.
//
//   3. Job lifecycle
//      Jobs carry their function, optional context, priority,
//      optional retry policy and optional cleanup logic. Each is
//      paired at submission with a single-assignment Future.
//
// Ordering model
//
// Within one priority level, jobs execute in submission order. Across
// levels, the highest non-empty level always wins; a sustained stream
// of Critical jobs starves High and Normal. That starvation is the
// documented contract, not a bug: callers needing fairness should not
// be splitting their work across levels.
//
// Shutdown
//
// Shutdown flips the running flag exactly once, wakes every worker
// and waits for all of them to terminate. Workers drain the queues
// before exiting, so every accepted job still gets an outcome.
// Submissions after shutdown begins fail with ErrPoolClosed.
//
// Error handling
//
// The pool distinguishes between two classes of errors:
//
//   - Job errors: returned by job functions, produced by panic
//     recovery, or caused by a context dead before execution. They
//     are stored in the job's Future and re-surface on Get.
//   - Internal errors: unexpected failures inside the pool itself,
//     reported via the OnInternalError handler.
//
// Neither class ever terminates a worker or destabilizes the pool.
//
// Observability
//
// Pool activity is reported through the MetricsPolicy interface.
// AtomicMetrics offers cheap in-process counters, PromMetrics exports
// them to a Prometheus registerer, NoopMetrics discards everything.
//
// Intended use cases
//
// threadpool is well suited for:
//
//   - Mixed workloads where some jobs must jump the queue
//   - Callers that need per-job results and failures, not just
//     fire-and-forget execution
//   - Systems where bounded, fixed parallelism is a feature
//
// It is not a general-purpose goroutine replacement, and it does not
// attempt work-stealing, dynamic resizing or cross-process dispatch.
package threadpool
