package threadpool

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	lg "github.com/Andrej220/go-utils/zlog"
)

// sharedState is the pool's single coarse-grained critical section:
// the priority queues, the running flag and the primitives guarding
// them. It is owned exclusively by the Pool; workers touch it only
// under mu, except while actually executing a job, which happens
// unlocked.
type sharedState struct {
	mu      sync.Mutex
	cond    *sync.Cond
	queues  priorityJobQueue
	running bool
	wg      sync.WaitGroup
}

func newSharedState() *sharedState {
	s := &sharedState{running: true}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// next blocks until a task is selectable or the pool is draining dry.
// It returns false only when the pool has stopped and every queue is
// empty, which is the worker's signal to terminate.
//
// The predicate is re-checked after every wakeup to tolerate spurious
// ones. Queued work is still handed out after shutdown begins: the
// pool drains rather than abandoning pending futures.
func (s *sharedState) next() (*task, int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for s.running && s.queues.len() == 0 {
		s.cond.Wait()
	}
	t, ok := s.queues.popHighest()
	return t, s.queues.len(), ok
}

// Pool is a fixed-size set of worker goroutines executing submitted
// jobs ordered by priority. Construct it with New, submit work with
// the package-level Submit, and release it with Stop or Shutdown.
//
// The exported type is a facade: all queue state lives in a privately
// owned sharedState reachable only through the Pool and its workers.
type Pool struct {
	state         *sharedState
	workers       int
	defaultRetry  RetryPolicy
	metrics       MetricsPolicy
	pinWorkers    bool
	activeWorkers atomic.Int32
	stopOnce      sync.Once

	// OnJobError, if set, receives every error stored in a Future,
	// in addition to the Future itself. OnInternalError receives
	// non-job failures such as worker setup issues. Set both before
	// submitting; they must be safe for concurrent use.
	OnJobError      func(error)
	OnInternalError func(error)
}

// New creates a pool with threadCount workers, each entering its
// dispatch loop immediately.
//
// threadCount < 0 selects runtime.GOMAXPROCS(0), the usual choice.
// threadCount == 0 is accepted and yields a pool that accepts jobs but
// never executes them; submitted futures stay pending forever. Callers
// wanting a guaranteed-draining pool must pass a positive count.
func New(threadCount int, opts Options) *Pool {
	if threadCount < 0 {
		threadCount = runtime.GOMAXPROCS(0)
	}
	opts.fillDefaults()

	p := &Pool{
		state:           newSharedState(),
		workers:         threadCount,
		defaultRetry:    opts.DefaultRetry.normalize(),
		metrics:         opts.Metrics,
		pinWorkers:      opts.PinWorkers,
		OnJobError:      opts.OnJobError,
		OnInternalError: opts.OnInternalError,
	}
	for i := 0; i < threadCount; i++ {
		p.state.wg.Add(1)
		go p.worker(i)
	}
	return p
}

// enqueue pushes a task under the lock and wakes exactly one waiting
// worker. It rejects the task once shutdown has begun.
func (p *Pool) enqueue(t *task) error {
	s := p.state
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return ErrPoolClosed
	}
	s.queues.push(t)
	queued := s.queues.len()
	s.cond.Signal()
	s.mu.Unlock()

	p.metrics.IncSubmitted()
	p.metrics.SetQueued(int64(queued))
	return nil
}

// worker runs the dispatch loop: wait, select, execute, repeat. It
// terminates when next reports the pool stopped and drained.
func (p *Pool) worker(id int) {
	defer p.state.wg.Done()

	if p.pinWorkers {
		runtime.LockOSThread()
		if err := PinToCPU(id % runtime.NumCPU()); err != nil {
			p.reportInternalError(fmt.Errorf("threadpool: pin worker %d: %w", id, err))
		}
	}

	for {
		t, queued, ok := p.state.next()
		if !ok {
			return
		}
		p.metrics.SetQueued(int64(queued))

		p.activeWorkers.Add(1)
		p.runTask(t)
		p.activeWorkers.Add(-1)
	}
}

// runTask executes one task with no lock held. Failures and panics are
// funneled into the task's future and never escape the worker.
func (p *Pool) runTask(t *task) {
	logger := lg.FromContext(t.ctx).With(
		lg.String("job_id", t.id),
		lg.String("priority", t.priority.String()),
	)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("job panicked", lg.Any("panic", r))
			err := &PanicError{Value: r}
			t.fail(err)
			p.metrics.IncFailed()
			p.reportJobError(err)
		}
		if t.cleanup != nil {
			t.cleanup()
		}
	}()

	// A job whose context is already dead is not worth starting;
	// its future still gets an outcome.
	if err := t.ctx.Err(); err != nil {
		logger.Info("Job canceled before start", lg.Any("reason", err))
		t.fail(err)
		p.metrics.IncFailed()
		return
	}

	logger.Info("Worker processing job", lg.Int32("active_workers", p.activeWorkers.Load()))
	if err := t.exec(t.ctx); err != nil {
		p.metrics.IncFailed()
		p.reportJobError(err)
		return
	}
	p.metrics.IncExecuted()
	logger.Info("Worker finished", lg.Int32("active_workers", p.activeWorkers.Load()))
}

// Shutdown stops the pool: the running flag flips exactly once, every
// worker is woken, and Shutdown waits until all of them have drained
// the queues and terminated. Further Submit calls fail with
// ErrPoolClosed immediately after Shutdown begins.
//
// Shutdown is idempotent; a second call just waits again. If ctx
// expires first, the error wraps ctx.Err() and workers keep finishing
// in the background.
func (p *Pool) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() {
		s := p.state
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
		s.cond.Broadcast()
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		p.state.wg.Wait()
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("threadpool: shutdown: %w", ctx.Err())
	}
}

// Stop is the blocking form of Shutdown.
func (p *Pool) Stop() { _ = p.Shutdown(context.Background()) }

// Workers returns the fixed worker count chosen at construction.
func (p *Pool) Workers() int { return p.workers }

// ActiveWorkers returns the number of workers currently executing a job.
func (p *Pool) ActiveWorkers() int32 { return p.activeWorkers.Load() }

// Running reports whether the pool still accepts submissions.
func (p *Pool) Running() bool {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	return p.state.running
}

// QueueLen returns the total number of queued, not yet selected jobs.
func (p *Pool) QueueLen() int {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	return p.state.queues.len()
}

// QueueLenAt returns the number of queued jobs at one priority level.
func (p *Pool) QueueLenAt(prio Priority) int {
	p.state.mu.Lock()
	defer p.state.mu.Unlock()
	return p.state.queues.lenAt(prio)
}
