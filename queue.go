package threadpool

const initialQueueCapacity = 64

// fifoQueue is a growable circular buffer of tasks. Unlike a bounded
// ring it never drops a submission: when full it doubles its capacity.
//
// It is not safe for concurrent use; callers hold the pool lock.
type fifoQueue struct {
	buf        []*task // circular buffer
	head, tail int     // read/write indices
	size       int     // number of tasks currently buffered
}

// push inserts a task at the tail, growing the buffer when full.
func (q *fifoQueue) push(t *task) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[q.tail] = t
	q.tail++
	if q.tail == len(q.buf) {
		q.tail = 0
	}
	q.size++
}

// pop removes and returns the oldest task, or nil and false when empty.
func (q *fifoQueue) pop() (*task, bool) {
	if q.size == 0 {
		return nil, false
	}
	t := q.buf[q.head]
	q.buf[q.head] = nil // release for GC
	q.head++
	if q.head == len(q.buf) {
		q.head = 0
	}
	q.size--
	return t, true
}

func (q *fifoQueue) len() int { return q.size }

// grow doubles the buffer and unrolls the ring so head is at index 0.
func (q *fifoQueue) grow() {
	capacity := len(q.buf) * 2
	if capacity == 0 {
		capacity = initialQueueCapacity
	}
	buf := make([]*task, capacity)
	for i := 0; i < q.size; i++ {
		buf[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	q.buf = buf
	q.head = 0
	q.tail = q.size
}

// priorityJobQueue holds one FIFO queue per priority level.
//
// It is the queue set behind the pool's single lock: every method must
// be called with that lock held. Thread safety is deliberately left to
// the caller so that push, selection and the running-flag check share
// one critical section.
type priorityJobQueue struct {
	levels [numLevels]fifoQueue
	size   int
}

// push appends the task to the tail of its level's queue.
func (pq *priorityJobQueue) push(t *task) {
	pq.levels[t.priority].push(t)
	pq.size++
}

// popHighest scans levels from Critical down to Normal and removes the
// front task of the first non-empty one. It returns nil and false when
// every level is empty.
func (pq *priorityJobQueue) popHighest() (*task, bool) {
	for lvl := int(Critical); lvl >= int(Normal); lvl-- {
		if t, ok := pq.levels[lvl].pop(); ok {
			pq.size--
			return t, true
		}
	}
	return nil, false
}

// len returns the total number of queued tasks across all levels.
func (pq *priorityJobQueue) len() int { return pq.size }

// lenAt returns the number of queued tasks at one level.
func (pq *priorityJobQueue) lenAt(p Priority) int {
	if !p.valid() {
		return 0
	}
	return pq.levels[p].len()
}
