package threadpool

import (
	"testing"
)

func mkTask(prio Priority) *task {
	return &task{priority: prio}
}

func TestFifoQueueOrder(t *testing.T) {
	var q fifoQueue

	tasks := make([]*task, 10)
	for i := range tasks {
		tasks[i] = mkTask(Normal)
		q.push(tasks[i])
	}
	if q.len() != len(tasks) {
		t.Fatalf("len = %d; want %d", q.len(), len(tasks))
	}

	for i := range tasks {
		got, ok := q.pop()
		if !ok {
			t.Fatalf("pop %d: queue unexpectedly empty", i)
		}
		if got != tasks[i] {
			t.Fatalf("pop %d returned wrong task", i)
		}
	}
	if _, ok := q.pop(); ok {
		t.Fatal("pop on empty queue returned a task")
	}
}

func TestFifoQueueGrowthPreservesOrder(t *testing.T) {
	var q fifoQueue

	// Wrap the ring before forcing growth, so head > 0 when the
	// buffer is unrolled.
	for i := 0; i < initialQueueCapacity; i++ {
		q.push(mkTask(Normal))
	}
	for i := 0; i < initialQueueCapacity/2; i++ {
		q.pop()
	}

	tasks := make([]*task, 0, 2*initialQueueCapacity)
	for i := 0; i < 2*initialQueueCapacity; i++ {
		tk := mkTask(Normal)
		tasks = append(tasks, tk)
		q.push(tk)
	}

	// Drain what remained of the first batch.
	for i := 0; i < initialQueueCapacity/2; i++ {
		q.pop()
	}
	for i, want := range tasks {
		got, ok := q.pop()
		if !ok || got != want {
			t.Fatalf("pop %d after growth out of order", i)
		}
	}
}

func TestPopHighestPrefersCritical(t *testing.T) {
	var pq priorityJobQueue

	n := mkTask(Normal)
	h := mkTask(High)
	c := mkTask(Critical)
	pq.push(n)
	pq.push(h)
	pq.push(c)

	want := []*task{c, h, n}
	for i, w := range want {
		got, ok := pq.popHighest()
		if !ok {
			t.Fatalf("popHighest %d: empty", i)
		}
		if got != w {
			t.Fatalf("popHighest %d selected %v; want %v", i, got.priority, w.priority)
		}
	}
	if _, ok := pq.popHighest(); ok {
		t.Fatal("popHighest on empty set returned a task")
	}
}

func TestPopHighestFIFOWithinLevel(t *testing.T) {
	var pq priorityJobQueue

	first := mkTask(High)
	second := mkTask(High)
	pq.push(first)
	pq.push(second)

	if got, _ := pq.popHighest(); got != first {
		t.Fatal("same-level tasks popped out of submission order")
	}
	if got, _ := pq.popHighest(); got != second {
		t.Fatal("same-level tasks popped out of submission order")
	}
}

func TestQueueLenAt(t *testing.T) {
	var pq priorityJobQueue

	pq.push(mkTask(Normal))
	pq.push(mkTask(Normal))
	pq.push(mkTask(Critical))

	if got := pq.len(); got != 3 {
		t.Fatalf("len = %d; want 3", got)
	}
	if got := pq.lenAt(Normal); got != 2 {
		t.Fatalf("lenAt(Normal) = %d; want 2", got)
	}
	if got := pq.lenAt(High); got != 0 {
		t.Fatalf("lenAt(High) = %d; want 0", got)
	}
	if got := pq.lenAt(Priority(7)); got != 0 {
		t.Fatalf("lenAt(invalid) = %d; want 0", got)
	}
}
