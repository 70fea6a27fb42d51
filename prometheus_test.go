package threadpool

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPromMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := NewPromMetrics(reg)

	m.IncSubmitted()
	m.IncSubmitted()
	m.IncExecuted()
	m.IncFailed()
	m.SetQueued(5)

	if got := testutil.ToFloat64(m.submitted); got != 2 {
		t.Fatalf("submitted = %v; want 2", got)
	}
	if got := testutil.ToFloat64(m.executed); got != 1 {
		t.Fatalf("executed = %v; want 1", got)
	}
	if got := testutil.ToFloat64(m.failed); got != 1 {
		t.Fatalf("failed = %v; want 1", got)
	}
	if got := testutil.ToFloat64(m.queued); got != 5 {
		t.Fatalf("queued = %v; want 5", got)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	want := map[string]bool{
		"threadpool_jobs_submitted_total": false,
		"threadpool_jobs_executed_total":  false,
		"threadpool_jobs_failed_total":    false,
		"threadpool_jobs_queued":          false,
	}
	for _, mf := range families {
		if _, ok := want[mf.GetName()]; ok {
			want[mf.GetName()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Fatalf("metric %s not registered", name)
		}
	}
}
