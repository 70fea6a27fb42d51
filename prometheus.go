package threadpool

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PromMetrics is a MetricsPolicy implementation exporting pool
// activity to a Prometheus registerer.
type PromMetrics struct {
	submitted prometheus.Counter
	executed  prometheus.Counter
	failed    prometheus.Counter
	queued    prometheus.Gauge
}

// NewPromMetrics registers the pool's collectors with reg and returns
// the policy. A nil reg selects prometheus.DefaultRegisterer. Use one
// PromMetrics per pool; registering two on the same registerer panics
// on the duplicate collector, as usual with promauto.
func NewPromMetrics(reg prometheus.Registerer) *PromMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &PromMetrics{
		submitted: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "threadpool_jobs_submitted_total",
			Help: "Total number of jobs accepted by Submit.",
		}),
		executed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "threadpool_jobs_executed_total",
			Help: "Total number of jobs that completed successfully.",
		}),
		failed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "threadpool_jobs_failed_total",
			Help: "Total number of jobs that failed, panicked or were canceled before start.",
		}),
		queued: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "threadpool_jobs_queued",
			Help: "Number of jobs waiting in the priority queues.",
		}),
	}
}

func (m *PromMetrics) IncSubmitted() { m.submitted.Inc() }

func (m *PromMetrics) IncExecuted() { m.executed.Inc() }

func (m *PromMetrics) IncFailed() { m.failed.Inc() }

func (m *PromMetrics) SetQueued(n int64) { m.queued.Set(float64(n)) }
