package threadpool

// Options configure a Pool beyond its worker count.
//
// The zero value is usable: no retries, no metrics, no pinning.
type Options struct {
	// DefaultRetry applies to jobs that carry no RetryPolicy of
	// their own. The zero policy means a single attempt.
	DefaultRetry RetryPolicy

	// Metrics receives submission and execution counters. Nil
	// selects NoopMetrics.
	Metrics MetricsPolicy

	// PinWorkers locks each worker to an OS thread and, on Linux,
	// pins it to a CPU. Useful for cache-sensitive workloads only.
	PinWorkers bool

	// OnJobError and OnInternalError are copied onto the Pool.
	OnJobError      func(error)
	OnInternalError func(error)
}

func (o *Options) fillDefaults() {
	if o.Metrics == nil {
		o.Metrics = &NoopMetrics{}
	}
}
