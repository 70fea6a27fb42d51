package threadpool

// reportInternalError reports a non-job failure such as a worker
// setup issue. If no handler is registered, the error is silently
// ignored.
func (p *Pool) reportInternalError(e error) {
	if p.OnInternalError != nil {
		p.OnInternalError(e)
	}
}

// reportJobError reports an error stored in a job's Future. Job errors
// never stop pool execution; the handler is an observation point, the
// Future stays the authoritative carrier.
func (p *Pool) reportJobError(err error) {
	if p.OnJobError != nil {
		p.OnJobError(err)
	}
}
