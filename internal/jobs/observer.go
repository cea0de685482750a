package jobs

const (
	OutcomeOK    = "ok"
	OutcomeIdle  = "idle"
	OutcomeError = "error"
)

// JobObserver records the outcome of each job run.
type JobObserver interface {
	ObserveJob(job, outcome string)
}

type nopObserver struct{}

func (nopObserver) ObserveJob(string, string) {}
