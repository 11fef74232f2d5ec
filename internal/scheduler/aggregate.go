package scheduler

import (
	"sync"

	"github.com/tanq16/filescooper/internal/utils"
)

// ResultAggregate collects one outcome per task across workers. Every
// append happens under the mutex; readers get copies once the run is done.
type ResultAggregate struct {
	mu         sync.Mutex
	successes  []utils.Outcome
	skips      []utils.Outcome
	failures   []utils.Outcome
	totalBytes uint64
}

func NewResultAggregate() *ResultAggregate {
	return &ResultAggregate{}
}

func (a *ResultAggregate) Record(outcome utils.Outcome) {
	a.mu.Lock()
	defer a.mu.Unlock()
	switch outcome.Status {
	case utils.StatusSuccess:
		a.successes = append(a.successes, outcome)
		a.totalBytes += uint64(outcome.Size)
	case utils.StatusSkipped:
		a.skips = append(a.skips, outcome)
	case utils.StatusFailed:
		a.failures = append(a.failures, outcome)
	}
}

func (a *ResultAggregate) Successes() []utils.Outcome {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]utils.Outcome(nil), a.successes...)
}

func (a *ResultAggregate) Skips() []utils.Outcome {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]utils.Outcome(nil), a.skips...)
}

func (a *ResultAggregate) Failures() []utils.Outcome {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]utils.Outcome(nil), a.failures...)
}

func (a *ResultAggregate) TotalBytes() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.totalBytes
}

func (a *ResultAggregate) Total() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.successes) + len(a.skips) + len(a.failures)
}
