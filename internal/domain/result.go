package domain

import "time"

// CaseResult represents the outcome of executing one case
type CaseResult struct {
	ID       CaseID        `json:"id" yaml:"id"`
	Category string        `json:"category,omitempty" yaml:"category,omitempty"`
	Passed   bool          `json:"passed" yaml:"passed"`
	Skipped  bool          `json:"skipped,omitempty" yaml:"skipped,omitempty"` // Not executed, e.g. after a fail-fast stop
	Failures []Failure     `json:"failures,omitempty" yaml:"failures,omitempty"`
	Duration time.Duration `json:"duration_ns" yaml:"duration_ns"`
}

// Status returns PASS, FAIL or SKIP
func (r CaseResult) Status() string {
	switch {
	case r.Skipped:
		return "SKIP"
	case r.Passed:
		return "PASS"
	default:
		return "FAIL"
	}
}

// Report is the complete outcome of a run, results in registration order
type Report struct {
	RunID     string        `json:"run_id" yaml:"run_id"`
	StartedAt time.Time     `json:"started_at" yaml:"started_at"`
	Duration  time.Duration `json:"duration_ns" yaml:"duration_ns"`
	Workers   int           `json:"workers" yaml:"workers"`
	Results   []CaseResult  `json:"results" yaml:"results"`
}

// Counts returns the number of passed, failed and skipped cases
func (r *Report) Counts() (passed, failed, skipped int) {
	for _, res := range r.Results {
		switch {
		case res.Skipped:
			skipped++
		case res.Passed:
			passed++
		default:
			failed++
		}
	}
	return passed, failed, skipped
}

// Passed reports whether no case failed
func (r *Report) Passed() bool {
	_, failed, _ := r.Counts()
	return failed == 0
}

// Failed returns the failed results in report order
func (r *Report) Failed() []CaseResult {
	var out []CaseResult
	for _, res := range r.Results {
		if !res.Passed && !res.Skipped {
			out = append(out, res)
		}
	}
	return out
}

// FailureCount returns the total number of failed assertions
func (r *Report) FailureCount() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Failures)
	}
	return n
}

// Summary condenses the report into a history row
func (r *Report) Summary() RunSummary {
	passed, failed, skipped := r.Counts()
	return RunSummary{
		RunID:     r.RunID,
		StartedAt: r.StartedAt,
		Duration:  r.Duration,
		Workers:   r.Workers,
		Total:     len(r.Results),
		Passed:    passed,
		Failed:    failed,
		Skipped:   skipped,
	}
}

// RunSummary is one row of the run history
type RunSummary struct {
	RunID     string
	StartedAt time.Time
	Duration  time.Duration
	Workers   int
	Total     int
	Passed    int
	Failed    int
	Skipped   int
}
