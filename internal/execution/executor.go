package execution

import (
	"context"
	"errors"

	"algocat/internal/domain"
	"algocat/internal/registry"
)

// ErrCasesFailed is returned by commands when a run finished with failed cases
var ErrCasesFailed = errors.New("one or more cases failed")

// Executor executes cases and returns the report
type Executor interface {
	Execute(ctx context.Context, cases []registry.Case) (*domain.Report, error)
}

// Progress receives running pass/fail totals while cases execute
type Progress interface {
	Update(passed, failed int)
	Finish()
}
