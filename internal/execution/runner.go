package execution

import (
	"fmt"
	"runtime/debug"
	"time"

	"go.uber.org/zap"

	"algocat/internal/check"
	"algocat/internal/domain"
	"algocat/internal/logging"
	"algocat/internal/registry"
)

// Runner executes a single case
type Runner struct {
	logger *zap.Logger
}

// NewRunner creates a new Runner
func NewRunner(logger *zap.Logger) *Runner {
	return &Runner{logger: logging.OrNop(logger)}
}

// Run executes one case against a fresh checker. A panic in the case body is
// recorded as a failure instead of ending the run.
func (r *Runner) Run(c registry.Case) domain.CaseResult {
	checker := check.New()
	start := time.Now()

	p := r.call(c, checker)
	failures := checker.Failures()
	if p != nil {
		failures = append(failures, *p)
	}

	result := domain.CaseResult{
		ID:       c.ID,
		Category: c.Category,
		Passed:   len(failures) == 0,
		Failures: failures,
		Duration: time.Since(start),
	}

	r.logger.Debug("case finished",
		zap.String("case", c.ID.String()),
		zap.Bool("passed", result.Passed),
		zap.Int("failures", len(result.Failures)),
		zap.Duration("duration", result.Duration))

	return result
}

func (r *Runner) call(c registry.Case, checker *check.C) (panicFailure *domain.Failure) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("case panicked",
				zap.String("case", c.ID.String()),
				zap.Any("panic", p),
				zap.ByteString("stack", debug.Stack()))
			panicFailure = &domain.Failure{Message: fmt.Sprintf("panic: %v", p)}
		}
	}()
	c.Fn(checker)
	return nil
}
