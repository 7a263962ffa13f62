package execution

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"algocat/internal/config"
	"algocat/internal/domain"
	"algocat/internal/logging"
	"algocat/internal/registry"
)

// WorkerPool manages a pool of workers for parallel case execution
type WorkerPool struct {
	config    *config.Config
	runner    *Runner
	scheduler Scheduler
	progress  Progress
	logger    *zap.Logger
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, scheduler Scheduler, logger *zap.Logger) *WorkerPool {
	return &WorkerPool{
		config:    cfg,
		runner:    runner,
		scheduler: scheduler,
		logger:    logging.OrNop(logger),
	}
}

// SetProgress sets the progress reporter for the worker pool
func (wp *WorkerPool) SetProgress(progress Progress) {
	wp.progress = progress
}

// Execute runs every case exactly once (no fail-fast).
func (wp *WorkerPool) Execute(ctx context.Context, cases []registry.Case) (*domain.Report, error) {
	return wp.ExecuteWithOptions(ctx, cases, false)
}

// ExecuteWithOptions runs cases with optional fail-fast. Results are in the
// order of cases whatever the worker count. With failFast, cases not started
// before the first failure are reported as skipped.
func (wp *WorkerPool) ExecuteWithOptions(ctx context.Context, cases []registry.Case, failFast bool) (*domain.Report, error) {
	workerCount := wp.config.Processors
	if workerCount <= 0 {
		workerCount = 1
	}
	report := &domain.Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Workers:   workerCount,
		Results:   make([]domain.CaseResult, len(cases)),
	}
	for i, c := range cases {
		report.Results[i] = domain.CaseResult{ID: c.ID, Category: c.Category, Skipped: true}
	}
	if len(cases) == 0 {
		return report, nil
	}

	runCtx, stop := context.WithCancel(ctx)
	defer stop()

	var mu sync.Mutex
	var passed, failed int

	g, gctx := errgroup.WithContext(runCtx)
	for _, shard := range wp.scheduler.Schedule(len(cases), workerCount) {
		g.Go(func() error {
			for _, i := range shard {
				if gctx.Err() != nil {
					return nil
				}
				result := wp.runner.Run(cases[i])
				report.Results[i] = result

				mu.Lock()
				if result.Passed {
					passed++
				} else {
					failed++
				}
				if wp.progress != nil {
					wp.progress.Update(passed, failed)
				}
				mu.Unlock()

				if failFast && !result.Passed {
					stop()
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	if wp.progress != nil {
		wp.progress.Finish()
	}
	report.Duration = time.Since(report.StartedAt)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p, f, s := report.Counts()
	wp.logger.Info("run finished",
		zap.String("run_id", report.RunID),
		zap.Int("workers", workerCount),
		zap.Int("passed", p),
		zap.Int("failed", f),
		zap.Int("skipped", s),
		zap.Duration("duration", report.Duration))

	return report, nil
}
