package execution

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algocat/internal/check"
	"algocat/internal/config"
	"algocat/internal/domain"
	"algocat/internal/registry"
)

type countingProgress struct {
	updates  int
	passed   int
	failed   int
	finished bool
}

func (p *countingProgress) Update(passed, failed int) {
	p.updates++
	p.passed, p.failed = passed, failed
}

func (p *countingProgress) Finish() { p.finished = true }

func newPool(workers int) *WorkerPool {
	cfg := config.New()
	cfg.Processors = workers
	return NewWorkerPool(cfg, NewRunner(nil), NewRoundRobinScheduler(), nil)
}

// buildCases registers n cases; every third one fails.
func buildCases(t *testing.T, n int, visits *[]atomic.Int32) []registry.Case {
	t.Helper()
	reg := registry.New()
	for i := 0; i < n; i++ {
		require.NoError(t, reg.Register(fmt.Sprintf("group%02d", i), "ExampleOne", func(c *check.C) {
			(*visits)[i].Add(1)
			local := []int{i, i}
			local[0]++
			c.Equal(i+1, local[0], "fresh local data")
			if i%3 == 2 {
				c.Equal(0, 1, "planned failure")
			}
		}))
	}
	return reg.Cases()
}

var ignoreTiming = cmpopts.IgnoreFields(domain.CaseResult{}, "Duration")

func TestWorkerPool_ExecuteOrderAndVisits(t *testing.T) {
	for _, workers := range []int{1, 3, 8} {
		t.Run(fmt.Sprintf("%d workers", workers), func(t *testing.T) {
			visits := make([]atomic.Int32, 20)
			cases := buildCases(t, 20, &visits)
			progress := &countingProgress{}
			pool := newPool(workers)
			pool.SetProgress(progress)

			report, err := pool.Execute(context.Background(), cases)
			require.NoError(t, err)

			require.Len(t, report.Results, 20)
			for i, res := range report.Results {
				assert.Equal(t, cases[i].ID, res.ID, "result %d out of order", i)
				assert.Equal(t, int32(1), visits[i].Load(), "case %d visited once", i)
				assert.Equal(t, i%3 != 2, res.Passed)
				assert.False(t, res.Skipped)
			}
			passed, failed, skipped := report.Counts()
			assert.Equal(t, [3]int{14, 6, 0}, [3]int{passed, failed, skipped})
			assert.Equal(t, 20, progress.updates)
			assert.True(t, progress.finished)
			assert.Equal(t, workers, report.Workers)
			assert.NotEmpty(t, report.RunID)
		})
	}
}

func TestWorkerPool_Idempotent(t *testing.T) {
	visits := make([]atomic.Int32, 10)
	cases := buildCases(t, 10, &visits)
	pool := newPool(4)

	first, err := pool.Execute(context.Background(), cases)
	require.NoError(t, err)
	second, err := pool.Execute(context.Background(), cases)
	require.NoError(t, err)

	if diff := cmp.Diff(first.Results, second.Results, ignoreTiming); diff != "" {
		t.Errorf("reports differ between runs (-first +second):\n%s", diff)
	}
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestWorkerPool_FailFast(t *testing.T) {
	visits := make([]atomic.Int32, 9)
	cases := buildCases(t, 9, &visits)

	report, err := newPool(1).ExecuteWithOptions(context.Background(), cases, true)
	require.NoError(t, err)

	passed, failed, skipped := report.Counts()
	assert.Equal(t, 2, passed)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 6, skipped)
	assert.Equal(t, "FAIL", report.Results[2].Status())
	assert.Equal(t, "SKIP", report.Results[3].Status())
	assert.Equal(t, int32(0), visits[3].Load())
}

func TestWorkerPool_CancelledContext(t *testing.T) {
	visits := make([]atomic.Int32, 3)
	cases := buildCases(t, 3, &visits)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newPool(2).Execute(ctx, cases)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_Empty(t *testing.T) {
	report, err := newPool(2).Execute(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, report.Results)
	assert.True(t, report.Passed())
}

func TestRunner_RecoversPanic(t *testing.T) {
	c := registry.Case{
		ID: domain.CaseID{Group: "at", Name: "OutOfRange"},
		Fn: func(c *check.C) {
			c.Equal(1, 2, "before the panic")
			var s []int
			_ = s[3]
		},
	}

	result := NewRunner(nil).Run(c)

	assert.False(t, result.Passed)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "before the panic", result.Failures[0].Message)
	assert.Contains(t, result.Failures[1].Message, "panic: runtime error: index out of range")
}
