package storage

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algocat/internal/config"
	"algocat/internal/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		RunID:     "6f1c2a9e-0d3b-4c57-9a51-2b8e7f4d1a60",
		StartedAt: time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Duration:  1500 * time.Millisecond,
		Workers:   4,
		Results: []domain.CaseResult{
			{ID: domain.CaseID{Group: "any_of", Name: "ExampleOne"}, Category: "non-modifying", Passed: true, Duration: time.Millisecond},
			{
				ID:       domain.CaseID{Group: "set_union", Name: "ExampleOne"},
				Category: "set",
				Failures: []domain.Failure{{Message: "union", Expected: "[1 2 3]", Actual: "[1 2]", Resolved: true}},
			},
			{ID: domain.CaseID{Group: "sort", Name: "ExampleOne"}, Skipped: true},
		},
	}
}

func TestStorage_RoundTrip(t *testing.T) {
	for _, format := range config.OutputFormats {
		t.Run(format, func(t *testing.T) {
			cfg := config.New()
			cfg.ProjectPath = t.TempDir()
			cfg.OutputFormat = format

			store, err := New(cfg)
			require.NoError(t, err)

			want := sampleReport()
			require.NoError(t, store.Save(want))
			assert.FileExists(t, cfg.GetOutputPath())

			got, err := store.Load()
			require.NoError(t, err)
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestStorage_LoadMissing(t *testing.T) {
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()

	_, err := NewJSONStorage(cfg).Load()
	assert.ErrorContains(t, err, "read results file")
}

func TestNew_UnsupportedFormat(t *testing.T) {
	cfg := config.New()
	cfg.OutputFormat = "xml"

	_, err := New(cfg)
	assert.Error(t, err)
}
