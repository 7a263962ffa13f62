package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"algocat/internal/domain"
	"algocat/internal/registry"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	m.Run()
}

func TestFormatter_Heading(t *testing.T) {
	f := NewFormatter(&bytes.Buffer{})
	tests := []struct {
		category string
		want     string
	}{
		{"non-modifying", "Non Modifying"},
		{"binary-search", "Binary Search"},
		{"heap", "Heap"},
		{"", "Uncategorized"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Heading(tt.category))
		})
	}
}

func TestFormatter_PrintSummary(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.Report{
		RunID:    "run-1",
		Duration: 2 * time.Second,
		Workers:  4,
		Results: []domain.CaseResult{
			{ID: domain.CaseID{Group: "search", Name: "ExampleOne"}, Passed: true},
			{
				ID:       domain.CaseID{Group: "set_union", Name: "ExampleOne"},
				Failures: []domain.Failure{{Message: "union", Expected: "[1 2]", Actual: "[1]"}},
			},
		},
	}

	NewFormatter(&buf).PrintSummary(report)
	out := buf.String()

	assert.Contains(t, out, "Total Cases")
	assert.Contains(t, out, "1 case(s) failed with 1 failed check(s)")
	assert.Contains(t, out, "set_union\n  |_ExampleOne\n     |_union: expected [1 2], actual [1]\n")
	assert.NotContains(t, out, "search\n")
}

func TestFormatter_PrintSummaryAllPassed(t *testing.T) {
	var buf bytes.Buffer
	report := &domain.Report{Results: []domain.CaseResult{{ID: domain.CaseID{Group: "sort", Name: "ExampleOne"}, Passed: true}}}

	NewFormatter(&buf).PrintSummary(report)
	assert.Contains(t, buf.String(), "All cases passed")
}

func TestFormatter_PrintCaseList(t *testing.T) {
	list := []registry.Case{
		{ID: domain.CaseID{Group: "all_of", Name: "ExampleOne"}, Category: "non-modifying"},
		{ID: domain.CaseID{Group: "all_of", Name: "ExampleTwo"}, Category: "non-modifying"},
		{ID: domain.CaseID{Group: "make_heap", Name: "ExampleOne"}, Category: "heap"},
	}
	failed := map[domain.CaseID]bool{{Group: "make_heap", Name: "ExampleOne"}: true}

	t.Run("groups", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintCaseList(list, false, failed)
		want := strings.Join([]string{
			"Found 3 case(s) in 2 group(s):",
			"",
			"Non Modifying",
			"└── all_of",
			"",
			"Heap",
			"└── make_heap [F]",
			"",
		}, "\n")
		assert.Equal(t, want, buf.String())
	})

	t.Run("cases", func(t *testing.T) {
		var buf bytes.Buffer
		NewFormatter(&buf).PrintCaseList(list, true, nil)
		assert.Contains(t, buf.String(), "└── all_of\n    ├── ExampleOne\n    └── ExampleTwo\n")
	})
}

func TestFormatter_PrintHistory(t *testing.T) {
	var buf bytes.Buffer
	NewFormatter(&buf).PrintHistory(nil)
	assert.Contains(t, buf.String(), "No runs recorded yet")

	buf.Reset()
	NewFormatter(&buf).PrintHistory([]domain.RunSummary{{RunID: "run-1", Total: 3, Passed: 2, Failed: 1}})
	assert.Contains(t, buf.String(), "run-1")
}

func TestToggleResolved(t *testing.T) {
	res := domain.CaseResult{Failures: []domain.Failure{{Message: "a", Resolved: true}, {Message: "b"}}}
	assert.False(t, isResolved(res))

	toggleResolved(&res)
	assert.True(t, isResolved(res))

	toggleResolved(&res)
	assert.False(t, res.Failures[0].Resolved)
	assert.False(t, res.Failures[1].Resolved)
}

func TestFormatCaseDetails(t *testing.T) {
	res := domain.CaseResult{
		ID:       domain.CaseID{Group: "search", Name: "ExampleOne"},
		Failures: []domain.Failure{{Message: "position", Expected: "2", Actual: "7"}},
	}
	out := formatCaseDetails(res)
	assert.Contains(t, out, "search/ExampleOne")
	assert.Contains(t, out, "expected: 2")
	assert.Contains(t, out, "actual:   7")
}
