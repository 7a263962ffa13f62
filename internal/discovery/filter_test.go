package discovery

import (
	"strings"
	"testing"

	"algocat/internal/check"
	"algocat/internal/domain"
	"algocat/internal/registry"
)

func casesOf(ids ...string) []registry.Case {
	var cases []registry.Case
	for _, id := range ids {
		group, name, _ := strings.Cut(id, "/")
		cases = append(cases, registry.Case{ID: domain.CaseID{Group: group, Name: name}, Fn: func(*check.C) {}})
	}
	return cases
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	all := casesOf("sort/ExampleOne", "stable_sort/ExampleOne", "stable_sort/ExampleTwo", "find/ExampleOne", "partial_sort/ExampleOne")

	tests := []struct {
		name     string
		pattern  string
		expected int // Expected number of matches
	}{
		{name: "empty pattern returns all", pattern: "", expected: 5},
		{name: "exact group", pattern: "find", expected: 1},
		{name: "wildcard group prefix", pattern: "stable_*", expected: 2},
		{name: "wildcard case name", pattern: "*/ExampleTwo", expected: 1},
		{name: "wildcard substring", pattern: "*sort*", expected: 4},
		{name: "prefix wildcard", pattern: "sort*", expected: 1},
		{name: "suffix wildcard", pattern: "*_sort", expected: 3},
		{name: "prefix wildcard does not match mid-id", pattern: "sort*/ExampleTwo", expected: 0},
		{name: "simple contains match", pattern: "partial", expected: 1},
		{name: "full id", pattern: "stable_sort/ExampleOne", expected: 1},
		{name: "no matches", pattern: "*heap*", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(all, tt.pattern)
			if len(result) != tt.expected {
				t.Errorf("expected %d matches, got %d", tt.expected, len(result))
			}
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty case list", func(t *testing.T) {
		result := filter.FilterByName(nil, "*sort*")
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d items", len(result))
		}
	})

	t.Run("keeps registration order", func(t *testing.T) {
		result := filter.FilterByName(casesOf("b/ExampleOne", "a/ExampleOne", "b/ExampleTwo"), "b")
		if len(result) != 2 || result[0].ID.Name != "ExampleOne" || result[1].ID.Name != "ExampleTwo" {
			t.Errorf("unexpected result order: %v", result)
		}
	})
}

func TestFilter_OnlyFailed(t *testing.T) {
	filter := NewFilter()
	all := casesOf("count/ExampleOne", "count_if/ExampleOne", "find/ExampleOne")
	last := &domain.Report{Results: []domain.CaseResult{
		{ID: domain.CaseID{Group: "count", Name: "ExampleOne"}, Passed: true},
		{ID: domain.CaseID{Group: "find", Name: "ExampleOne"}, Passed: false},
	}}

	result := filter.OnlyFailed(all, last)
	if len(result) != 1 || result[0].ID.Group != "find" {
		t.Errorf("expected only find/ExampleOne, got %v", result)
	}

	last.Results = append(last.Results, domain.CaseResult{ID: domain.CaseID{Group: "count_if", Name: "ExampleOne"}, Skipped: true})
	result = filter.OnlyFailed(all, last)
	if len(result) != 2 || result[0].ID.Group != "count_if" || result[1].ID.Group != "find" {
		t.Errorf("expected skipped count_if and failed find, got %v", result)
	}

	if got := filter.OnlyFailed(all, nil); len(got) != 0 {
		t.Errorf("expected nothing without a previous report, got %d", len(got))
	}
}
