package discovery

import (
	"path"
	"strings"

	"algocat/internal/domain"
	"algocat/internal/registry"
)

// Filter filters cases by name pattern or by a previous report
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters cases by name pattern using wildcard matching against
// "group/name". Supports patterns like "stable_*", "*/ExampleTwo" or "*sort*"
func (f *Filter) FilterByName(cases []registry.Case, pattern string) []registry.Case {
	if pattern == "" {
		return cases
	}

	var filtered []registry.Case

	for _, c := range cases {
		if f.matches(c.ID, pattern) {
			filtered = append(filtered, c)
		}
	}

	return filtered
}

func (f *Filter) matches(id domain.CaseID, pattern string) bool {
	full := id.String()

	// A pattern without '/' is matched against the group alone first
	if !strings.Contains(pattern, "/") {
		if matched, err := path.Match(pattern, id.Group); err == nil && matched {
			return true
		}
	}
	if matched, err := path.Match(pattern, full); err == nil && matched {
		return true
	}

	// "*sort*" style patterns also match the pieces between stars anywhere
	// in the id; other wildcard patterns are answered by path.Match alone.
	if strings.Contains(pattern, "*") {
		if len(pattern) < 2 || !strings.HasPrefix(pattern, "*") || !strings.HasSuffix(pattern, "*") {
			return false
		}
		hasNonEmptyPart := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			hasNonEmptyPart = true
			if !strings.Contains(full, part) {
				return false
			}
		}
		return hasNonEmptyPart
	}

	// If no wildcards, do a simple contains check
	if !strings.Contains(pattern, "?") {
		return strings.Contains(full, pattern)
	}
	return false
}

// OnlyFailed keeps the cases that did not pass in last: failed ones and
// those skipped by fail-fast. A nil report keeps nothing.
func (f *Filter) OnlyFailed(cases []registry.Case, last *domain.Report) []registry.Case {
	if last == nil {
		return nil
	}
	failed := make(map[domain.CaseID]bool)
	for _, res := range last.Results {
		if !res.Passed {
			failed[res.ID] = true
		}
	}

	var filtered []registry.Case
	for _, c := range cases {
		if failed[c.ID] {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
