package discovery

import (
	"algocat/internal/registry"
)

// Scanner selects the runnable cases from a registry
type Scanner struct {
	skipGroups map[string]bool
}

// NewScanner creates a new Scanner with the given groups to skip
func NewScanner(skipGroups []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, group := range skipGroups {
		skipMap[group] = true
	}
	return &Scanner{skipGroups: skipMap}
}

// Scan returns the registered cases in registration order, without skipped groups
func (s *Scanner) Scan(reg *registry.Registry) []registry.Case {
	var cases []registry.Case
	for _, c := range reg.Cases() {
		if s.skipGroups[c.ID.Group] {
			continue
		}
		cases = append(cases, c)
	}
	return cases
}
