// Package registry holds named example cases in registration order.
package registry

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"algocat/internal/check"
	"algocat/internal/domain"
)

var (
	// ErrDuplicateCase is matched by every *DuplicateCaseError
	ErrDuplicateCase = errors.New("duplicate case")
	// ErrInvalidName is returned for empty names or names with whitespace or '/'
	ErrInvalidName = errors.New("invalid case name")
)

// DuplicateCaseError reports a second registration of the same (group, name) pair
type DuplicateCaseError struct {
	ID domain.CaseID
}

func (e *DuplicateCaseError) Error() string {
	return fmt.Sprintf("duplicate case %s", e.ID)
}

// Is makes errors.Is(err, ErrDuplicateCase) hold
func (e *DuplicateCaseError) Is(target error) bool {
	return target == ErrDuplicateCase
}

// Case is a single registered example
type Case struct {
	ID       domain.CaseID
	Category string         // Catalogue section the case belongs to
	Fn       func(*check.C) // Setup, invocation and assertions
}

// Registry owns the registered cases. Cases are immutable once added.
type Registry struct {
	cases []Case
	index map[domain.CaseID]int
	err   error
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{index: make(map[domain.CaseID]int)}
}

// Register adds a case without a category
func (r *Registry) Register(group, name string, fn func(*check.C)) error {
	return r.add("", group, name, fn)
}

func (r *Registry) add(category, group, name string, fn func(*check.C)) error {
	if !validName(group) || !validName(name) {
		return fmt.Errorf("%w: %q/%q", ErrInvalidName, group, name)
	}
	if fn == nil {
		return fmt.Errorf("%w: %s/%s has no body", ErrInvalidName, group, name)
	}
	id := domain.CaseID{Group: group, Name: name}
	if _, exists := r.index[id]; exists {
		return &DuplicateCaseError{ID: id}
	}
	r.index[id] = len(r.cases)
	r.cases = append(r.cases, Case{ID: id, Category: category, Fn: fn})
	return nil
}

// Cases returns the registered cases in registration order
func (r *Registry) Cases() []Case {
	out := make([]Case, len(r.cases))
	copy(out, r.cases)
	return out
}

// Lookup returns the case registered under id
func (r *Registry) Lookup(id domain.CaseID) (Case, bool) {
	i, ok := r.index[id]
	if !ok {
		return Case{}, false
	}
	return r.cases[i], true
}

// Len returns the number of registered cases
func (r *Registry) Len() int {
	return len(r.cases)
}

// Groups returns the distinct group names in first-registration order
func (r *Registry) Groups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, c := range r.cases {
		if !seen[c.ID.Group] {
			seen[c.ID.Group] = true
			groups = append(groups, c.ID.Group)
		}
	}
	return groups
}

// Err returns the first error recorded by a Section
func (r *Registry) Err() error {
	return r.err
}

// Section returns a builder that registers cases under category
func (r *Registry) Section(category string) *Section {
	return &Section{registry: r, category: category}
}

// Section registers cases of one catalogue category. The first failed Add is
// kept on the registry and later Adds are ignored, so a catalogue file can
// register its cases without checking every call.
type Section struct {
	registry *Registry
	category string
}

// Add registers a case in the section's category
func (s *Section) Add(group, name string, fn func(*check.C)) {
	if s.registry.err != nil {
		return
	}
	s.registry.err = s.registry.add(s.category, group, name, fn)
}

func validName(name string) bool {
	if name == "" || strings.Contains(name, "/") {
		return false
	}
	return strings.IndexFunc(name, unicode.IsSpace) < 0
}
