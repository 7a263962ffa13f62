// Package check provides the assertion primitive used by example cases.
//
// Assertions never stop the case: a mismatch is recorded and the case body
// carries on, so every check in a case is evaluated.
package check

import (
	"fmt"
	"strconv"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"algocat/internal/domain"
)

// Nil and empty slices and maps are interchangeable in the examples: an
// algorithm returning an empty result may allocate or not.
var equateEmpty = cmpopts.EquateEmpty()

// C records the assertion outcomes of one running case.
// A C is used by a single case and is not safe for concurrent use.
type C struct {
	failures []domain.Failure
}

// New returns a C with no recorded failures
func New() *C {
	return &C{}
}

// Equal reports whether expected and actual are equal by value and records a
// failure described by message when they are not.
func (c *C) Equal(expected, actual any, message string) bool {
	if cmp.Equal(expected, actual, equateEmpty) {
		return true
	}
	c.failures = append(c.failures, domain.Failure{
		Message:  message,
		Expected: render(expected),
		Actual:   render(actual),
		Diff:     cmp.Diff(expected, actual, equateEmpty),
	})
	return false
}

// True records a failure described by message unless cond holds.
func (c *C) True(cond bool, message string) bool {
	return c.Equal(true, cond, message)
}

// False records a failure described by message if cond holds.
func (c *C) False(cond bool, message string) bool {
	return c.Equal(false, cond, message)
}

// Errorf records a failure with a formatted message and no expected/actual pair.
func (c *C) Errorf(format string, args ...any) {
	c.failures = append(c.failures, domain.Failure{Message: fmt.Sprintf(format, args...)})
}

// Failed reports whether any assertion failed
func (c *C) Failed() bool {
	return len(c.failures) > 0
}

// Failures returns the recorded failures in the order they happened
func (c *C) Failures() []domain.Failure {
	return c.failures
}

func render(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprintf("%v", v)
	}
}
