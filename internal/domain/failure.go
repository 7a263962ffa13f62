package domain

import "fmt"

// Failure is one mismatched assertion inside a case
type Failure struct {
	Message  string `json:"message" yaml:"message"`
	Expected string `json:"expected,omitempty" yaml:"expected,omitempty"`
	Actual   string `json:"actual,omitempty" yaml:"actual,omitempty"`
	Diff     string `json:"diff,omitempty" yaml:"diff,omitempty"`
	Resolved bool   `json:"resolved,omitempty" yaml:"resolved,omitempty"` // Track if failure is marked as resolved in the viewer
}

// String renders the failure on one line
func (f Failure) String() string {
	if f.Expected == "" && f.Actual == "" {
		return f.Message
	}
	return fmt.Sprintf("%s: expected %s, actual %s", f.Message, f.Expected, f.Actual)
}
