package domain

// CaseID identifies an example case; the (Group, Name) pair is unique in a registry
type CaseID struct {
	Group string `json:"group" yaml:"group"` // Algorithm name, e.g. "stable_sort"
	Name  string `json:"name" yaml:"name"`   // Case name, e.g. "ExampleOne"
}

// String returns the id as "group/name"
func (id CaseID) String() string {
	return id.Group + "/" + id.Name
}
