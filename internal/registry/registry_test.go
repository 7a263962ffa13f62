package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"algocat/internal/check"
	"algocat/internal/domain"
)

func noop(*check.C) {}

func TestRegistry_Register(t *testing.T) {
	r := New()

	require.NoError(t, r.Register("any_of", "ExampleOne", noop))
	require.NoError(t, r.Register("any_of", "ExampleTwo", noop))
	require.NoError(t, r.Register("all_of", "ExampleOne", noop))

	assert.Equal(t, 3, r.Len())
	var ids []string
	for _, c := range r.Cases() {
		ids = append(ids, c.ID.String())
	}
	assert.Equal(t, []string{"any_of/ExampleOne", "any_of/ExampleTwo", "all_of/ExampleOne"}, ids)
	assert.Equal(t, []string{"any_of", "all_of"}, r.Groups())
}

func TestRegistry_DuplicateCase(t *testing.T) {
	r := New()
	require.NoError(t, r.Register("count", "ExampleOne", noop))

	err := r.Register("count", "ExampleOne", noop)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateCase))
	var dup *DuplicateCaseError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, domain.CaseID{Group: "count", Name: "ExampleOne"}, dup.ID)
	assert.Equal(t, 1, r.Len(), "rejected case must not be stored")
}

func TestRegistry_InvalidNames(t *testing.T) {
	tests := []struct {
		name  string
		group string
		cname string
		fn    func(*check.C)
	}{
		{name: "empty group", group: "", cname: "ExampleOne", fn: noop},
		{name: "slash in name", group: "find", cname: "a/b", fn: noop},
		{name: "space in group", group: "find if", cname: "ExampleOne", fn: noop},
		{name: "nil body", group: "find", cname: "ExampleOne", fn: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New().Register(tt.group, tt.cname, tt.fn)
			assert.ErrorIs(t, err, ErrInvalidName)
		})
	}
}

func TestSection_StickyError(t *testing.T) {
	r := New()
	s := r.Section("sorting operations")

	s.Add("sort", "ExampleOne", noop)
	s.Add("sort", "ExampleOne", noop)
	s.Add("sort", "ExampleTwo", noop)

	assert.ErrorIs(t, r.Err(), ErrDuplicateCase)
	assert.Equal(t, 1, r.Len(), "adds after the first error are ignored")

	c, ok := r.Lookup(domain.CaseID{Group: "sort", Name: "ExampleOne"})
	require.True(t, ok)
	assert.Equal(t, "sorting operations", c.Category)
}
