package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestC_Equal(t *testing.T) {
	tests := []struct {
		name     string
		expected any
		actual   any
		pass     bool
	}{
		{name: "equal ints", expected: 3, actual: 3, pass: true},
		{name: "different ints", expected: 3, actual: 4, pass: false},
		{name: "equal slices", expected: []int{1, 2}, actual: []int{1, 2}, pass: true},
		{name: "nil and empty slice", expected: []int{}, actual: []int(nil), pass: true},
		{name: "different types", expected: 3, actual: int64(3), pass: false},
		{name: "structs", expected: struct{ A int }{1}, actual: struct{ A int }{1}, pass: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			assert.Equal(t, tt.pass, c.Equal(tt.expected, tt.actual, tt.name))
			assert.Equal(t, !tt.pass, c.Failed())
		})
	}
}

func TestC_FailuresAccumulate(t *testing.T) {
	c := New()

	c.Equal(2, 3, "first")
	c.True(true, "holds")
	c.False(true, "second")
	c.Errorf("third %d", 3)

	failures := c.Failures()
	require.Len(t, failures, 3)
	assert.Equal(t, "first", failures[0].Message)
	assert.Equal(t, "2", failures[0].Expected)
	assert.Equal(t, "3", failures[0].Actual)
	assert.NotEmpty(t, failures[0].Diff)
	assert.Equal(t, "second", failures[1].Message)
	assert.Equal(t, "false", failures[1].Expected)
	assert.Equal(t, "third 3", failures[2].Message)
	assert.Empty(t, failures[2].Expected)
}

func TestRender(t *testing.T) {
	assert.Equal(t, `"Ford"`, render("Ford"))
	assert.Equal(t, "97", render('a'))
	assert.Equal(t, "[1 2 3]", render([]int{1, 2, 3}))
}

func TestC_EqualInt32RendersNumbers(t *testing.T) {
	c := New()

	c.Equal(int32(42), int32(43), "int32 sum")

	require.Len(t, c.Failures(), 1)
	assert.Equal(t, "42", c.Failures()[0].Expected)
	assert.Equal(t, "43", c.Failures()[0].Actual)
}
