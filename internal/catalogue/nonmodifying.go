package catalogue

import (
	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

func registerNonModifying(s *registry.Section) {
	s.Add("any_of", "ExampleOne", func(c *check.C) {
		numbers := []int{1, 2, 3, 4, 4, 5}
		c.True(algo.AnyOf(numbers, func(i int) bool { return i == 4 }), "some element equals four")
		c.False(algo.AnyOf(numbers, func(i int) bool { return i == 0 }), "no element equals zero")
	})
	s.Add("any_of", "ExampleTwo", func(c *check.C) {
		var numbers []int
		c.False(algo.AnyOf(numbers, func(i int) bool { return i == 4 }), "empty slice: any_of is false")
		c.False(algo.AnyOf(numbers, func(i int) bool { return i == 10 }), "empty slice: any_of is false")
	})

	s.Add("all_of", "ExampleOne", func(c *check.C) {
		allOnes := []int{1, 1, 1, 1}
		c.True(algo.AllOf(allOnes, func(i int) bool { return i == 1 }), "every element equals one")

		notAllOnes := []int{1, 1, 1, 1, 1, 2}
		c.False(algo.AllOf(notAllOnes, func(i int) bool { return i == 1 }), "last element is not one")
	})
	s.Add("all_of", "ExampleTwo", func(c *check.C) {
		var numbers []int
		c.True(algo.AllOf(numbers, func(i int) bool { return i == 4 }), "empty slice: all_of is true")
		c.True(algo.AllOf(numbers, func(i int) bool { return i == 0 }), "empty slice: all_of is true")
	})

	s.Add("none_of", "ExampleOne", func(c *check.C) {
		v1 := []int{1, 5, 1, 1}
		c.True(algo.NoneOf(v1, func(i int) bool { return i == 2 }), "no element equals two")

		v2 := []int{1, 1, 1, 1, 1, 2}
		c.True(algo.NoneOf(v2, func(i int) bool { return i == 3 }), "no element equals three")
		c.False(algo.NoneOf(v2, func(i int) bool { return i == 2 }), "the last element equals two")
	})
	s.Add("none_of", "ExampleTwo", func(c *check.C) {
		var numbers []int
		c.True(algo.NoneOf(numbers, func(i int) bool { return i == 3 }), "empty slice: none_of is true")
		c.True(algo.NoneOf(numbers, func(i int) bool { return i == 0 }), "empty slice: none_of is true")
	})

	s.Add("for_each", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5}
		accumulator := 0
		algo.ForEach(v, func(i int) { accumulator += i })
		c.Equal(1+2+3+4+5, accumulator, "sum of all elements")
	})

	s.Add("for_each_n", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5}
		accumulator := 0
		end := algo.ForEachN(v, 3, func(i int) { accumulator += i })
		c.Equal(1+2+3, accumulator, "sum of the first three elements")
		c.Equal(3, end, "position after the last visited element")
	})

	s.Add("count", "ExampleOne", func(c *check.C) {
		v := []rune{'a', 'a', 'b', 'b', 'c'}
		c.Equal(2, algo.Count(v, 'a'), "number of 'a'")
		c.Equal(1, algo.Count(v, 'c'), "number of 'c'")
		c.Equal(0, algo.Count(v, 'z'), "number of 'z'")
	})

	s.Add("count_if", "ExampleOne", func(c *check.C) {
		v := []rune{'1', '2', '3', 'a', 'b', 'c', '4', '5'}
		isLowercaseLetter := func(ch rune) bool { return ch >= 'a' && ch <= 'z' }
		c.Equal(3, algo.CountIf(v, isLowercaseLetter), "number of lowercase letters")
	})

	s.Add("mismatch", "ExampleOneUsingInequality", func(c *check.C) {
		v1 := []int{1, 2, 3, 4, 42}
		v2 := []int{1, 2, 3, 4, 5}
		// Without a predicate the first unequal pair is reported
		i := algo.Mismatch(v1, v2)
		c.Equal(4, i, "mismatch position")
		c.Equal(42, v1[i], "first slice at mismatch")
		c.Equal(5, v2[i], "second slice at mismatch")
	})
	s.Add("mismatch", "ExampleTwoUsingComparator", func(c *check.C) {
		v1 := []int{0, 1, 2, 3, 42}
		v2 := []int{1, 2, 3, 4, 41}
		// Stops at the first pair where the v1 value is not less than the v2 value
		i := algo.MismatchFunc(v1, v2, func(a, b int) bool { return a < b })
		c.Equal(42, v1[i], "first slice at mismatch")
		c.Equal(41, v2[i], "second slice at mismatch")
	})
	s.Add("mismatch", "ExampleThreePrefix", func(c *check.C) {
		v1 := []int{1, 2, 3}
		v2 := []int{1, 2, 3, 4, 5}
		c.Equal(len(v1), algo.Mismatch(v1, v2), "a prefix mismatches at the end of the shorter slice")
	})

	s.Add("find", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5}
		i := algo.Find(v, 3)
		c.Equal(2, i, "position of 3")
		c.Equal(3, v[i], "value at found position")
		c.Equal(len(v), algo.Find(v, 42), "missing value: one past the end")
	})

	s.Add("find_if", "ExampleOne", func(c *check.C) {
		v := []int{1, 3, 5, 6, 7, 8}
		isEven := func(i int) bool { return i%2 == 0 }
		i := algo.FindIf(v, isEven)
		c.Equal(3, i, "position of the first even number")
		c.Equal(6, v[i], "first even number")
		c.Equal(len(v), algo.FindIf(v, func(i int) bool { return i > 100 }), "no match: one past the end")
	})

	s.Add("find_if_not", "ExampleOne", func(c *check.C) {
		v := []int{2, 4, 6, 7, 8}
		isEven := func(i int) bool { return i%2 == 0 }
		i := algo.FindIfNot(v, isEven)
		c.Equal(3, i, "position of the first odd number")
		c.Equal(7, v[i], "first odd number")
		c.Equal(len(v[:3]), algo.FindIfNot(v[:3], isEven), "all even: one past the end")
	})

	s.Add("find_end", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 1, 2, 3, 4, 1, 2}
		c.Equal(4, algo.FindEnd(v, []int{1, 2, 3, 4}), "start of the last occurrence")
		c.Equal(8, algo.FindEnd(v, []int{1, 2}), "start of the last occurrence")
		c.Equal(len(v), algo.FindEnd(v, []int{4, 3}), "absent subsequence: one past the end")
	})

	s.Add("find_first_of", "ExampleOne", func(c *check.C) {
		v := []rune{'g', 'o', 'p', 'h', 'e', 'r'}
		vowels := []rune{'a', 'e', 'i', 'o', 'u'}
		i := algo.FindFirstOf(v, vowels)
		c.Equal(1, i, "position of the first vowel")
		c.Equal('o', v[i], "first vowel")
		c.Equal(len(v), algo.FindFirstOf(v, []rune{'x', 'y'}), "no common element: one past the end")
	})

	s.Add("adjacent_find", "ExampleOne", func(c *check.C) {
		v := []int{0, 1, 2, 3, 40, 40, 41, 41, 5}
		c.Equal(4, algo.AdjacentFind(v), "first of two equal neighbours")
		i := algo.AdjacentFindFunc(v, func(a, b int) bool { return a > b })
		c.Equal(7, i, "first neighbour pair in decreasing order")
		c.Equal(len(v[:4]), algo.AdjacentFind(v[:4]), "no equal neighbours: one past the end")
	})

	s.Add("search", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5}
		i := algo.Search(v, []int{3})
		c.Equal(2, i, "offset of the match")
		c.Equal(3, v[i], "value at the match")
		c.Equal(1, algo.Search(v, []int{2, 3, 4}), "offset of a longer subsequence")
	})
	s.Add("search", "ExampleTwo", func(c *check.C) {
		var empty []int
		c.Equal(len(empty), algo.Search(empty, []int{1}), "empty slice: one past the end")
		v := []int{1, 2, 3, 4, 5}
		c.Equal(len(v), algo.Search(v, []int{3, 2}), "absent subsequence: one past the end")
	})

	s.Add("search_n", "ExampleOne", func(c *check.C) {
		v := []int{1, 0, 0, 1, 1, 1, 0, 1}
		c.Equal(3, algo.SearchN(v, 3, 1), "start of three consecutive ones")
		c.Equal(1, algo.SearchN(v, 2, 0), "start of two consecutive zeros")
		c.Equal(len(v), algo.SearchN(v, 3, 0), "no three consecutive zeros: one past the end")
	})
}
