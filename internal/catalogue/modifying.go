package catalogue

import (
	"math/rand/v2"
	"strings"

	"algocat/internal/check"
	"algocat/internal/registry"
	"algocat/pkg/algo"
)

func registerModifying(s *registry.Section) {
	s.Add("copy_if", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5, 6}
		evens := algo.CopyIf(nil, v, func(i int) bool { return i%2 == 0 })
		c.Equal([]int{2, 4, 6}, evens, "even elements in order")
		c.Equal([]int{1, 2, 3, 4, 5, 6}, v, "source is unchanged")
	})

	s.Add("copy_n", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5}
		c.Equal([]int{0, 1, 2, 3}, algo.CopyN([]int{0}, v, 3), "first three appended after the existing element")
		c.Equal(v, algo.CopyN(nil, v, 10), "count is clamped to the source length")
	})

	s.Add("fill", "ExampleOne", func(c *check.C) {
		v := make([]int, 4)
		algo.Fill(v, 7)
		c.Equal([]int{7, 7, 7, 7}, v, "every element assigned")
	})

	s.Add("fill_n", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5}
		end := algo.FillN(v, 2, -1)
		c.Equal([]int{-1, -1, 3, 4, 5}, v, "first two elements assigned")
		c.Equal(2, end, "position after the last assigned element")
	})

	s.Add("transform", "ExampleOne", func(c *check.C) {
		words := []string{"alpha", "beta", "gamma"}
		c.Equal([]string{"ALPHA", "BETA", "GAMMA"}, algo.Transform(nil, words, strings.ToUpper), "upper-cased words")
		c.Equal([]int{5, 4, 5}, algo.Transform(nil, words, func(w string) int { return len(w) }), "word lengths")
	})
	s.Add("transform", "ExampleTwoBinary", func(c *check.C) {
		a := []int{1, 2, 3}
		b := []int{10, 20, 30, 40}
		sums := algo.TransformPair(nil, a, b, func(x, y int) int { return x + y })
		c.Equal([]int{11, 22, 33}, sums, "pairwise sums over the shorter length")
	})

	s.Add("generate", "ExampleOne", func(c *check.C) {
		v := make([]int, 5)
		n := 1
		algo.Generate(v, func() int { n *= 2; return n })
		c.Equal([]int{2, 4, 8, 16, 32}, v, "powers of two")
	})

	s.Add("generate_n", "ExampleOne", func(c *check.C) {
		v := make([]int, 5)
		n := 0
		end := algo.GenerateN(v, 3, func() int { n++; return n })
		c.Equal([]int{1, 2, 3, 0, 0}, v, "first three elements generated")
		c.Equal(3, end, "position after the last generated element")
	})

	s.Add("remove", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 2, 4, 2, 5}
		v = v[:algo.Remove(v, 2)]
		c.Equal([]int{1, 3, 4, 5}, v, "every 2 removed, order kept")
	})

	s.Add("remove_if", "ExampleOne", func(c *check.C) {
		words := []string{"keep", "", "this", "", "order"}
		words = words[:algo.RemoveIf(words, func(w string) bool { return w == "" })]
		c.Equal([]string{"keep", "this", "order"}, words, "empty strings removed")
	})

	s.Add("remove_copy", "ExampleOne", func(c *check.C) {
		v := []int{1, 0, 2, 0, 3}
		c.Equal([]int{1, 2, 3}, algo.RemoveCopy(nil, v, 0), "copy without zeros")
		c.Equal([]int{1, 0, 2, 0, 3}, v, "source is unchanged")
	})

	s.Add("replace", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 1, 3, 1}
		algo.Replace(v, 1, 9)
		c.Equal([]int{9, 2, 9, 3, 9}, v, "every 1 replaced by 9")
	})

	s.Add("replace_if", "ExampleOne", func(c *check.C) {
		v := []int{-3, 1, -1, 4, -5}
		algo.ReplaceIf(v, func(i int) bool { return i < 0 }, 0)
		c.Equal([]int{0, 1, 0, 4, 0}, v, "negative numbers replaced by zero")
	})

	s.Add("replace_copy", "ExampleOne", func(c *check.C) {
		v := []rune("a-b-c")
		c.Equal([]rune("a_b_c"), algo.ReplaceCopy(nil, v, '-', '_'), "dashes replaced in the copy")
		c.Equal([]rune("a-b-c"), v, "source is unchanged")
	})

	s.Add("swap_ranges", "ExampleOne", func(c *check.C) {
		a := []int{1, 2, 3}
		b := []int{7, 8, 9, 10}
		n := algo.SwapRanges(a, b)
		c.Equal(3, n, "number of swapped pairs")
		c.Equal([]int{7, 8, 9}, a, "first slice after swap")
		c.Equal([]int{1, 2, 3, 10}, b, "second slice after swap")
	})

	s.Add("reverse", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4}
		algo.Reverse(v)
		c.Equal([]int{4, 3, 2, 1}, v, "reversed in place")
	})

	s.Add("reverse_copy", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3}
		c.Equal([]int{3, 2, 1}, algo.ReverseCopy(nil, v), "reversed copy")
		c.Equal([]int{1, 2, 3}, v, "source is unchanged")
	})

	s.Add("rotate", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5}
		first := algo.Rotate(v, 2)
		c.Equal([]int{3, 4, 5, 1, 2}, v, "rotated left by two")
		c.Equal(3, first, "new position of the old first element")
	})

	s.Add("rotate_copy", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5}
		c.Equal([]int{4, 5, 1, 2, 3}, algo.RotateCopy(nil, v, 3), "copy rotated left by three")
	})

	s.Add("unique", "ExampleOne", func(c *check.C) {
		v := []int{1, 1, 2, 2, 2, 3, 1, 1}
		v = v[:algo.Unique(v)]
		c.Equal([]int{1, 2, 3, 1}, v, "consecutive duplicates collapsed")
	})
	s.Add("unique", "ExampleTwoWithPredicate", func(c *check.C) {
		words := []string{"apple", "Apple", "banana", "BANANA", "apple"}
		words = words[:algo.UniqueFunc(words, strings.EqualFold)]
		c.Equal([]string{"apple", "banana", "apple"}, words, "case-insensitive duplicates collapsed")
	})

	s.Add("unique_copy", "ExampleOne", func(c *check.C) {
		v := []rune("mississippi")
		c.Equal([]rune("misisipi"), algo.UniqueCopy(nil, v), "copy without repeated letters")
	})

	s.Add("shuffle", "ExampleOne", func(c *check.C) {
		v := []int{1, 2, 3, 4, 5, 6, 7, 8}
		orig := append([]int(nil), v...)
		algo.Shuffle(v, rand.New(rand.NewPCG(1, 2)))
		c.True(algo.IsPermutation(orig, v), "shuffle keeps the same elements")

		w := append([]int(nil), orig...)
		algo.Shuffle(w, rand.New(rand.NewPCG(1, 2)))
		c.Equal(v, w, "same seed, same order")
	})
}
