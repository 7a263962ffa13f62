package algo

import "cmp"

// Equal reports whether a and b have the same length and equal elements.
func Equal[S ~[]E, E comparable](a, b S) bool {
	return len(a) == len(b) && Mismatch(a, b) == len(a)
}

// EqualFunc reports whether a and b have the same length and eq holds
// position by position.
func EqualFunc[S1 ~[]E1, S2 ~[]E2, E1, E2 any](a S1, b S2, eq func(E1, E2) bool) bool {
	return len(a) == len(b) && MismatchFunc(a, b, eq) == len(a)
}

// LexicographicalCompare reports whether a orders before b in dictionary
// order. A proper prefix orders before the longer slice.
func LexicographicalCompare[S ~[]E, E cmp.Ordered](a, b S) bool {
	return LexicographicalCompareFunc(a, b, cmp.Compare[E])
}

// LexicographicalCompareFunc is LexicographicalCompare with a comparison function.
func LexicographicalCompareFunc[S ~[]E, E any](a, b S, cmp func(a, b E) int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp(a[i], b[i]); c != 0 {
			return c < 0
		}
	}
	return len(a) < len(b)
}

// IsPermutation reports whether b is a rearrangement of a.
func IsPermutation[S ~[]E, E comparable](a, b S) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[E]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		if counts[v] == 0 {
			return false
		}
		counts[v]--
	}
	return true
}

// NextPermutation rearranges s into the next lexicographically greater
// permutation and reports true. If s is already the greatest permutation it
// rearranges s into the smallest one and reports false.
func NextPermutation[S ~[]E, E cmp.Ordered](s S) bool {
	return NextPermutationFunc(s, cmp.Compare[E])
}

// NextPermutationFunc is NextPermutation with a comparison function.
func NextPermutationFunc[S ~[]E, E any](s S, cmp func(a, b E) int) bool {
	return permute(s, func(a, b E) bool { return cmp(a, b) < 0 })
}

// PrevPermutation rearranges s into the previous lexicographically smaller
// permutation and reports true. If s is already the smallest permutation it
// rearranges s into the greatest one and reports false.
func PrevPermutation[S ~[]E, E cmp.Ordered](s S) bool {
	return PrevPermutationFunc(s, cmp.Compare[E])
}

// PrevPermutationFunc is PrevPermutation with a comparison function.
func PrevPermutationFunc[S ~[]E, E any](s S, cmp func(a, b E) int) bool {
	return permute(s, func(a, b E) bool { return cmp(b, a) < 0 })
}

// permute steps s to the next permutation in the order defined by less.
func permute[S ~[]E, E any](s S, less func(a, b E) bool) bool {
	i := len(s) - 2
	for i >= 0 && !less(s[i], s[i+1]) {
		i--
	}
	if i < 0 {
		Reverse(s)
		return false
	}
	j := len(s) - 1
	for !less(s[i], s[j]) {
		j--
	}
	s[i], s[j] = s[j], s[i]
	Reverse(s[i+1:])
	return true
}
