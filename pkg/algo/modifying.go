package algo

import "math/rand/v2"

// CopyIf appends the elements of src satisfying pred to dst.
func CopyIf[S ~[]E, E any](dst, src S, pred func(E) bool) S {
	for _, v := range src {
		if pred(v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// CopyN appends the first n elements of src to dst. n is clamped to len(src).
func CopyN[S ~[]E, E any](dst, src S, n int) S {
	return append(dst, src[:clampCount(n, len(src))]...)
}

// Fill assigns v to every element of s.
func Fill[S ~[]E, E any](s S, v E) {
	for i := range s {
		s[i] = v
	}
}

// FillN assigns v to the first n elements of s and returns the position after
// the last assigned element.
func FillN[S ~[]E, E any](s S, n int, v E) int {
	n = clampCount(n, len(s))
	Fill(s[:n], v)
	return n
}

// Transform appends f(v) for every element v of src to dst.
func Transform[S ~[]E, E, R any](dst []R, src S, f func(E) R) []R {
	for _, v := range src {
		dst = append(dst, f(v))
	}
	return dst
}

// TransformPair appends f(a[i], b[i]) to dst for every position shared by a and b.
func TransformPair[S1 ~[]E1, S2 ~[]E2, E1, E2, R any](dst []R, a S1, b S2, f func(E1, E2) R) []R {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		dst = append(dst, f(a[i], b[i]))
	}
	return dst
}

// Generate assigns successive results of gen to the elements of s.
func Generate[S ~[]E, E any](s S, gen func() E) {
	for i := range s {
		s[i] = gen()
	}
}

// GenerateN assigns successive results of gen to the first n elements of s
// and returns the position after the last assigned element.
func GenerateN[S ~[]E, E any](s S, n int, gen func() E) int {
	n = clampCount(n, len(s))
	Generate(s[:n], gen)
	return n
}

// Remove moves every element not equal to v to the front of s, keeping their
// order, and returns the new logical length. Elements at and after the
// returned position are left in an unspecified state; reslice with
// s = s[:Remove(s, v)] to drop them.
func Remove[S ~[]E, E comparable](s S, v E) int {
	return RemoveIf(s, func(e E) bool { return e == v })
}

// RemoveIf is Remove with a predicate.
func RemoveIf[S ~[]E, E any](s S, pred func(E) bool) int {
	j := FindIf(s, pred)
	for i := j + 1; i < len(s); i++ {
		if !pred(s[i]) {
			s[j] = s[i]
			j++
		}
	}
	return j
}

// RemoveCopy appends the elements of src not equal to v to dst.
func RemoveCopy[S ~[]E, E comparable](dst, src S, v E) S {
	return CopyIf(dst, src, func(e E) bool { return e != v })
}

// Replace assigns newV to every element equal to oldV.
func Replace[S ~[]E, E comparable](s S, oldV, newV E) {
	ReplaceIf(s, func(e E) bool { return e == oldV }, newV)
}

// ReplaceIf assigns newV to every element satisfying pred.
func ReplaceIf[S ~[]E, E any](s S, pred func(E) bool, newV E) {
	for i, v := range s {
		if pred(v) {
			s[i] = newV
		}
	}
}

// ReplaceCopy appends src to dst with every element equal to oldV replaced by newV.
func ReplaceCopy[S ~[]E, E comparable](dst, src S, oldV, newV E) S {
	for _, v := range src {
		if v == oldV {
			v = newV
		}
		dst = append(dst, v)
	}
	return dst
}

// SwapRanges exchanges the elements of a and b position by position and
// returns the number of swapped pairs.
func SwapRanges[S ~[]E, E any](a, b S) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		a[i], b[i] = b[i], a[i]
	}
	return n
}

// Reverse reverses the order of the elements in s.
func Reverse[S ~[]E, E any](s S) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// ReverseCopy appends the elements of src to dst in reverse order.
func ReverseCopy[S ~[]E, E any](dst, src S) S {
	for i := len(src) - 1; i >= 0; i-- {
		dst = append(dst, src[i])
	}
	return dst
}

// Rotate rotates s left so that s[middle] becomes the first element, and
// returns the new position of the element that was first.
func Rotate[S ~[]E, E any](s S, middle int) int {
	Reverse(s[:middle])
	Reverse(s[middle:])
	Reverse(s)
	return len(s) - middle
}

// RotateCopy appends src rotated left by middle to dst.
func RotateCopy[S ~[]E, E any](dst, src S, middle int) S {
	dst = append(dst, src[middle:]...)
	return append(dst, src[:middle]...)
}

// Unique collapses every run of consecutive equal elements to its first
// element and returns the new logical length, like Remove.
func Unique[S ~[]E, E comparable](s S) int {
	return UniqueFunc(s, func(a, b E) bool { return a == b })
}

// UniqueFunc is Unique with an equivalence function.
func UniqueFunc[S ~[]E, E any](s S, eq func(a, b E) bool) int {
	if len(s) == 0 {
		return 0
	}
	j := 0
	for i := 1; i < len(s); i++ {
		if !eq(s[j], s[i]) {
			j++
			s[j] = s[i]
		}
	}
	return j + 1
}

// UniqueCopy appends src to dst, skipping elements equal to their predecessor.
func UniqueCopy[S ~[]E, E comparable](dst, src S) S {
	for i, v := range src {
		if i > 0 && src[i-1] == v {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}

// Shuffle permutes s randomly using r.
func Shuffle[S ~[]E, E any](s S, r *rand.Rand) {
	r.Shuffle(len(s), func(i, j int) { s[i], s[j] = s[j], s[i] })
}
