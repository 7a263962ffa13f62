package algo

import "cmp"

// The set operations work on sorted slices with multiset semantics: an element
// present m times in a and n times in b is counted with those multiplicities.

// Includes reports whether the sorted slice b is a sub-multiset of the sorted slice a.
func Includes[S ~[]E, E cmp.Ordered](a, b S) bool {
	return IncludesFunc(a, b, cmp.Compare[E])
}

// IncludesFunc is Includes with a comparison function.
func IncludesFunc[S ~[]E, E any](a, b S, cmp func(a, b E) int) bool {
	i := 0
	for _, v := range b {
		for i < len(a) && cmp(a[i], v) < 0 {
			i++
		}
		if i == len(a) || cmp(v, a[i]) < 0 {
			return false
		}
		i++
	}
	return true
}

// SetUnion appends the union of the sorted slices a and b to dst. An element
// present m times in a and n times in b appears max(m, n) times.
func SetUnion[S ~[]E, E cmp.Ordered](dst, a, b S) S {
	return SetUnionFunc(dst, a, b, cmp.Compare[E])
}

// SetUnionFunc is SetUnion with a comparison function.
func SetUnionFunc[S ~[]E, E any](dst, a, b S, cmp func(a, b E) int) S {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i], b[j]); {
		case c < 0:
			dst = append(dst, a[i])
			i++
		case c > 0:
			dst = append(dst, b[j])
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	return append(dst, b[j:]...)
}

// SetIntersection appends the intersection of the sorted slices a and b to
// dst. An element present m times in a and n times in b appears min(m, n) times.
func SetIntersection[S ~[]E, E cmp.Ordered](dst, a, b S) S {
	return SetIntersectionFunc(dst, a, b, cmp.Compare[E])
}

// SetIntersectionFunc is SetIntersection with a comparison function.
func SetIntersectionFunc[S ~[]E, E any](dst, a, b S, cmp func(a, b E) int) S {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i], b[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			dst = append(dst, a[i])
			i++
			j++
		}
	}
	return dst
}

// SetDifference appends the elements of the sorted slice a not found in the
// sorted slice b to dst. An element present m times in a and n times in b
// appears max(m-n, 0) times.
func SetDifference[S ~[]E, E cmp.Ordered](dst, a, b S) S {
	return SetDifferenceFunc(dst, a, b, cmp.Compare[E])
}

// SetDifferenceFunc is SetDifference with a comparison function.
func SetDifferenceFunc[S ~[]E, E any](dst, a, b S, cmp func(a, b E) int) S {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i], b[j]); {
		case c < 0:
			dst = append(dst, a[i])
			i++
		case c > 0:
			j++
		default:
			i++
			j++
		}
	}
	return append(dst, a[i:]...)
}

// SetSymmetricDifference appends the elements found in exactly one of the
// sorted slices a and b to dst. An element present m times in a and n times
// in b appears |m-n| times.
func SetSymmetricDifference[S ~[]E, E cmp.Ordered](dst, a, b S) S {
	return SetSymmetricDifferenceFunc(dst, a, b, cmp.Compare[E])
}

// SetSymmetricDifferenceFunc is SetSymmetricDifference with a comparison function.
func SetSymmetricDifferenceFunc[S ~[]E, E any](dst, a, b S, cmp func(a, b E) int) S {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch c := cmp(a[i], b[j]); {
		case c < 0:
			dst = append(dst, a[i])
			i++
		case c > 0:
			dst = append(dst, b[j])
			j++
		default:
			i++
			j++
		}
	}
	dst = append(dst, a[i:]...)
	return append(dst, b[j:]...)
}
