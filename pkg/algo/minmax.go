package algo

import "cmp"

// MinElement returns the position of the first smallest element, or len(s)
// if s is empty.
func MinElement[S ~[]E, E cmp.Ordered](s S) int {
	return MinElementFunc(s, cmp.Compare[E])
}

// MinElementFunc is MinElement with a comparison function.
func MinElementFunc[S ~[]E, E any](s S, cmp func(a, b E) int) int {
	if len(s) == 0 {
		return 0
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[best]) < 0 {
			best = i
		}
	}
	return best
}

// MaxElement returns the position of the first largest element, or len(s)
// if s is empty.
func MaxElement[S ~[]E, E cmp.Ordered](s S) int {
	return MaxElementFunc(s, cmp.Compare[E])
}

// MaxElementFunc is MaxElement with a comparison function.
func MaxElementFunc[S ~[]E, E any](s S, cmp func(a, b E) int) int {
	if len(s) == 0 {
		return 0
	}
	best := 0
	for i := 1; i < len(s); i++ {
		if cmp(s[best], s[i]) < 0 {
			best = i
		}
	}
	return best
}

// MinMaxElement returns the position of the first smallest and of the last
// largest element. Both are len(s) if s is empty.
func MinMaxElement[S ~[]E, E cmp.Ordered](s S) (lo, hi int) {
	return MinMaxElementFunc(s, cmp.Compare[E])
}

// MinMaxElementFunc is MinMaxElement with a comparison function.
func MinMaxElementFunc[S ~[]E, E any](s S, cmp func(a, b E) int) (lo, hi int) {
	if len(s) == 0 {
		return 0, 0
	}
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[lo]) < 0 {
			lo = i
		}
		if cmp(s[i], s[hi]) >= 0 {
			hi = i
		}
	}
	return lo, hi
}

// Clamp returns v limited to the closed interval [lo, hi].
func Clamp[E cmp.Ordered](v, lo, hi E) E {
	return ClampFunc(v, lo, hi, cmp.Compare[E])
}

// ClampFunc is Clamp with a comparison function.
func ClampFunc[E any](v, lo, hi E, cmp func(a, b E) int) E {
	switch {
	case cmp(v, lo) < 0:
		return lo
	case cmp(hi, v) < 0:
		return hi
	default:
		return v
	}
}
