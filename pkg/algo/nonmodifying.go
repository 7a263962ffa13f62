package algo

// AllOf reports whether pred holds for every element of s.
// It returns true for an empty slice.
func AllOf[S ~[]E, E any](s S, pred func(E) bool) bool {
	for _, v := range s {
		if !pred(v) {
			return false
		}
	}
	return true
}

// AnyOf reports whether pred holds for at least one element of s.
// It returns false for an empty slice.
func AnyOf[S ~[]E, E any](s S, pred func(E) bool) bool {
	for _, v := range s {
		if pred(v) {
			return true
		}
	}
	return false
}

// NoneOf reports whether pred holds for no element of s.
// It returns true for an empty slice.
func NoneOf[S ~[]E, E any](s S, pred func(E) bool) bool {
	return !AnyOf(s, pred)
}

// ForEach calls f on every element of s in order.
func ForEach[S ~[]E, E any](s S, f func(E)) {
	for _, v := range s {
		f(v)
	}
}

// ForEachN calls f on the first n elements of s and returns the position
// after the last visited element. n is clamped to len(s).
func ForEachN[S ~[]E, E any](s S, n int, f func(E)) int {
	n = clampCount(n, len(s))
	for _, v := range s[:n] {
		f(v)
	}
	return n
}

// Count returns the number of elements equal to v.
func Count[S ~[]E, E comparable](s S, v E) int {
	return CountIf(s, func(e E) bool { return e == v })
}

// CountIf returns the number of elements satisfying pred.
func CountIf[S ~[]E, E any](s S, pred func(E) bool) int {
	n := 0
	for _, v := range s {
		if pred(v) {
			n++
		}
	}
	return n
}

// Mismatch returns the first position at which a and b differ. If one is a
// prefix of the other it returns the length of the shorter one.
func Mismatch[S ~[]E, E comparable](a, b S) int {
	return MismatchFunc(a, b, func(x, y E) bool { return x == y })
}

// MismatchFunc returns the first position i at which match(a[i], b[i]) is
// false, or the length of the shorter slice if there is none.
func MismatchFunc[S1 ~[]E1, S2 ~[]E2, E1, E2 any](a S1, b S2, match func(E1, E2) bool) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if !match(a[i], b[i]) {
			return i
		}
	}
	return n
}

// Find returns the position of the first element equal to v, or len(s).
func Find[S ~[]E, E comparable](s S, v E) int {
	return FindIf(s, func(e E) bool { return e == v })
}

// FindIf returns the position of the first element satisfying pred, or len(s).
func FindIf[S ~[]E, E any](s S, pred func(E) bool) int {
	for i, v := range s {
		if pred(v) {
			return i
		}
	}
	return len(s)
}

// FindIfNot returns the position of the first element not satisfying pred, or len(s).
func FindIfNot[S ~[]E, E any](s S, pred func(E) bool) int {
	return FindIf(s, func(e E) bool { return !pred(e) })
}

// FindEnd returns the start of the last occurrence of sub in s.
// It returns len(s) if sub is empty or does not occur.
func FindEnd[S ~[]E, E comparable](s, sub S) int {
	if len(sub) == 0 || len(sub) > len(s) {
		return len(s)
	}
	for i := len(s) - len(sub); i >= 0; i-- {
		if hasPrefix(s[i:], sub) {
			return i
		}
	}
	return len(s)
}

// FindFirstOf returns the position of the first element of s that equals any
// element of set, or len(s).
func FindFirstOf[S ~[]E, E comparable](s, set S) int {
	return FindIf(s, func(e E) bool { return Find(set, e) != len(set) })
}

// AdjacentFind returns the position of the first of two consecutive equal
// elements, or len(s).
func AdjacentFind[S ~[]E, E comparable](s S) int {
	return AdjacentFindFunc(s, func(a, b E) bool { return a == b })
}

// AdjacentFindFunc returns the first position i with match(s[i], s[i+1]), or len(s).
func AdjacentFindFunc[S ~[]E, E any](s S, match func(a, b E) bool) int {
	for i := 0; i+1 < len(s); i++ {
		if match(s[i], s[i+1]) {
			return i
		}
	}
	return len(s)
}

// Search returns the start of the first occurrence of sub in s, or len(s).
// An empty sub is found at position 0.
func Search[S ~[]E, E comparable](s, sub S) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if hasPrefix(s[i:], sub) {
			return i
		}
	}
	return len(s)
}

// SearchN returns the start of the first run of count consecutive elements
// equal to v, or len(s). A count of zero or less is found at position 0.
func SearchN[S ~[]E, E comparable](s S, count int, v E) int {
	if count <= 0 {
		return 0
	}
	run := 0
	for i, e := range s {
		if e != v {
			run = 0
			continue
		}
		run++
		if run == count {
			return i - count + 1
		}
	}
	return len(s)
}

func hasPrefix[S ~[]E, E comparable](s, prefix S) bool {
	if len(prefix) > len(s) {
		return false
	}
	for i := range prefix {
		if s[i] != prefix[i] {
			return false
		}
	}
	return true
}

func clampCount(n, size int) int {
	return max(0, min(n, size))
}
