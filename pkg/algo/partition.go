package algo

// IsPartitioned reports whether every element satisfying pred comes before
// every element that does not. An empty slice is partitioned.
func IsPartitioned[S ~[]E, E any](s S, pred func(E) bool) bool {
	i := FindIfNot(s, pred)
	return NoneOf(s[i:], pred)
}

// Partition reorders s so that the elements satisfying pred come first and
// returns the position of the first element of the second group. The
// relative order within each group is not preserved.
func Partition[S ~[]E, E any](s S, pred func(E) bool) int {
	first := FindIfNot(s, pred)
	for i := first + 1; i < len(s); i++ {
		if pred(s[i]) {
			s[i], s[first] = s[first], s[i]
			first++
		}
	}
	return first
}

// StablePartition is Partition that keeps the relative order of the elements
// within each group.
func StablePartition[S ~[]E, E any](s S, pred func(E) bool) int {
	var rest S
	j := 0
	for _, v := range s {
		if pred(v) {
			s[j] = v
			j++
		} else {
			rest = append(rest, v)
		}
	}
	copy(s[j:], rest)
	return j
}

// PartitionCopy appends the elements of src satisfying pred to in and the
// others to out, and returns both.
func PartitionCopy[S ~[]E, E any](in, out, src S, pred func(E) bool) (S, S) {
	for _, v := range src {
		if pred(v) {
			in = append(in, v)
		} else {
			out = append(out, v)
		}
	}
	return in, out
}

// PartitionPoint returns the position of the first element of the second
// group of a slice already partitioned by pred.
func PartitionPoint[S ~[]E, E any](s S, pred func(E) bool) int {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if pred(s[mid]) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
