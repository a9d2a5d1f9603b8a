package utils

// Map creates a new slice applying f to each element of s.
func Map[T, R any](s []T, f func(T) R) []R {
	ret := make([]R, len(s))
	for i, v := range s {
		ret[i] = f(v)
	}
	return ret
}

// First finds the first element satisfying pred.
//
// # Returns
//
// - T: the found element (zero value when not found)
//
// - bool: found or not
func First[T any](s []T, pred func(T) bool) (T, bool) {
	for _, v := range s {
		if pred(v) {
			return v, true
		}
	}
	return *new(T), false
}
