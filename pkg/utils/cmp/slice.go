package cmp

type BiPredicator[S, T any] func(S, T) bool

func EqEq[T comparable](a, b T) bool {
	return a == b
}

func SliceEq[T comparable](a []T, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for nth, va := range a {
		if va != b[nth] {
			return false
		}
	}
	return true
}

func SliceEqWith[T any, U any](a []T, b []U, pred BiPredicator[T, U]) bool {
	if len(a) != len(b) {
		return false
	}
	for nth := range a {
		if !pred(a[nth], b[nth]) {
			return false
		}
	}
	return true
}

// check 2 slices have the same content ignoring ordering.
//
// In other words, this function answers equality of two bags (or multi-sets).
func SliceContentEq[T comparable](a, b []T) bool {
	return SliceContentEqWith(a, b, EqEq[T])
}

// check 2 slices have equivalent content ignoring ordering, in terms of equiv.
func SliceContentEqWith[S, T any](a []S, b []T, equiv BiPredicator[S, T]) bool {
	if len(a) != len(b) {
		return false
	}

	rest := make([]T, len(b))
	copy(rest, b)

NEXT_A:
	for _, ae := range a {
		for i, be := range rest {
			if !equiv(ae, be) {
				continue
			}
			rest = append(rest[:i], rest[i+1:]...)
			continue NEXT_A
		}
		return false
	}

	return len(rest) == 0
}
