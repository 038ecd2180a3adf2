package counted

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Empty returns a sequence with no elements.
func Empty[T any]() Seq[T] {
	return Seq[T]{}
}

// Singleton returns a sequence containing only x.
func Singleton[T any](x T) Seq[T] {
	return Seq[T]{count: 1, elements: []T{x}}
}

// Repeat returns a sequence of n copies of x. Negative n behaves as 0.
func Repeat[T any](n int, x T) Seq[T] {
	if n <= 0 {
		return Seq[T]{}
	}
	elements := make([]T, n)
	for i := range elements {
		elements[i] = x
	}
	return Seq[T]{count: n, elements: elements}
}

// Range returns the integers from a through b inclusive, so Range(1, 5)
// contains 1, 2, 3, 4, 5 and has count 5. An empty sequence is returned
// when a > b.
func Range[I constraints.Integer](a, b I) Seq[I] {
	if a > b {
		return Seq[I]{}
	}
	elements := make([]I, 0, int(b-a)+1)
	for v := a; ; v++ {
		elements = append(elements, v)
		if v == b { //compare before incrementing, b may be the maximum of I
			break
		}
	}
	return Seq[I]{count: len(elements), elements: elements}
}

// FromSlice returns a sequence containing the elements of xs, counted once.
// The slice is copied, later mutations of xs do not affect the result.
func FromSlice[T any](xs []T) Seq[T] {
	return Seq[T]{count: len(xs), elements: slices.Clone(xs)}
}

// Cons returns s with x prepended.
func Cons[T any](x T, s Seq[T]) Seq[T] {
	elements := make([]T, 0, s.count+1)
	elements = append(elements, x)
	elements = append(elements, s.elements...)
	return Seq[T]{count: s.count + 1, elements: elements}
}
