package counted

import (
	"cmp"
	"slices"

	"golang.org/x/exp/constraints"
)

// Sort returns s sorted in ascending order.
func Sort[T constraints.Ordered](s Seq[T]) Seq[T] {
	sorted := slices.Clone(s.elements)
	slices.Sort(sorted)
	return Seq[T]{count: s.count, elements: sorted}
}

// SortBy returns s sorted in ascending order of key. The sort is stable.
func SortBy[T any, K constraints.Ordered](key func(e T) K, s Seq[T]) Seq[T] {
	sorted := slices.Clone(s.elements)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
	return Seq[T]{count: s.count, elements: sorted}
}

// SortFunc returns s sorted according to compare, which should return a
// negative number when a < b, a positive number when a > b and zero when
// they are equal. The sort is stable.
func SortFunc[T any](compare func(a, b T) int, s Seq[T]) Seq[T] {
	sorted := slices.Clone(s.elements)
	slices.SortStableFunc(sorted, compare)
	return Seq[T]{count: s.count, elements: sorted}
}
