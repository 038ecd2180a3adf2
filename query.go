package counted

import (
	"golang.org/x/exp/constraints"
)

// Numeric is the constraint of Sum and Product.
type Numeric interface {
	constraints.Integer | constraints.Float | constraints.Complex
}

// All reports whether pred holds for every element of s. It holds
// vacuously for an empty sequence.
func (s Seq[T]) All(pred func(e T) bool) bool {
	for _, e := range s.elements {
		if !pred(e) {
			return false
		}
	}
	return true
}

// Any reports whether pred holds for at least one element of s.
func (s Seq[T]) Any(pred func(e T) bool) bool {
	for _, e := range s.elements {
		if pred(e) {
			return true
		}
	}
	return false
}

// Contains reports whether x occurs in s.
func Contains[T comparable](s Seq[T], x T) bool {
	for _, e := range s.elements {
		if e == x {
			return true
		}
	}
	return false
}

// Min returns the smallest element of s. Second return parameter is false
// when s is empty.
func Min[T constraints.Ordered](s Seq[T]) (value T, ok bool) {
	if s.count == 0 {
		return
	}
	value = s.elements[0]
	for _, e := range s.elements[1:] {
		if e < value {
			value = e
		}
	}
	return value, true
}

// Max returns the largest element of s. Second return parameter is false
// when s is empty.
func Max[T constraints.Ordered](s Seq[T]) (value T, ok bool) {
	if s.count == 0 {
		return
	}
	value = s.elements[0]
	for _, e := range s.elements[1:] {
		if e > value {
			value = e
		}
	}
	return value, true
}

// Sum returns the sum of the elements of s, 0 for an empty sequence.
func Sum[T Numeric](s Seq[T]) T {
	var total T
	for _, e := range s.elements {
		total += e
	}
	return total
}

// Product returns the product of the elements of s, 1 for an empty
// sequence.
func Product[T Numeric](s Seq[T]) T {
	product := T(1)
	for _, e := range s.elements {
		product *= e
	}
	return product
}
