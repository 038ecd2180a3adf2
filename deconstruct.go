package counted

import (
	"slices"
)

// Head returns the first element of the sequence. Second return parameter
// is true, unless the sequence is empty.
func (s Seq[T]) Head() (value T, ok bool) {
	if s.count == 0 {
		return
	}
	return s.elements[0], true
}

// Last returns the last element of the sequence. Second return parameter
// is true, unless the sequence is empty.
func (s Seq[T]) Last() (value T, ok bool) {
	if s.count == 0 {
		return
	}
	return s.elements[s.count-1], true
}

// Tail returns s without its first element. Second return parameter is
// false when s is empty.
func (s Seq[T]) Tail() (Seq[T], bool) {
	if s.count == 0 {
		return Seq[T]{}, false
	}
	return Seq[T]{count: s.count - 1, elements: slices.Clone(s.elements[1:])}, true
}

// Uncons splits s into its first element and the rest. Third return
// parameter is false when s is empty.
func (s Seq[T]) Uncons() (head T, rest Seq[T], ok bool) {
	if s.count == 0 {
		return
	}
	rest = Seq[T]{count: s.count - 1, elements: slices.Clone(s.elements[1:])}
	return s.elements[0], rest, true
}

// Take returns the first n elements of s, or all of s when n exceeds the
// count. Negative n behaves as 0.
func (s Seq[T]) Take(n int) Seq[T] {
	if n <= 0 {
		return Seq[T]{}
	}
	if n > s.count {
		n = s.count
	}
	return Seq[T]{count: n, elements: slices.Clone(s.elements[:n])}
}

// Drop returns s without its first n elements. Negative n behaves as 0,
// dropping past the end yields an empty sequence.
func (s Seq[T]) Drop(n int) Seq[T] {
	if n <= 0 {
		return Seq[T]{count: s.count, elements: slices.Clone(s.elements)}
	}
	if n >= s.count {
		return Seq[T]{}
	}
	return Seq[T]{count: s.count - n, elements: slices.Clone(s.elements[n:])}
}

// At returns the element at zero-based index i. Second return parameter is
// false when i is out of range.
func (s Seq[T]) At(i int) (value T, ok bool) {
	if i < 0 || i >= s.count {
		return
	}
	return s.elements[i], true
}

// UpdateAt returns s with the element at index i replaced by f(element).
// s is returned unchanged when i is out of range.
func (s Seq[T]) UpdateAt(i int, f func(e T) T) Seq[T] {
	if i < 0 || i >= s.count {
		return s
	}
	elements := slices.Clone(s.elements)
	elements[i] = f(elements[i])
	return Seq[T]{count: s.count, elements: elements}
}

// RemoveAt returns s without the element at index i, with the count
// decremented. s is returned unchanged when i is out of range.
func (s Seq[T]) RemoveAt(i int) Seq[T] {
	if i < 0 || i >= s.count {
		return s
	}
	elements := make([]T, 0, s.count-1)
	elements = append(elements, s.elements[:i]...)
	elements = append(elements, s.elements[i+1:]...)
	return Seq[T]{count: s.count - 1, elements: elements}
}
