// Package counted provides Seq, an immutable ordered sequence that keeps its
// element count cached alongside the elements, making Len a constant-time
// operation.
//
// Operations never mutate a Seq, they return a new one, so a Seq can be read
// from several goroutines without synchronization.
package counted

import (
	"slices"
)

// Seq is an ordered sequence of T paired with a cached element count.
// The zero value is an empty sequence, ready to use.
type Seq[T any] struct {
	count    int //always equal to len(elements)
	elements []T
}

// Len returns the cached element count. O(1).
func (s Seq[T]) Len() int {
	return s.count
}

// IsEmpty returns true if the sequence does not contain any elements.
func (s Seq[T]) IsEmpty() bool {
	return s.count == 0
}

// Values returns all elements as a plain slice, in order. The result is a
// copy, mutating it does not affect s.
func (s Seq[T]) Values() []T {
	return slices.Clone(s.elements)
}

func (s Seq[T]) ForEachElem(fn func(i int, e T) error) error {
	for i, e := range s.elements {
		err := fn(i, e)
		if err != nil {
			return err
		}
	}
	return nil
}

// Equal reports whether s1 and s2 contain the same elements in the same
// order. The cached counts are compared first.
func Equal[T comparable](s1, s2 Seq[T]) bool {
	if s1.count != s2.count {
		return false
	}
	return slices.Equal(s1.elements, s2.elements)
}

// sequence iterator, iterates over a snapshot
type SeqIterator[T any] struct {
	index    int
	elements []T
}

func (s Seq[T]) Iterator() *SeqIterator[T] {
	return &SeqIterator[T]{
		index:    -1,
		elements: slices.Clone(s.elements),
	}
}

func (it *SeqIterator[T]) Next() bool {
	if it.index >= len(it.elements)-1 {
		return false
	}
	it.index++
	return true
}

func (it *SeqIterator[T]) Value() T {
	return it.elements[it.index]
}

func (it *SeqIterator[T]) Index() int {
	return it.index
}
