package counted

// Pair groups two values. It is the element type consumed by Unzip and
// produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Append returns the elements of s followed by the elements of other.
// The count of the result is the sum of both counts.
func (s Seq[T]) Append(other Seq[T]) Seq[T] {
	elements := make([]T, 0, s.count+other.count)
	elements = append(elements, s.elements...)
	elements = append(elements, other.elements...)
	return Seq[T]{count: s.count + other.count, elements: elements}
}

// Concat flattens a sequence of sequences, keeping element order.
func Concat[T any](ss Seq[Seq[T]]) Seq[T] {
	total := 0
	for _, s := range ss.elements {
		total += s.count
	}

	elements := make([]T, 0, total)
	for _, s := range ss.elements {
		elements = append(elements, s.elements...)
	}

	return Seq[T]{count: total, elements: elements}
}

// ConcatMap maps f over s and flattens the results.
func ConcatMap[T, U any](f func(e T) Seq[U], s Seq[T]) Seq[U] {
	return Concat(Map(f, s))
}

// Zip pairs up the elements of s1 and s2, stopping at the shortest input.
func Zip[A, B any](s1 Seq[A], s2 Seq[B]) Seq[Pair[A, B]] {
	return Map2(func(a A, b B) Pair[A, B] {
		return Pair[A, B]{First: a, Second: b}
	}, s1, s2)
}

// Unzip splits a sequence of pairs into the sequence of first components
// and the sequence of second components. Both results keep the count of s.
func Unzip[A, B any](s Seq[Pair[A, B]]) (Seq[A], Seq[B]) {
	firsts := make([]A, s.count)
	seconds := make([]B, s.count)

	for i, p := range s.elements {
		firsts[i] = p.First
		seconds[i] = p.Second
	}

	return Seq[A]{count: s.count, elements: firsts}, Seq[B]{count: s.count, elements: seconds}
}
