package counted

// Map returns the sequence obtained by applying f to every element of s.
func Map[T, U any](f func(e T) U, s Seq[T]) Seq[U] {
	elements := make([]U, s.count)
	for i, e := range s.elements {
		elements[i] = f(e)
	}
	return Seq[U]{count: s.count, elements: elements}
}

// MapIndexed is like Map but f also receives the zero-based position of the
// element.
func MapIndexed[T, U any](f func(i int, e T) U, s Seq[T]) Seq[U] {
	elements := make([]U, s.count)
	for i, e := range s.elements {
		elements[i] = f(i, e)
	}
	return Seq[U]{count: s.count, elements: elements}
}

// Map2 applies f elementwise to s1 and s2, stopping at the shortest input.
// The count of the result is the minimum of the input counts.
func Map2[A, B, R any](f func(a A, b B) R, s1 Seq[A], s2 Seq[B]) Seq[R] {
	n := min(s1.count, s2.count)
	elements := make([]R, n)
	for i := 0; i < n; i++ {
		elements[i] = f(s1.elements[i], s2.elements[i])
	}
	return Seq[R]{count: n, elements: elements}
}

func Map3[A, B, C, R any](f func(a A, b B, c C) R, s1 Seq[A], s2 Seq[B], s3 Seq[C]) Seq[R] {
	n := min(s1.count, s2.count, s3.count)
	elements := make([]R, n)
	for i := 0; i < n; i++ {
		elements[i] = f(s1.elements[i], s2.elements[i], s3.elements[i])
	}
	return Seq[R]{count: n, elements: elements}
}

func Map4[A, B, C, D, R any](f func(a A, b B, c C, d D) R, s1 Seq[A], s2 Seq[B], s3 Seq[C], s4 Seq[D]) Seq[R] {
	n := min(s1.count, s2.count, s3.count, s4.count)
	elements := make([]R, n)
	for i := 0; i < n; i++ {
		elements[i] = f(s1.elements[i], s2.elements[i], s3.elements[i], s4.elements[i])
	}
	return Seq[R]{count: n, elements: elements}
}

func Map5[A, B, C, D, E, R any](f func(a A, b B, c C, d D, e E) R, s1 Seq[A], s2 Seq[B], s3 Seq[C], s4 Seq[D], s5 Seq[E]) Seq[R] {
	n := min(s1.count, s2.count, s3.count, s4.count, s5.count)
	elements := make([]R, n)
	for i := 0; i < n; i++ {
		elements[i] = f(s1.elements[i], s2.elements[i], s3.elements[i], s4.elements[i], s5.elements[i])
	}
	return Seq[R]{count: n, elements: elements}
}

// FoldLeft reduces s from the left: f(f(f(seed, e0), e1), e2) ...
func FoldLeft[T, A any](f func(acc A, e T) A, seed A, s Seq[T]) A {
	acc := seed
	for _, e := range s.elements {
		acc = f(acc, e)
	}
	return acc
}

// FoldRight reduces s from the right: ... f(e0, f(e1, f(e2, seed)))
func FoldRight[T, A any](f func(e T, acc A) A, seed A, s Seq[T]) A {
	acc := seed
	for i := s.count - 1; i >= 0; i-- {
		acc = f(s.elements[i], acc)
	}
	return acc
}

// Reverse returns s with its elements in reverse order.
func (s Seq[T]) Reverse() Seq[T] {
	reversed := make([]T, s.count)
	copy(reversed, s.elements)

	for i, j := 0, len(reversed)-1; i < j; i, j = i+1, j-1 {
		reversed[i], reversed[j] = reversed[j], reversed[i]
	}

	return Seq[T]{count: s.count, elements: reversed}
}
