package counted

// Filter returns the elements of s satisfying pred. The count of the result
// is tracked while the kept elements are gathered, not by a second pass.
func (s Seq[T]) Filter(pred func(e T) bool) Seq[T] {
	kept := make([]T, 0)

	for _, e := range s.elements {
		if pred(e) {
			kept = append(kept, e)
		}
	}

	return Seq[T]{count: len(kept), elements: kept}
}

// FilterMap applies f to every element of s and keeps the results for which
// f reported ok.
func FilterMap[T, U any](f func(e T) (U, bool), s Seq[T]) Seq[U] {
	var kept []U

	for _, e := range s.elements {
		res, ok := f(e)
		if ok {
			kept = append(kept, res)
		}
	}

	return Seq[U]{count: len(kept), elements: kept}
}

// Partition splits s into the elements satisfying pred and the elements
// rejected by it, in a single pass. The rejected count is derived from the
// original count and the kept count.
func (s Seq[T]) Partition(pred func(e T) bool) (kept, rejected Seq[T]) {
	keptElements := make([]T, 0)
	rejectedElements := make([]T, 0)

	for _, e := range s.elements {
		if pred(e) {
			keptElements = append(keptElements, e)
		} else {
			rejectedElements = append(rejectedElements, e)
		}
	}

	kept = Seq[T]{count: len(keptElements), elements: keptElements}
	rejected = Seq[T]{count: s.count - kept.count, elements: rejectedElements}
	return
}
