package sorting

// partitionSort is quicksort with a last-element pivot and Lomuto
// partitioning. Already sorted input degrades to O(N^2) and O(N) recursion
// depth.
func partitionSort(b *Buffer, sink Sink) error {
	return quicksort(b, 0, b.Len()-1, sink)
}

func quicksort(b *Buffer, start, end int, sink Sink) error {
	if end <= start {
		return nil
	}
	p, err := partition(b, start, end, sink)
	if err != nil {
		return err
	}
	if err := quicksort(b, start, p-1, sink); err != nil {
		return err
	}
	return quicksort(b, p+1, end, sink)
}

// partition moves every value below b[end] in front of it and returns the
// pivot's final index. It emits end-start+1 steps: one per scanned slot and
// one for the pivot placement.
func partition(b *Buffer, start, end int, sink Sink) (int, error) {
	pivot := b.Get(end)
	i := start - 1

	for j := start; j < end; j++ {
		if b.Get(j) < pivot {
			i++
			b.Swap(i, j)
		}
		// i == start-1 means nothing has been placed below the pivot yet.
		primary := i
		if primary < start {
			primary = NoIndex
		}
		if err := sink.Notify(Step{View: b, Primary: primary, Secondary: j}); err != nil {
			return 0, err
		}
	}

	i++
	b.Swap(i, end)
	if err := sink.Notify(Step{View: b, Primary: i, Secondary: end}); err != nil {
		return 0, err
	}
	return i, nil
}
