package sorting

// exchangeSort compares every slot i with every later slot j (including
// itself) and swaps out-of-order pairs. It always walks the full
// N*(N+1)/2 grid so the animation has the same length on any input.
func exchangeSort(b *Buffer, sink Sink) error {
	n := b.Len()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if b.Compare(i, j) == Greater {
				b.Swap(i, j)
			}
			if err := sink.Notify(Step{View: b, Primary: i, Secondary: j}); err != nil {
				return err
			}
		}
	}
	return nil
}
