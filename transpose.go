package sparsego

// Transpose returns a new matrix with swapped extents. This is a full
// structural rebuild: source column indices are re-bucketed into result
// rows with a counting pass, so each result row comes out column-sorted
// without a separate sort step (source rows are walked in ascending
// order, and a source row index is a result column index).
func (s *storage[V, I]) Transpose() (Matrix[V], error) {
	size := s.Size()

	counts := make([]int, s.cols)
	for p := s.rows + 1; p < size; p++ {
		counts[int(s.ija[p])]++
	}

	ia := make([]int, s.cols+1)
	ia[0] = s.cols + 1
	for j := 0; j < s.cols; j++ {
		ia[j+1] = ia[j] + counts[j]
	}

	ndnz := ia[s.cols] - ia[0]
	ja := make([]int, ndnz)
	vals := make([]V, ndnz)
	next := make([]int, s.cols)
	for j := 0; j < s.cols; j++ {
		next[j] = ia[j] - s.cols - 1
	}
	for i := 0; i < s.rows; i++ {
		lo, hi := s.rowBounds(i)
		for p := lo; p < hi; p++ {
			j := int(s.ija[p])
			slot := next[j]
			ja[slot] = i
			vals[slot] = s.a[p]
			next[j]++
		}
	}

	o := s.opts
	o.initialCapacity = s.cols + 1 + ndnz
	out := newMatrix[V](s.cols, s.rows, o)
	if err := out.loadStructure(ia, ja); err != nil {
		return nil, err
	}
	for i := 0; i < s.rows && i < s.cols; i++ {
		out.setDiagVal(i, s.a[i])
	}
	for k, v := range vals {
		out.setLUVal(s.cols+1+k, v)
	}
	s.opts.metrics.RecordCopy()
	return out, nil
}
