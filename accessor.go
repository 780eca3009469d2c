package sparsego

// At returns the element at (row, col). The diagonal is a direct O(1)
// read; off-diagonal lookups binary-search the row's column range and
// synthesize a zero for structural absence instead of aliasing the
// sentinel slot.
func (s *storage[V, I]) At(row, col int) (V, error) {
	var zero V
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return zero, outOfRangeError(row, col, s.rows, s.cols)
	}
	if row == col {
		return s.a[row], nil
	}
	lo, hi := s.rowBounds(row)
	if lo == hi {
		return zero, nil
	}
	if pos := s.binarySearch(lo, hi-1, col); pos >= 0 {
		return s.a[pos], nil
	}
	return zero, nil
}

// Set stores v at (row, col). Diagonal writes are in-place and always
// report Replaced. Off-diagonal writes overwrite a present entry
// (Replaced) or open a one-slot gap at the sorted position and bump the
// subsequent row headers (Inserted).
func (s *storage[V, I]) Set(row, col int, v V) (SetResult, error) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return 0, outOfRangeError(row, col, s.rows, s.cols)
	}
	if row == col {
		s.a[row] = v
		s.opts.metrics.RecordReplace()
		return Replaced, nil
	}

	lo, hi := s.rowBounds(row)
	if lo != hi {
		pos, found := s.insertSearch(lo, hi-1, col)
		if found {
			s.a[pos] = v
			s.opts.metrics.RecordReplace()
			return Replaced, nil
		}
		return s.insertOne(row, pos, col, v)
	}
	return s.insertOne(row, lo, col, v)
}

func (s *storage[V, I]) insertOne(row, pos, col int, v V) (SetResult, error) {
	if err := s.vectorInsert(pos, []int{col}, []V{v}); err != nil {
		return 0, err
	}
	s.bumpRowStarts(row, 1)
	s.ndnz++
	s.opts.metrics.RecordInsert()
	return Inserted, nil
}
