package sparsego

import "fmt"

// vectorInsert opens a gap of len(cols) slots at pos in both arrays and
// writes the new (column, value) pairs there. Existing entries at or
// after pos shift right. vals may be nil for structure-only insertion
// (placeholders read as zero).
//
// pos must lie in the off-diagonal region (>= rows+1): the header and
// diagonal are never insertion targets, and a violation is a bug in the
// caller, not a user error.
//
// The caller remains responsible for bumping the row headers after the
// target row (bumpRowStarts) and for updating ndnz.
func (s *storage[V, I]) vectorInsert(pos int, cols []int, vals []V) error {
	if pos < s.rows+1 {
		panic(fmt.Sprintf("sparsego: vector insert at %d is before the off-diagonal region (%d)", pos, s.rows+1))
	}
	n := len(cols)
	size := s.Size()

	if size+n > len(s.a) {
		if err := s.growForInsert(size, pos, n); err != nil {
			return err
		}
	} else {
		// In-place: shift the tail right, last element first, so the
		// overlapping ranges never corrupt each other.
		for i := size - 1; i >= pos; i-- {
			s.ija[i+n] = s.ija[i]
			s.a[i+n] = s.a[i]
		}
	}

	var zero V
	for i := 0; i < n; i++ {
		s.ija[pos+i] = I(cols[i])
		if vals != nil {
			s.a[pos+i] = vals[i]
		} else {
			s.a[pos+i] = zero
		}
	}
	return nil
}

// bumpRowStarts adds n to every row header after row, keeping
// IA[rows] == size once an insertion into row has completed.
func (s *storage[V, I]) bumpRowStarts(row, n int) {
	for i := row + 1; i <= s.rows; i++ {
		s.ija[i] += I(n)
	}
}
