package sparsego

// Equal reports whether both matrices hold the same values. Structural
// absence is semantically zero, so a stored explicit zero and a missing
// entry compare equal. Shapes must match; the index widths of the two
// operands may differ.
func (s *storage[V, I]) Equal(other Matrix[V]) (bool, error) {
	if other == nil {
		return false, ErrShapeMismatch
	}
	if s.rows != other.Rows() || s.cols != other.Cols() {
		return false, ErrShapeMismatch
	}

	// Diagonals first: both are fully materialized, any mismatch
	// short-circuits the structural walk.
	for i := 0; i < s.rows; i++ {
		if s.a[i] != other.diagAt(i) {
			return false, nil
		}
	}

	for i := 0; i < s.rows; i++ {
		lLo, lHi := s.rowBounds(i)
		rLo, rHi := other.rowBounds(i)

		lEmpty := s.ndrowIsEmpty(lLo, lHi)
		rEmpty := ndrowIsEmpty(other, rLo, rHi)
		switch {
		case lEmpty && rEmpty:
			continue
		case lEmpty != rEmpty:
			return false, nil
		case !s.ndrowEqual(other, lLo, lHi, rLo, rHi):
			return false, nil
		}
	}
	return true, nil
}

// ndrowIsEmpty reports whether a row's off-diagonal region holds nothing
// but zeros. A structurally empty row and a row of explicit zeros are
// both "empty".
func (s *storage[V, I]) ndrowIsEmpty(lo, hi int) bool {
	var zero V
	for p := lo; p < hi; p++ {
		if s.a[p] != zero {
			return false
		}
	}
	return true
}

func ndrowIsEmpty[V Number](m Matrix[V], lo, hi int) bool {
	var zero V
	for p := lo; p < hi; p++ {
		if m.valAt(p) != zero {
			return false
		}
	}
	return true
}

// ndrowEqual compares two non-empty off-diagonal rows with a two-pointer
// walk: the side holding the smaller next column advances alone and its
// entry must be zero (the other side lacks it); aligned columns compare
// values directly.
func (s *storage[V, I]) ndrowEqual(other Matrix[V], lLo, lHi, rLo, rHi int) bool {
	var zero V
	lp, rp := lLo, rLo
	for lp < lHi && rp < rHi {
		lj, rj := s.colAt(lp), other.colAt(rp)
		switch {
		case lj == rj:
			if s.a[lp] != other.valAt(rp) {
				return false
			}
			lp++
			rp++
		case lj < rj:
			if s.a[lp] != zero {
				return false
			}
			lp++
		default:
			if other.valAt(rp) != zero {
				return false
			}
			rp++
		}
	}
	for ; lp < lHi; lp++ {
		if s.a[lp] != zero {
			return false
		}
	}
	for ; rp < rHi; rp++ {
		if other.valAt(rp) != zero {
			return false
		}
	}
	return true
}
