package sparsego

// GrowthFactor is the multiplier applied to the backing-array capacity
// when an insertion needs more room. Chosen so repeated single-element
// insertions amortize to O(1).
const GrowthFactor = 1.5

// growForInsert reallocates both backing arrays for an insertion of n
// entries at pos, leaving an n-slot gap there. The new arrays are fully
// populated before being swapped in, so a failed growth never leaves the
// arrays at mismatched lengths.
//
// Returns ErrCapacityExceeded when even the exact required size cannot
// fit a matrix of this shape; the storage is untouched in that case.
func (s *storage[V, I]) growForInsert(currentSize, pos, n int) error {
	oldCapacity := len(s.a)
	maxCapacity := maxCapacityFor(s.rows, s.cols)

	need := uint64(currentSize) + uint64(n)
	if need > maxCapacity {
		s.opts.logger.Warn("sparsego: capacity exhausted",
			"rows", s.rows, "cols", s.cols, "size", currentSize, "extra", n)
		return ErrCapacityExceeded
	}

	newCapacity := uint64(float64(oldCapacity) * GrowthFactor)
	if newCapacity > maxCapacity {
		newCapacity = maxCapacity
	}
	if newCapacity < need {
		newCapacity = need
	}

	newIJA := make([]I, newCapacity)
	newA := make([]V, newCapacity)

	copy(newIJA[:pos], s.ija[:pos])
	copy(newIJA[pos+n:currentSize+n], s.ija[pos:currentSize])
	copy(newA[:pos], s.a[:pos])
	copy(newA[pos+n:currentSize+n], s.a[pos:currentSize])

	s.ija = newIJA
	s.a = newA

	s.opts.logger.Debug("sparsego: grew matrix capacity",
		"old", oldCapacity, "new", int(newCapacity), "size", currentSize)
	s.opts.metrics.RecordResize(oldCapacity, int(newCapacity))
	return nil
}
