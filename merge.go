package sparsego

// MergeStructure returns a new matrix whose nonzero structure is the
// union of the receiver's and other's. The receiver acts as the
// template: its values are carried over, and positions present only in
// other get zero-valued placeholders. Element-wise binary operations use
// the result as their pre-shaped output.
//
// Merging a matrix with itself is a no-op by definition and degenerates
// to Clone without walking the structure.
func (s *storage[V, I]) MergeStructure(other Matrix[V]) (Matrix[V], error) {
	if other == nil {
		return nil, ErrShapeMismatch
	}
	if s.rows != other.Rows() || s.cols != other.Cols() {
		return nil, ErrShapeMismatch
	}

	out := castStorage[V](s)
	if Matrix[V](s) == other {
		return out, nil
	}

	for i := 0; i < s.rows; i++ {
		oLo, oHi := other.rowBounds(i)
		if oLo == oHi {
			continue
		}
		// Row bounds of the destination are re-read after every
		// insertion; searchLo narrows to just past the last hit since
		// other's columns ascend strictly.
		searchLo, _ := out.rowBounds(i)
		for p := oLo; p < oHi; p++ {
			j := other.colAt(p)
			_, hi := out.rowBounds(i)

			var pos int
			var found bool
			if searchLo >= hi {
				pos, found = hi, false
			} else {
				pos, found = out.insertSearch(searchLo, hi-1, j)
			}
			if !found {
				if err := out.vectorInsert(pos, []int{j}, nil); err != nil {
					return nil, err
				}
				out.bumpRowStarts(i, 1)
				out.ndnz++
				out.opts.metrics.RecordInsert()
			}
			searchLo = pos + 1
		}
	}
	return out, nil
}
