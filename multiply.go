package sparsego

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// Mul returns the sparse matrix product receiver × other. The
// construction runs in two passes over operands of a common element
// type:
//
//  1. Symbolic: per result row, the set of structurally nonzero product
//     columns is collected into a bitmap; the bitmaps fix the exact
//     result layout (and capacity) before any value exists. Ascending
//     bitmap iteration keeps each row column-sorted by construction.
//  2. Numeric: the same walk accumulates sum(left[i][k]*right[k][j])
//     into a dense scratch row and writes the finished values straight
//     into their final slots.
//
// Both operands' diagonals participate: they are structurally present by
// layout even when zero.
func (s *storage[V, I]) Mul(other Matrix[V]) (Matrix[V], error) {
	if other == nil {
		return nil, ErrShapeMismatch
	}
	if s.cols != other.Rows() {
		return nil, ErrShapeMismatch
	}
	rows, cols := s.rows, other.Cols()

	// Symbolic pass.
	rowSets := make([]*roaring64.Bitmap, rows)
	for i := 0; i < rows; i++ {
		bm := roaring64.New()
		gather := func(k int) {
			if k < cols {
				bm.Add(uint64(k))
			}
			lo, hi := other.rowBounds(k)
			for p := lo; p < hi; p++ {
				bm.Add(uint64(other.colAt(p)))
			}
		}
		if i < s.cols {
			gather(i)
		}
		lo, hi := s.rowBounds(i)
		for p := lo; p < hi; p++ {
			gather(int(s.ija[p]))
		}
		// The result diagonal is materialized separately.
		bm.Remove(uint64(i))
		rowSets[i] = bm
	}

	ia := make([]int, rows+1)
	ia[0] = rows + 1
	for i := 0; i < rows; i++ {
		ia[i+1] = ia[i] + int(rowSets[i].GetCardinality())
	}
	ja := make([]int, 0, ia[rows]-ia[0])
	for i := 0; i < rows; i++ {
		it := rowSets[i].Iterator()
		for it.HasNext() {
			ja = append(ja, int(it.Next()))
		}
	}

	o := s.opts
	o.initialCapacity = ia[rows]
	out := newMatrix[V](rows, cols, o)
	if err := out.loadStructure(ia, ja); err != nil {
		return nil, err
	}

	// Numeric pass.
	var zero V
	scratch := make([]V, cols)
	for i := 0; i < rows; i++ {
		accumulate := func(k int, av V) {
			if k < cols {
				scratch[k] += av * other.diagAt(k)
			}
			lo, hi := other.rowBounds(k)
			for p := lo; p < hi; p++ {
				scratch[other.colAt(p)] += av * other.valAt(p)
			}
		}
		if i < s.cols {
			accumulate(i, s.a[i])
		}
		lo, hi := s.rowBounds(i)
		for p := lo; p < hi; p++ {
			accumulate(int(s.ija[p]), s.a[p])
		}

		pos := ia[i]
		it := rowSets[i].Iterator()
		for it.HasNext() {
			j := int(it.Next())
			out.setLUVal(pos, scratch[j])
			scratch[j] = zero
			pos++
		}
		if i < cols {
			out.setDiagVal(i, scratch[i])
			scratch[i] = zero
		}
	}

	s.opts.metrics.RecordCopy()
	return out, nil
}
