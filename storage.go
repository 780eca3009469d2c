package sparsego

import (
	"fmt"
	"math"
)

// storage is the concrete Yale container for one element/index type pair.
//
// Layout of the parallel arrays (capacity == len(a) == len(ija)):
//
//	a:   [0, rows)       diagonal, always materialized
//	     rows            sentinel zero
//	     [rows+1, size)  off-diagonal values, row-major, column-sorted
//	ija: [0, rows]       IA: row i owns offsets [ija[i], ija[i+1])
//	     [rows+1, size)  JA: column index per off-diagonal value
//
// size == ija[rows] == ndnz + rows + 1. Slots past size are unspecified.
type storage[V Number, I Index] struct {
	rows, cols int
	a          []V
	ija        []I
	ndnz       int
	opts       options
}

func newStorage[V Number, I Index](rows, cols int, o options) *storage[V, I] {
	capacity := clampCapacity(o.initialCapacity, rows, cols)
	s := &storage[V, I]{
		rows: rows,
		cols: cols,
		a:    make([]V, capacity),
		ija:  make([]I, capacity),
		opts: o,
	}
	s.initEmpty()
	o.logger.Debug("sparsego: created matrix",
		"rows", rows, "cols", cols,
		"capacity", capacity, "index_bits", s.IndexBits())
	return s
}

// clampCapacity bounds a requested capacity to [rows+2, maxCapacityFor].
// The floor holds the full IA header, the sentinel and one entry; the
// ceiling is one slot per representable off-diagonal nonzero.
func clampCapacity(requested, rows, cols int) int {
	if min := rows + 2; requested < min {
		requested = min
	}
	if max := maxCapacityFor(rows, cols); max <= math.MaxInt64 && uint64(requested) > max {
		requested = int(max)
	}
	return requested
}

// initEmpty resets IA to the empty-row sentinel value and zeroes the
// diagonal and the sentinel slot.
func (s *storage[V, I]) initEmpty() {
	header := I(s.rows + 1)
	for i := 0; i <= s.rows; i++ {
		s.ija[i] = header
	}
	var zero V
	for i := 0; i <= s.rows; i++ {
		s.a[i] = zero
	}
	s.ndnz = 0
}

// InitEmpty resets the matrix to all zeros without shrinking the backing
// arrays.
func (s *storage[V, I]) InitEmpty() { s.initEmpty() }

func (s *storage[V, I]) Rows() int     { return s.rows }
func (s *storage[V, I]) Cols() int     { return s.cols }
func (s *storage[V, I]) NNZ() int      { return s.ndnz }
func (s *storage[V, I]) Capacity() int { return len(s.a) }

// Size returns the occupied prefix length, read from the end of IA.
func (s *storage[V, I]) Size() int { return int(s.ija[s.rows]) }

func (s *storage[V, I]) Kind() ElemKind { return KindOf[V]() }

func (s *storage[V, I]) IndexBits() int {
	switch any(I(0)).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	case uint32:
		return 32
	default:
		return 64
	}
}

// Slice is not supported by Yale storage.
func (s *storage[V, I]) Slice(fromRow, fromCol, rows, cols int) (Matrix[V], error) {
	return nil, fmt.Errorf("%w: slicing of Yale storage", ErrNotImplemented)
}

func (s *storage[V, I]) Diagonal() []V {
	out := make([]V, s.rows)
	copy(out, s.a[:s.rows])
	return out
}

func (s *storage[V, I]) LU() []V {
	out := make([]V, s.ndnz)
	copy(out, s.a[s.rows+1:s.Size()])
	return out
}

func (s *storage[V, I]) RowPointers() []int {
	out := make([]int, s.rows+1)
	for i := 0; i <= s.rows; i++ {
		out[i] = int(s.ija[i])
	}
	return out
}

func (s *storage[V, I]) ColumnIndices() []int {
	size := s.Size()
	out := make([]int, s.ndnz)
	for p := s.rows + 1; p < size; p++ {
		out[p-s.rows-1] = int(s.ija[p])
	}
	return out
}

func (s *storage[V, I]) Components() Components[V] {
	return Components[V]{
		Rows:          s.rows,
		Cols:          s.cols,
		RowPointers:   s.RowPointers(),
		ColumnIndices: s.ColumnIndices(),
		Diagonal:      s.Diagonal(),
		Values:        s.LU(),
	}
}

// sealed structural view

func (s *storage[V, I]) rowBounds(i int) (int, int) {
	return int(s.ija[i]), int(s.ija[i+1])
}

func (s *storage[V, I]) colAt(p int) int { return int(s.ija[p]) }
func (s *storage[V, I]) valAt(p int) V   { return s.a[p] }
func (s *storage[V, I]) diagAt(i int) V  { return s.a[i] }

func (s *storage[V, I]) setDiagVal(i int, v V) { s.a[i] = v }
func (s *storage[V, I]) setLUVal(p int, v V)   { s.a[p] = v }

// loadStructure installs a complete row structure from neutral arrays:
// ia holds the rows+1 absolute row pointers, ja one column per
// off-diagonal entry. Values are zeroed; callers fill them afterwards.
// The structure must already satisfy the layout invariants.
func (s *storage[V, I]) loadStructure(ia, ja []int) error {
	if len(ia) != s.rows+1 || ia[0] != s.rows+1 || ia[s.rows]-ia[0] != len(ja) {
		panic("sparsego: loadStructure called with inconsistent row pointers")
	}
	size := ia[s.rows]
	if size > len(s.a) {
		if uint64(size) > maxCapacityFor(s.rows, s.cols) {
			return fmt.Errorf("%w: structure needs %d slots", ErrCapacityExceeded, size)
		}
		// Nothing to preserve: the old structure is being replaced.
		s.a = make([]V, size)
		s.ija = make([]I, size)
	}
	for i := 0; i <= s.rows; i++ {
		s.ija[i] = I(ia[i])
	}
	for k, j := range ja {
		s.ija[s.rows+1+k] = I(j)
	}
	var zero V
	for p := 0; p < size; p++ {
		s.a[p] = zero
	}
	s.ndnz = len(ja)
	return nil
}

// FromComponents reconstructs a matrix from its neutral form, validating
// the layout invariants. It is the exact inverse of Matrix.Components and
// the entry point used by snapshot decoding.
func FromComponents[V Number](c Components[V], optFns ...Option) (Matrix[V], error) {
	if c.Rows <= 0 || c.Cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, c.Rows, c.Cols)
	}
	if len(c.RowPointers) != c.Rows+1 {
		return nil, fmt.Errorf("%w: %d row pointers for %d rows", ErrInvalidStructure, len(c.RowPointers), c.Rows)
	}
	if len(c.Diagonal) != c.Rows {
		return nil, fmt.Errorf("%w: diagonal length %d for %d rows", ErrInvalidStructure, len(c.Diagonal), c.Rows)
	}
	if c.RowPointers[0] != c.Rows+1 {
		return nil, fmt.Errorf("%w: first row pointer %d, want %d", ErrInvalidStructure, c.RowPointers[0], c.Rows+1)
	}
	nnz := c.RowPointers[c.Rows] - c.RowPointers[0]
	if len(c.ColumnIndices) != nnz || len(c.Values) != nnz {
		return nil, fmt.Errorf("%w: row pointers declare %d entries, got %d columns and %d values",
			ErrInvalidStructure, nnz, len(c.ColumnIndices), len(c.Values))
	}
	for i := 0; i < c.Rows; i++ {
		lo, hi := c.RowPointers[i], c.RowPointers[i+1]
		if hi < lo {
			return nil, fmt.Errorf("%w: row %d pointers decrease", ErrInvalidStructure, i)
		}
		prev := -1
		for p := lo; p < hi; p++ {
			j := c.ColumnIndices[p-c.Rows-1]
			switch {
			case j < 0 || j >= c.Cols:
				return nil, fmt.Errorf("%w: row %d column %d outside %d columns", ErrInvalidStructure, i, j, c.Cols)
			case j == i:
				return nil, fmt.Errorf("%w: row %d stores its diagonal off-diagonally", ErrInvalidStructure, i)
			case j <= prev:
				return nil, fmt.Errorf("%w: row %d columns not strictly increasing", ErrInvalidStructure, i)
			}
			prev = j
		}
	}

	o := applyOptions(optFns)
	if need := c.Rows + 1 + nnz; o.initialCapacity < need {
		o.initialCapacity = need
	}
	m := newMatrix[V](c.Rows, c.Cols, o)
	if err := m.loadStructure(c.RowPointers, c.ColumnIndices); err != nil {
		return nil, err
	}
	for i, v := range c.Diagonal {
		m.setDiagVal(i, v)
	}
	for k, v := range c.Values {
		m.setLUVal(c.Rows+1+k, v)
	}
	return m, nil
}
