package sparsego

import "fmt"

// FromOldYale performs a one-shot import of a matrix stored in the old
// Yale format: a zero-based row-pointer vector ia (len rows+1), a column
// vector ja and a value vector a, with the diagonal mixed into the rows.
// The diagonal entries are pulled out into the dedicated prefix and the
// remaining entries become the off-diagonal region. Values convert from
// S to V element-wise.
//
// This exists for loading external file formats; it is not part of
// steady-state operation.
func FromOldYale[V Number, S Number](rows, cols int, ia, ja []int, a []S, optFns ...Option) (Matrix[V], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidShape, rows, cols)
	}
	if len(ia) != rows+1 {
		return nil, fmt.Errorf("%w: %d row pointers for %d rows", ErrInvalidStructure, len(ia), rows)
	}
	if ia[0] != 0 {
		return nil, fmt.Errorf("%w: first old-Yale row pointer is %d, want 0", ErrInvalidStructure, ia[0])
	}
	if ia[rows] > len(ja) || ia[rows] > len(a) {
		return nil, fmt.Errorf("%w: row pointers reach %d but got %d columns and %d values",
			ErrInvalidStructure, ia[rows], len(ja), len(a))
	}

	// First walk: count the off-diagonal nonzeros and validate ordering.
	ndnz := 0
	for i := 0; i < rows; i++ {
		if ia[i+1] < ia[i] {
			return nil, fmt.Errorf("%w: row %d pointers decrease", ErrInvalidStructure, i)
		}
		prev := -1
		for p := ia[i]; p < ia[i+1]; p++ {
			j := ja[p]
			if j < 0 || j >= cols {
				return nil, fmt.Errorf("%w: row %d column %d outside %d columns", ErrInvalidStructure, i, j, cols)
			}
			if j <= prev {
				return nil, fmt.Errorf("%w: row %d columns not strictly increasing", ErrInvalidStructure, i)
			}
			prev = j
			if j != i {
				ndnz++
			}
		}
	}

	// Second walk: split diagonal from off-diagonal while preserving the
	// per-row column order.
	newIA := make([]int, rows+1)
	newIA[0] = rows + 1
	newJA := make([]int, ndnz)
	vals := make([]V, ndnz)
	diag := make([]V, rows)
	pp := 0
	for i := 0; i < rows; i++ {
		for p := ia[i]; p < ia[i+1]; p++ {
			if j := ja[p]; j == i {
				diag[i] = convertNumber[V](a[p])
			} else {
				newJA[pp] = j
				vals[pp] = convertNumber[V](a[p])
				pp++
			}
		}
		newIA[i+1] = rows + 1 + pp
	}

	o := applyOptions(optFns)
	if need := rows + 1 + ndnz; o.initialCapacity < need {
		o.initialCapacity = need
	}
	m := newMatrix[V](rows, cols, o)
	if err := m.loadStructure(newIA, newJA); err != nil {
		return nil, err
	}
	for i, v := range diag {
		m.setDiagVal(i, v)
	}
	for k, v := range vals {
		m.setLUVal(rows+1+k, v)
	}
	return m, nil
}
