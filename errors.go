package sparsego

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape is returned when a constructor receives non-positive
	// row or column counts.
	ErrInvalidShape = errors.New("sparsego: invalid shape")

	// ErrOutOfRange is returned when a row or column index lies outside
	// the matrix extents.
	ErrOutOfRange = errors.New("sparsego: index out of range")

	// ErrShapeMismatch is returned by binary operations whose operands
	// have incompatible extents.
	ErrShapeMismatch = errors.New("sparsego: shape mismatch")

	// ErrCapacityExceeded is returned when an insertion would grow the
	// backing arrays beyond the maximum a matrix of this shape can hold.
	// The matrix is left in its last consistent state.
	ErrCapacityExceeded = errors.New("sparsego: matrix capacity exceeded")

	// ErrInvalidStructure is returned when externally supplied structure
	// (old-Yale triples, snapshot components) violates the layout
	// invariants.
	ErrInvalidStructure = errors.New("sparsego: invalid matrix structure")

	// ErrNotImplemented marks operations the Yale storage intentionally
	// does not support, such as slicing by coordinate ranges.
	ErrNotImplemented = errors.New("sparsego: operation not implemented")
)

// ErrElemKindMismatch indicates that two matrices (or a snapshot and its
// target type) use different element representations.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrElemKindMismatch struct {
	Expected ElemKind
	Actual   ElemKind
	cause    error
}

func (e *ErrElemKindMismatch) Error() string {
	return fmt.Sprintf("sparsego: element kind mismatch: expected %s, got %s", e.Expected, e.Actual)
}

func (e *ErrElemKindMismatch) Unwrap() error { return e.cause }

func outOfRangeError(row, col, rows, cols int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfRange, row, col, rows, cols)
}
