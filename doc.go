// Package sparsego implements a compressed, row-indexed sparse matrix
// storage engine ("new Yale" format) for two-dimensional numeric matrices.
//
// The layout keeps the matrix diagonal in a dedicated prefix of the value
// array for O(1) access, followed by a zero sentinel and the off-diagonal
// nonzeros in row-major order, column-sorted within each row. A parallel
// index array holds the per-row offsets ("IA") and the column indices
// ("JA") in a single vector, using the smallest unsigned width that can
// address the matrix.
//
// # Quick Start
//
//	m, _ := sparsego.New[float64](4, 4)
//	m.Set(0, 0, 1.5)        // diagonal, O(1)
//	m.Set(0, 3, 2.0)        // off-diagonal insert
//	v, _ := m.At(0, 3)      // 2.0
//	v, _ = m.At(3, 0)       // 0.0 — structural absence is zero
//
//	p, _ := m.Mul(m)        // two-pass sparse product
//	tr, _ := m.Transpose()
//
// Snapshots are handled by the codec package; remote storage of snapshots
// by the blobstore package.
//
// # Concurrency
//
// A Matrix has no internal synchronization. Mutation (Set, and any
// operation that resizes the backing arrays) must be serialized by the
// caller; reads (At, Equal, the introspection accessors) may run
// concurrently only on a matrix that is not being mutated. Operations
// that return a new Matrix never share backing arrays with their inputs.
package sparsego
