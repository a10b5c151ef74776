// SPDX-License-Identifier: MIT

// Package matrix: the capability interface shared by both storage families.
// This file intentionally contains ONLY the public Matrix interface; errors
// and concrete types live in dedicated files per the package conventions.
package matrix

// Matrix is the read-only capability surface every kernel is written
// against. Two concrete families implement it: *Dense (row-major flat
// slice) and *CSR (compressed sparse row). Kernels select fast paths by
// static type assertion; any other implementation takes the generic
// At-based fallback.
//
// Complexity notes: Rows/Cols are O(1); At is O(1) for Dense and
// O(log nnz(row)) for CSR; Clone is O(r*c) or O(nnz).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the valid bounds.
	At(i, j int) (float64, error)

	// Clone returns a deep copy of the matrix, preserving the concrete
	// family. The returned Matrix is independent of the original.
	Clone() Matrix
}
