// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All kernels return these sentinels and tests check them
// via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with fmt.Errorf("ctx: %w", ErrX) at the
// call site when context is essential; errors.Is still matches.

var (
	// ErrInvalidDimensions is returned when a requested shape is invalid
	// (rows <= 0 or cols <= 0). Constructors validate before allocation.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands, e.g. Mul where a.Cols != b.Rows, or a scale vector whose
	// length disagrees with the matrix extent.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was
	// passed where a concrete value is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (triplet ingestion, Set).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
