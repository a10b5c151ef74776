// SPDX-License-Identifier: MIT
// Package normalization: the four boundary-operator normalizers and their
// aggregator. Every function is pure: operands are read-only, results are
// freshly allocated in the operand's sparsity family, and loop orders are
// inherited from the deterministic matrix kernels.

package normalization

import (
	"fmt"

	"github.com/toposphere/toponorm/matrix"
)

// Operation name constants for unified error wrapping.
const (
	opB1  = "B1Normalized"
	opB1T = "B1TransposeNormalized"
	opB2  = "B2Normalized"
	opB2T = "B2TransposeNormalized"
	opAll = "NormalizedOperators"
)

// normErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can match sentinels with errors.Is.
func normErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// invFloorScale converts a degree vector into the inverse scale vector
// s[i] = 1 / max(floor, d[i]). With floor > 0 every factor is strictly
// positive and finite, which is what makes sign preservation exact.
func invFloorScale(d []float64, floor float64) []float64 {
	s := make([]float64, len(d))
	for i, v := range d {
		if v < floor {
			v = floor
		}
		s[i] = 1 / v
	}

	return s
}

// operatorDegrees returns the row- and column-degree vectors of m, i.e.
// the per-row and per-column sums of |m|.
func operatorDegrees(m matrix.Matrix) (rows, cols []float64, err error) {
	if rows, err = matrix.AbsRowSums(m); err != nil {
		return nil, nil, err
	}
	if cols, err = matrix.AbsColSums(m); err != nil {
		return nil, nil, err
	}

	return rows, cols, nil
}

// sharedDegrees returns the combined degree vector on the dimension B1
// and B2 share: shared[j] = colsum(|B1|)[j] + rowsum(|B2|)[j]. An edge's
// degree counts both the vertices it bounds and the triangles it
// co-bounds. Returns ErrShapeMismatch when B1.Cols() != B2.Rows().
func sharedDegrees(b1, b2 matrix.Matrix) (b1Rows, shared []float64, err error) {
	if b1 == nil || b2 == nil {
		return nil, nil, ErrNilOperator
	}
	if b1.Cols() != b2.Rows() {
		return nil, nil, fmt.Errorf("B1 is %dx%d, B2 is %dx%d: %w",
			b1.Rows(), b1.Cols(), b2.Rows(), b2.Cols(), ErrShapeMismatch)
	}
	b1Rows, b1Cols, err := operatorDegrees(b1)
	if err != nil {
		return nil, nil, err
	}
	b2Rows, err := matrix.AbsRowSums(b2)
	if err != nil {
		return nil, nil, err
	}
	shared = make([]float64, len(b1Cols))
	for j := range shared {
		shared[j] = b1Cols[j] + b2Rows[j]
	}

	return b1Rows, shared, nil
}

// B2Normalized computes Dr⁻¹ · B2 · Dc⁻¹ where Dr/Dc are the row/column
// degree diagonals of |B2|, each degree floored at the configured minimum.
//
// Contract: same shape and sparsity family as b2; sign pattern preserved
// exactly; total over well-formed inputs (zero-degree rows/columns floor
// to an identity factor, no division error).
// Complexity: O(r*c) dense, O(r + nnz) sparse.
func B2Normalized(b2 matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)
	if b2 == nil {
		return nil, normErrorf(opB2, ErrNilOperator)
	}
	rows, cols, err := operatorDegrees(b2)
	if err != nil {
		return nil, normErrorf(opB2, err)
	}
	out, err := matrix.ScaleRowsCols(b2, invFloorScale(rows, o.degreeFloor), invFloorScale(cols, o.degreeFloor))
	if err != nil {
		return nil, normErrorf(opB2, err)
	}

	return out, nil
}

// B2TransposeNormalized computes the normalization of B2ᵀ under the same
// rule with row/column roles swapped: Dc⁻¹ · B2ᵀ · Dr⁻¹. The result equals
// the transpose of B2Normalized(b2) exactly (identical scale factors are
// applied to identical entries).
// Complexity: O(r*c) dense, O(r + c + nnz) sparse.
func B2TransposeNormalized(b2 matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)
	if b2 == nil {
		return nil, normErrorf(opB2T, ErrNilOperator)
	}
	rows, cols, err := operatorDegrees(b2)
	if err != nil {
		return nil, normErrorf(opB2T, err)
	}
	bt, err := matrix.Transpose(b2)
	if err != nil {
		return nil, normErrorf(opB2T, err)
	}
	out, err := matrix.ScaleRowsCols(bt, invFloorScale(cols, o.degreeFloor), invFloorScale(rows, o.degreeFloor))
	if err != nil {
		return nil, normErrorf(opB2T, err)
	}

	return out, nil
}

// B1Normalized computes the coupled normalization Dr⁻¹ · B1 · Dshared⁻¹,
// where Dr holds B1's row degrees and Dshared combines B1's column
// degrees with B2's row degrees on the shared (edge) dimension — a
// 1-simplex's scaling depends on how many 2-simplices it co-bounds.
//
// Contract: same shape and sparsity family as b1; sign pattern preserved
// exactly. Returns ErrShapeMismatch when B1.Cols() != B2.Rows().
// Complexity: O(r*c) dense, O(r + nnz(B1) + nnz(B2)) sparse.
func B1Normalized(b1, b2 matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)
	rows, shared, err := sharedDegrees(b1, b2)
	if err != nil {
		return nil, normErrorf(opB1, err)
	}
	out, err := matrix.ScaleRowsCols(b1, invFloorScale(rows, o.degreeFloor), invFloorScale(shared, o.degreeFloor))
	if err != nil {
		return nil, normErrorf(opB1, err)
	}

	return out, nil
}

// B1TransposeNormalized computes Dshared⁻¹ · B1ᵀ · Dr⁻¹, the transpose
// counterpart of B1Normalized; the two agree under transposition exactly.
// Returns ErrShapeMismatch when B1.Cols() != B2.Rows().
// Complexity: O(r*c) dense, O(r + c + nnz(B1) + nnz(B2)) sparse.
func B1TransposeNormalized(b1, b2 matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)
	rows, shared, err := sharedDegrees(b1, b2)
	if err != nil {
		return nil, normErrorf(opB1T, err)
	}
	bt, err := matrix.Transpose(b1)
	if err != nil {
		return nil, normErrorf(opB1T, err)
	}
	out, err := matrix.ScaleRowsCols(bt, invFloorScale(shared, o.degreeFloor), invFloorScale(rows, o.degreeFloor))
	if err != nil {
		return nil, normErrorf(opB1T, err)
	}

	return out, nil
}

// NormalizedOperators runs the four normalizers exactly once each and
// returns (B1N, B1TN, B2N, B2TN). Pure: no side effects, inputs never
// mutated. Each output tracks the sparsity family of the operator it was
// derived from (B1N/B1TN follow b1, B2N/B2TN follow b2).
//
// Errors: ErrNilOperator, ErrShapeMismatch — the first failing normalizer
// aborts the aggregation.
func NormalizedOperators(b1, b2 matrix.Matrix, opts ...Option) (b1n, b1tn, b2n, b2tn matrix.Matrix, err error) {
	if b1n, err = B1Normalized(b1, b2, opts...); err != nil {
		return nil, nil, nil, nil, normErrorf(opAll, err)
	}
	if b1tn, err = B1TransposeNormalized(b1, b2, opts...); err != nil {
		return nil, nil, nil, nil, normErrorf(opAll, err)
	}
	if b2n, err = B2Normalized(b2, opts...); err != nil {
		return nil, nil, nil, nil, normErrorf(opAll, err)
	}
	if b2tn, err = B2TransposeNormalized(b2, opts...); err != nil {
		return nil, nil, nil, nil, normErrorf(opAll, err)
	}

	return b1n, b1tn, b2n, b2tn, nil
}
