// SPDX-License-Identifier: MIT
// Package matrix: kernels shared by both storage families.
//
// Every kernel follows the same shape: strict fail-fast validation through
// the central validators, a fast path per concrete family (*Dense flat
// loops, *CSR nonzero walks), and a generic At-based fallback with a fixed
// i→j order. Operands are never mutated; results are freshly allocated.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opAbsRowSums    = "AbsRowSums"
	opAbsColSums    = "AbsColSums"
	opScaleRowsCols = "ScaleRowsCols"
	opTranspose     = "Transpose"
	opMul           = "Mul"
	opToDense       = "ToDense"
	opToCSR         = "ToCSR"
)

// matrixErrorf wraps err with an operation tag, preserving the original
// error via %w so callers can still match sentinels with errors.Is.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// AbsRowSums returns the vector s with s[i] = Σ_j |m[i,j]|.
// This is the row-degree vector of a signed incidence matrix.
//
// Determinism: fixed flat/nonzero traversal per family, i→j fallback.
// Complexity: O(r*c) dense, O(nnz) CSR.
func AbsRowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAbsRowSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	s := make([]float64, rows)

	switch t := m.(type) {
	case *Dense:
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				s[i] += math.Abs(t.data[base+j])
			}
		}
		return s, nil
	case *CSR:
		for i := 0; i < rows; i++ {
			for k := t.rowPtr[i]; k < t.rowPtr[i+1]; k++ {
				s[i] += math.Abs(t.values[k])
			}
		}
		return s, nil
	}

	// Fallback: generic interface path.
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAbsRowSums, err)
			}
			s[i] += math.Abs(v)
		}
	}

	return s, nil
}

// AbsColSums returns the vector s with s[j] = Σ_i |m[i,j]|.
// This is the column-degree vector of a signed incidence matrix.
//
// Determinism: fixed flat/nonzero traversal per family, i→j fallback.
// Complexity: O(r*c) dense, O(nnz) CSR.
func AbsColSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opAbsColSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	s := make([]float64, cols)

	switch t := m.(type) {
	case *Dense:
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				s[j] += math.Abs(t.data[base+j])
			}
		}
		return s, nil
	case *CSR:
		for k := 0; k < len(t.values); k++ {
			s[t.colInd[k]] += math.Abs(t.values[k])
		}
		return s, nil
	}

	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opAbsColSums, err)
			}
			s[j] += math.Abs(v)
		}
	}

	return s, nil
}

// ScaleRowsCols computes out[i,j] = rowScale[i] * m[i,j] * colScale[j],
// i.e. the two-sided diagonal scaling diag(rowScale) · M · diag(colScale)
// without materializing the diagonal factors.
//
// The result preserves the input's sparsity family (*Dense → *Dense,
// *CSR → *CSR with an identical nonzero pattern; other implementations
// produce a Dense). Positive scale factors therefore preserve the sign
// pattern of m exactly.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (scale length disagreement).
// Complexity: O(r*c) dense, O(r + nnz) CSR.
func ScaleRowsCols(m Matrix, rowScale, colScale []float64) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScaleRowsCols, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(rowScale, rows); err != nil {
		return nil, matrixErrorf(opScaleRowsCols, err)
	}
	if err := ValidateVecLen(colScale, cols); err != nil {
		return nil, matrixErrorf(opScaleRowsCols, err)
	}

	switch t := m.(type) {
	case *Dense:
		res := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
		for i := 0; i < rows; i++ {
			base := i * cols
			ri := rowScale[i]
			for j := 0; j < cols; j++ {
				res.data[base+j] = ri * t.data[base+j] * colScale[j]
			}
		}
		return res, nil
	case *CSR:
		res := t.Clone().(*CSR)
		for i := 0; i < rows; i++ {
			ri := rowScale[i]
			for k := res.rowPtr[i]; k < res.rowPtr[i+1]; k++ {
				res.values[k] = ri * res.values[k] * colScale[res.colInd[k]]
			}
		}
		return res, nil
	}

	// Fallback: generic interface path into a Dense result.
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opScaleRowsCols, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opScaleRowsCols, err)
			}
			res.data[i*cols+j] = rowScale[i] * v * colScale[j]
		}
	}

	return res, nil
}

// Transpose returns mᵀ in the same sparsity family as m (*Dense → *Dense,
// *CSR → *CSR via a counting transpose; other implementations → Dense).
// The original matrix is never mutated.
//
// Complexity: O(r*c) dense, O(r + c + nnz) CSR.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	rows, cols := m.Rows(), m.Cols()

	switch t := m.(type) {
	case *Dense:
		res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
		for i := 0; i < rows; i++ {
			base := i * cols
			for j := 0; j < cols; j++ {
				res.data[j*rows+i] = t.data[base+j]
			}
		}
		return res, nil
	case *CSR:
		nnz := len(t.values)
		res := &CSR{
			r:      cols,
			c:      rows,
			rowPtr: make([]int, cols+1),
			colInd: make([]int, nnz),
			values: make([]float64, nnz),
		}
		// Count entries per output row (input column).
		for k := 0; k < nnz; k++ {
			res.rowPtr[t.colInd[k]+1]++
		}
		for j := 0; j < cols; j++ {
			res.rowPtr[j+1] += res.rowPtr[j]
		}
		// Scatter: input rows ascend, so each output row segment stays
		// sorted by column without an extra sort.
		next := make([]int, cols)
		copy(next, res.rowPtr[:cols])
		for i := 0; i < rows; i++ {
			for k := t.rowPtr[i]; k < t.rowPtr[i+1]; k++ {
				j := t.colInd[k]
				pos := next[j]
				next[j]++
				res.colInd[pos] = i
				res.values[pos] = t.values[k]
			}
		}
		return res, nil
	}

	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B into a Dense
// result (products of sparse boundary operators densify quickly, and the
// callers of Mul are verification paths, not hot loops).
//
// Fast paths: Dense×Dense uses an i→k→j loop with zero skipping;
// CSR×CSR scatters each A-row's nonzeros against B's row segments.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (a.Cols != b.Rows).
// Complexity: O(r*n*c) dense; O(Σ_nnz(A-row) * nnz(B-row)) sparse.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for i := 0; i < aRows; i++ {
				baseA, baseR := i*aCols, i*bCols
				for k := 0; k < aCols; k++ {
					av := da.data[baseA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					baseB := k * bCols
					for j := 0; j < bCols; j++ {
						res.data[baseR+j] += av * db.data[baseB+j]
					}
				}
			}
			return res, nil
		}
	}
	if sa, okA := a.(*CSR); okA {
		if sb, okB := b.(*CSR); okB {
			for i := 0; i < aRows; i++ {
				baseR := i * bCols
				for ka := sa.rowPtr[i]; ka < sa.rowPtr[i+1]; ka++ {
					k, av := sa.colInd[ka], sa.values[ka]
					for kb := sb.rowPtr[k]; kb < sb.rowPtr[k+1]; kb++ {
						res.data[baseR+sb.colInd[kb]] += av * sb.values[kb]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i→j→k).
	var av, bv, acc float64
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			acc = 0
			for k := 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				acc += av * bv
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// NewDiagonalCSR builds the n×n diagonal matrix diag(d) in CSR form.
// Exact zeros on the diagonal are not stored. O(n).
func NewDiagonalCSR(d []float64) (*CSR, error) {
	if len(d) == 0 {
		return nil, matrixErrorf("NewDiagonalCSR", ErrInvalidDimensions)
	}
	ts := make([]Triplet, 0, len(d))
	for i, v := range d {
		if v != 0 {
			ts = append(ts, Triplet{Row: i, Col: i, Val: v})
		}
	}

	return NewCSRFromTriplets(len(d), len(d), ts)
}

// ToDense converts any Matrix into a freshly allocated Dense. O(r*c).
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	if s, ok := m.(*CSR); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			for k := s.rowPtr[i]; k < s.rowPtr[i+1]; k++ {
				res.data[base+s.colInd[k]] = s.values[k]
			}
		}
		return res, nil
	}
	var v float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToDense, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// ToCSR converts any Matrix into a freshly allocated CSR, dropping exact
// zeros. O(r*c) scan for non-CSR inputs, O(r + nnz) for CSR.
func ToCSR(m Matrix) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToCSR, err)
	}
	if s, ok := m.(*CSR); ok {
		return s.Clone().(*CSR), nil
	}
	rows, cols := m.Rows(), m.Cols()
	var ts []Triplet
	var v float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToCSR, err)
			}
			if v != 0 {
				ts = append(ts, Triplet{Row: i, Col: j, Val: v})
			}
		}
	}

	return NewCSRFromTriplets(rows, cols, ts)
}
