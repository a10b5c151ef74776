// SPDX-License-Identifier: MIT

// Package matrix: CSR is the compressed-sparse-row implementation of the
// Matrix interface. Boundary operators are extremely sparse (two or three
// nonzeros per column), so CSR is the family they are produced in.
package matrix

import (
	"fmt"
	"math"
	"sort"
)

// Triplet is a single COO entry used to assemble a CSR matrix.
type Triplet struct {
	Row, Col int     // zero-based coordinates
	Val      float64 // entry value; exact zeros are dropped on assembly
}

// CSR is a compressed-sparse-row matrix of float64 values.
// rowPtr has length r+1; colInd/values have length NNZ() and are sorted by
// (row, col), which keeps every traversal deterministic.
type CSR struct {
	r, c   int
	rowPtr []int
	colInd []int
	values []float64
}

// NewCSRFromTriplets assembles a rows×cols CSR matrix from COO triplets.
// Duplicate coordinates are accumulated (summed); entries that are exactly
// zero after accumulation are dropped. The input slice is not modified.
//
// Errors:
//   - ErrInvalidDimensions — rows <= 0 or cols <= 0.
//   - ErrOutOfRange        — a triplet coordinate outside the shape.
//   - ErrNaNInf            — a non-finite triplet value.
//
// Complexity: O(nnz log nnz) for the coordinate sort, O(nnz) assembly.
func NewCSRFromTriplets(rows, cols int, ts []Triplet) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Validate coordinates and values before any allocation proportional
	// to nnz; fail fast with the position included.
	for i, t := range ts {
		if t.Row < 0 || t.Row >= rows || t.Col < 0 || t.Col >= cols {
			return nil, fmt.Errorf("NewCSRFromTriplets: triplet %d at (%d,%d): %w", i, t.Row, t.Col, ErrOutOfRange)
		}
		if math.IsNaN(t.Val) || math.IsInf(t.Val, 0) {
			return nil, fmt.Errorf("NewCSRFromTriplets: triplet %d at (%d,%d): %w", i, t.Row, t.Col, ErrNaNInf)
		}
	}

	// Work on a copy so the caller's slice stays untouched.
	sorted := make([]Triplet, len(ts))
	copy(sorted, ts)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Row != sorted[b].Row {
			return sorted[a].Row < sorted[b].Row
		}
		return sorted[a].Col < sorted[b].Col
	})

	m := &CSR{
		r:      rows,
		c:      cols,
		rowPtr: make([]int, rows+1),
		colInd: make([]int, 0, len(sorted)),
		values: make([]float64, 0, len(sorted)),
	}
	// Single pass: merge duplicates, drop zeros, count per-row entries.
	i := 0
	for i < len(sorted) {
		row, col := sorted[i].Row, sorted[i].Col
		sum := sorted[i].Val
		for i++; i < len(sorted) && sorted[i].Row == row && sorted[i].Col == col; i++ {
			sum += sorted[i].Val
		}
		if sum == 0 {
			continue // structural zeros are never stored
		}
		m.colInd = append(m.colInd, col)
		m.values = append(m.values, sum)
		m.rowPtr[row+1]++
	}
	// Prefix-sum the per-row counts into row pointers.
	for r := 0; r < rows; r++ {
		m.rowPtr[r+1] += m.rowPtr[r]
	}

	return m, nil
}

// Rows returns the number of rows in the matrix. O(1).
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. O(1).
func (m *CSR) Cols() int { return m.c }

// NNZ returns the number of stored (nonzero) entries. O(1).
func (m *CSR) NNZ() int { return len(m.values) }

// At retrieves the element at (row, col); absent coordinates read as zero.
// Returns ErrOutOfRange for invalid indices.
// Complexity: O(log nnz(row)) via binary search inside the row segment.
func (m *CSR) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("CSR.At(%d,%d): %w", row, col, ErrOutOfRange)
	}
	lo, hi := m.rowPtr[row], m.rowPtr[row+1]
	k := lo + sort.SearchInts(m.colInd[lo:hi], col)
	if k < hi && m.colInd[k] == col {
		return m.values[k], nil
	}

	return 0, nil
}

// Clone returns a deep copy of the CSR matrix. O(r + nnz).
func (m *CSR) Clone() Matrix {
	cp := &CSR{
		r:      m.r,
		c:      m.c,
		rowPtr: make([]int, len(m.rowPtr)),
		colInd: make([]int, len(m.colInd)),
		values: make([]float64, len(m.values)),
	}
	copy(cp.rowPtr, m.rowPtr)
	copy(cp.colInd, m.colInd)
	copy(cp.values, m.values)

	return cp
}

// Triplets exports the stored entries in (row, col) order.
// Useful for conversions and serialization. O(nnz).
func (m *CSR) Triplets() []Triplet {
	out := make([]Triplet, 0, len(m.values))
	for row := 0; row < m.r; row++ {
		for k := m.rowPtr[row]; k < m.rowPtr[row+1]; k++ {
			out = append(out, Triplet{Row: row, Col: m.colInd[k], Val: m.values[k]})
		}
	}

	return out
}
