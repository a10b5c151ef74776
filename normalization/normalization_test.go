package normalization_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toposphere/toponorm/matrix"
	"github.com/toposphere/toponorm/normalization"
	"github.com/toposphere/toponorm/simplicial"
)

// triangleOperators returns the boundary operators of a single filled
// triangle in both families. Values:
//
//	B1 (3 vertices × 3 edges)    B2 (3 edges × 1 triangle)
//	  -1  -1   0                   +1
//	  +1   0  -1                   -1
//	   0  +1  +1                   +1
func triangleOperators(t *testing.T) (b1d *matrix.Dense, b1s *matrix.CSR, b2d *matrix.Dense, b2s *matrix.CSR) {
	t.Helper()

	b1Rows := [][]float64{
		{-1, -1, 0},
		{1, 0, -1},
		{0, 1, 1},
	}
	b2Rows := [][]float64{{1}, {-1}, {1}}

	var err error
	b1d, err = matrix.NewDenseFromRows(b1Rows)
	require.NoError(t, err)
	b2d, err = matrix.NewDenseFromRows(b2Rows)
	require.NoError(t, err)
	b1s, err = matrix.ToCSR(b1d)
	require.NoError(t, err)
	b2s, err = matrix.ToCSR(b2d)
	require.NoError(t, err)

	return b1d, b1s, b2d, b2s
}

// requireEntries asserts every entry of got against want within eps.
func requireEntries(t *testing.T, got matrix.Matrix, want [][]float64, eps float64) {
	t.Helper()
	require.Equal(t, len(want), got.Rows())
	require.Equal(t, len(want[0]), got.Cols())
	for i, row := range want {
		for j, w := range row {
			v, err := got.At(i, j)
			require.NoError(t, err)
			assert.InDelta(t, w, v, eps, "[%d,%d]", i, j)
		}
	}
}

// TestB2Normalized_HandComputed pins the two-sided scaling on the single
// triangle: row degrees are all 1, the lone column degree is 3, so every
// entry becomes ±1/3.
func TestB2Normalized_HandComputed(t *testing.T) {
	_, _, b2d, _ := triangleOperators(t)

	out, err := normalization.B2Normalized(b2d)
	require.NoError(t, err)
	requireEntries(t, out, [][]float64{{1.0 / 3}, {-1.0 / 3}, {1.0 / 3}}, 1e-12)
}

// TestB1Normalized_HandComputed pins the coupled scaling: B1 row degrees
// are all 2, shared degrees are colsum(|B1|)+rowsum(|B2|) = 2+1 = 3, so
// every nonzero becomes ±1/6.
func TestB1Normalized_HandComputed(t *testing.T) {
	b1d, _, b2d, _ := triangleOperators(t)

	out, err := normalization.B1Normalized(b1d, b2d)
	require.NoError(t, err)
	requireEntries(t, out, [][]float64{
		{-1.0 / 6, -1.0 / 6, 0},
		{1.0 / 6, 0, -1.0 / 6},
		{0, 1.0 / 6, 1.0 / 6},
	}, 1e-12)
}

// TestNormalizers_FamilyPreservation: dense in, dense out; sparse in,
// sparse out — for all four normalizers.
func TestNormalizers_FamilyPreservation(t *testing.T) {
	b1d, b1s, b2d, b2s := triangleOperators(t)

	dn, err := normalization.B2Normalized(b2d)
	require.NoError(t, err)
	assert.IsType(t, &matrix.Dense{}, dn)

	sn, err := normalization.B2Normalized(b2s)
	require.NoError(t, err)
	assert.IsType(t, &matrix.CSR{}, sn)

	dn, err = normalization.B1Normalized(b1d, b2d)
	require.NoError(t, err)
	assert.IsType(t, &matrix.Dense{}, dn)

	sn, err = normalization.B1Normalized(b1s, b2s)
	require.NoError(t, err)
	assert.IsType(t, &matrix.CSR{}, sn)

	sn, err = normalization.B1TransposeNormalized(b1s, b2s)
	require.NoError(t, err)
	assert.IsType(t, &matrix.CSR{}, sn)

	sn, err = normalization.B2TransposeNormalized(b2s)
	require.NoError(t, err)
	assert.IsType(t, &matrix.CSR{}, sn)
}

// TestNormalizers_DenseSparseAgreement: normalizing the dense and sparse
// renditions of the same operator yields elementwise-equal results.
func TestNormalizers_DenseSparseAgreement(t *testing.T) {
	b1d, b1s, b2d, b2s := triangleOperators(t)

	type pair struct {
		name       string
		dense, csr matrix.Matrix
	}
	run := func(name string, d, s matrix.Matrix, derr, serr error) pair {
		require.NoError(t, derr, name)
		require.NoError(t, serr, name)

		return pair{name: name, dense: d, csr: s}
	}

	dn, derr := normalization.B1Normalized(b1d, b2d)
	sn, serr := normalization.B1Normalized(b1s, b2s)
	pairs := []pair{run("B1N", dn, sn, derr, serr)}

	dn, derr = normalization.B1TransposeNormalized(b1d, b2d)
	sn, serr = normalization.B1TransposeNormalized(b1s, b2s)
	pairs = append(pairs, run("B1TN", dn, sn, derr, serr))

	dn, derr = normalization.B2Normalized(b2d)
	sn, serr = normalization.B2Normalized(b2s)
	pairs = append(pairs, run("B2N", dn, sn, derr, serr))

	dn, derr = normalization.B2TransposeNormalized(b2d)
	sn, serr = normalization.B2TransposeNormalized(b2s)
	pairs = append(pairs, run("B2TN", dn, sn, derr, serr))

	for _, p := range pairs {
		ok, err := normalization.EqualWithin(p.dense, p.csr)
		require.NoError(t, err, p.name)
		assert.True(t, ok, "%s: dense and sparse renditions must agree", p.name)
	}
}

// TestNormalizers_SignPreservation: the normalized operator reproduces
// the input's sign pattern exactly, even under a non-default floor.
func TestNormalizers_SignPreservation(t *testing.T) {
	b1d, _, b2d, _ := triangleOperators(t)

	for _, opts := range [][]normalization.Option{
		nil,
		{normalization.WithDegreeFloor(0.5)},
	} {
		b1n, err := normalization.B1Normalized(b1d, b2d, opts...)
		require.NoError(t, err)
		ok, err := normalization.SameSignPattern(b1d, b1n)
		require.NoError(t, err)
		assert.True(t, ok)

		b2n, err := normalization.B2Normalized(b2d, opts...)
		require.NoError(t, err)
		ok, err = normalization.SameSignPattern(b2d, b2n)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

// TestNormalizers_TransposeConsistency: the transpose-variant normalizers
// agree with transposing the plain normalizers' output.
func TestNormalizers_TransposeConsistency(t *testing.T) {
	b1d, _, b2d, _ := triangleOperators(t)

	b1n, err := normalization.B1Normalized(b1d, b2d)
	require.NoError(t, err)
	b1tn, err := normalization.B1TransposeNormalized(b1d, b2d)
	require.NoError(t, err)
	b1nT, err := matrix.Transpose(b1n)
	require.NoError(t, err)
	ok, err := normalization.EqualWithin(b1tn, b1nT)
	require.NoError(t, err)
	assert.True(t, ok, "B1TN must equal transpose(B1N)")

	b2n, err := normalization.B2Normalized(b2d)
	require.NoError(t, err)
	b2tn, err := normalization.B2TransposeNormalized(b2d)
	require.NoError(t, err)
	b2nT, err := matrix.Transpose(b2n)
	require.NoError(t, err)
	ok, err = normalization.EqualWithin(b2tn, b2nT)
	require.NoError(t, err)
	assert.True(t, ok, "B2TN must equal transpose(B2N)")
}

// TestNormalizers_ZeroDegreeSafety: an all-zero row or column floors to
// an identity factor, stays zero, and never raises a division error.
func TestNormalizers_ZeroDegreeSafety(t *testing.T) {
	// 3×4 B1 with an all-zero last column; 4×1 B2 with a zero last row,
	// so the shared degree of index 3 is exactly zero.
	b1, err := matrix.NewDenseFromRows([][]float64{
		{-1, 1, 0, 0},
		{0, -1, 1, 0},
		{1, 0, -1, 0},
	})
	require.NoError(t, err)
	b2, err := matrix.NewDenseFromRows([][]float64{{1}, {-1}, {1}, {0}})
	require.NoError(t, err)

	b1n, err := normalization.B1Normalized(b1, b2)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		v, err := b1n.At(i, 3)
		require.NoError(t, err)
		assert.Zero(t, v, "degenerate column must stay zero")
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0))
	}

	b2n, err := normalization.B2Normalized(b2)
	require.NoError(t, err)
	v, err := b2n.At(3, 0)
	require.NoError(t, err)
	assert.Zero(t, v, "degenerate row must stay zero")
}

// TestNormalizers_Guards covers nil and shape-mismatch errors, including
// propagation through the aggregator.
func TestNormalizers_Guards(t *testing.T) {
	b1d, _, b2d, _ := triangleOperators(t)

	_, err := normalization.B2Normalized(nil)
	assert.ErrorIs(t, err, normalization.ErrNilOperator)
	_, err = normalization.B1Normalized(nil, b2d)
	assert.ErrorIs(t, err, normalization.ErrNilOperator)
	_, err = normalization.B1Normalized(b1d, nil)
	assert.ErrorIs(t, err, normalization.ErrNilOperator)

	// 3 columns vs 4 rows on the shared dimension.
	wide, err := matrix.NewDenseFromRows([][]float64{{1}, {0}, {0}, {-1}})
	require.NoError(t, err)
	_, err = normalization.B1Normalized(b1d, wide)
	assert.ErrorIs(t, err, normalization.ErrShapeMismatch)
	_, err = normalization.B1TransposeNormalized(b1d, wide)
	assert.ErrorIs(t, err, normalization.ErrShapeMismatch)

	_, _, _, _, err = normalization.NormalizedOperators(b1d, wide)
	assert.ErrorIs(t, err, normalization.ErrShapeMismatch)
	_, _, _, _, err = normalization.NormalizedOperators(nil, b2d)
	assert.ErrorIs(t, err, normalization.ErrNilOperator)
}

// TestNormalizedOperators_Purity: the aggregator leaves its operands
// untouched.
func TestNormalizedOperators_Purity(t *testing.T) {
	b1d, _, b2d, _ := triangleOperators(t)
	b1Before := b1d.Clone()
	b2Before := b2d.Clone()

	_, _, _, _, err := normalization.NormalizedOperators(b1d, b2d)
	require.NoError(t, err)

	ok, err := normalization.EqualWithin(b1d, b1Before, normalization.WithEpsilon(0))
	require.NoError(t, err)
	assert.True(t, ok, "B1 mutated")
	ok, err = normalization.EqualWithin(b2d, b2Before, normalization.WithEpsilon(0))
	require.NoError(t, err)
	assert.True(t, ok, "B2 mutated")
}

// TestNormalizedOperators_Karate runs the full pipeline on the karate
// club clique complex and checks shapes, families, and sign patterns of
// all four outputs.
func TestNormalizedOperators_Karate(t *testing.T) {
	cliques, err := simplicial.Cliques(simplicial.KarateClub(), 3)
	require.NoError(t, err)
	sc, err := simplicial.NewComplexFromCliques(cliques)
	require.NoError(t, err)

	b1, err := sc.BoundaryOperator(1)
	require.NoError(t, err)
	b2, err := sc.BoundaryOperator(2)
	require.NoError(t, err)

	b1n, b1tn, b2n, b2tn, err := normalization.NormalizedOperators(b1, b2)
	require.NoError(t, err)

	assert.Equal(t, [2]int{34, 78}, [2]int{b1n.Rows(), b1n.Cols()})
	assert.Equal(t, [2]int{78, 34}, [2]int{b1tn.Rows(), b1tn.Cols()})
	assert.Equal(t, [2]int{78, 45}, [2]int{b2n.Rows(), b2n.Cols()})
	assert.Equal(t, [2]int{45, 78}, [2]int{b2tn.Rows(), b2tn.Cols()})

	// Boundary operators come out of the complex as CSR; normalization
	// keeps the family.
	for _, m := range []matrix.Matrix{b1n, b1tn, b2n, b2tn} {
		assert.IsType(t, &matrix.CSR{}, m)
	}

	ok, err := normalization.SameSignPattern(b1, b1n)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = normalization.SameSignPattern(b2, b2n)
	require.NoError(t, err)
	assert.True(t, ok)

	// Transpose consistency holds at scale too.
	b1nT, err := matrix.Transpose(b1n)
	require.NoError(t, err)
	ok, err = normalization.EqualWithin(b1tn, b1nT)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestOptions_Panics pins the option-constructor guard behavior.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { normalization.WithDegreeFloor(0) })
	assert.Panics(t, func() { normalization.WithDegreeFloor(math.NaN()) })
	assert.Panics(t, func() { normalization.WithDegreeFloor(math.Inf(1)) })
	assert.Panics(t, func() { normalization.WithEpsilon(-1) })
	assert.Panics(t, func() { normalization.WithEpsilon(math.NaN()) })
	assert.NotPanics(t, func() { normalization.WithEpsilon(0) })
}
