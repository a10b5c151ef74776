// Package normalization rescales the boundary operators of a simplicial
// complex by degree-derived diagonal factors, the preprocessing step that
// message-passing layers on topological structures consume.
//
// Given the boundary operators B1 (vertices×edges) and B2
// (edges×triangles) with entries in {-1, 0, +1}, the package computes
//
//	B1N  = Dr(B1)⁻¹ · B1 · Dshared⁻¹
//	B1TN = Dshared⁻¹ · B1ᵀ · Dr(B1)⁻¹
//	B2N  = Dr(B2)⁻¹ · B2 · Dc(B2)⁻¹
//	B2TN = Dc(B2)⁻¹ · B2ᵀ · Dr(B2)⁻¹
//
// where Dr/Dc are the diagonal matrices of row/column sums of the
// operator's absolute values, and Dshared combines B1's column degrees
// with B2's row degrees on the dimension the two operators share (an
// edge's normalization depends on how many triangles it co-bounds). Every
// degree is floored at a configurable positive constant (default 1), so
// isolated simplices never cause a division by zero.
//
// Binding invariants, regardless of the scaling formula:
//
//   - Shape preservation — each normalized operator has the shape of its
//     input (transposed variants the transposed shape).
//   - Sign preservation — scaling factors are strictly positive, so the
//     sign pattern of every input is reproduced exactly: zeros stay zero,
//     nonzeros keep their sign.
//   - Family preservation — sparse inputs yield sparse outputs, dense
//     inputs dense outputs, with elementwise-equal values either way.
//   - Purity — inputs are never mutated; results are freshly allocated.
//
// NormalizedOperators bundles the four computations into the single call
// downstream consumers use.
package normalization
