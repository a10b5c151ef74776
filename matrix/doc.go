// Package matrix offers the dense and compressed-sparse-row primitives that
// boundary-operator pipelines are built on.
//
// The matrix package provides:
//
//   - Matrix — a small read-only capability interface (Rows/Cols/At/Clone)
//     over which every kernel is defined.
//   - Dense — row-major flat-slice storage for small or dense operators.
//   - CSR — compressed sparse row storage built from COO triplets, the
//     natural family for boundary operators whose entries live in {-1,0,+1}.
//   - Kernels — AbsRowSums, AbsColSums, ScaleRowsCols, Transpose, Mul —
//     each with a fast path per concrete family and a generic fallback,
//     all with fixed loop orders for reproducible results.
//
// Family preservation: kernels that produce matrices return the same
// sparsity family as their input (Dense in → Dense out, CSR in → CSR out);
// unknown implementations fall back to Dense.
//
// All operations are pure: operands are never mutated and results are
// freshly allocated.
package matrix
