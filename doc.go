// Package toponorm provides degree normalization of boundary operators for
// simplicial complexes — the preprocessing step that message-passing layers
// on topological structures consume.
//
// What toponorm offers:
//
//   - matrix/        — dense and compressed-sparse-row primitives with
//     deterministic kernels (abs row/col sums, diagonal scaling, transpose,
//     multiplication)
//   - simplicial/    — simple graphs, bounded clique enumeration,
//     2-dimensional simplicial complexes and their signed boundary
//     operators B1, B2
//   - normalization/ — the four boundary-operator normalizers and the
//     NormalizedOperators aggregator
//   - cmd/toponorm   — CLI: edge list in, normalized operators out
//
// Design guarantees:
//
//   - Pure functions – inputs are never mutated; every kernel allocates its
//     result.
//   - Determinism – fixed loop orders, lexicographic simplex indexing,
//     stable output across runs.
//   - Sign safety – normalization rescales magnitudes only; the sign
//     pattern of an operator is always preserved.
//
// Quick example: build the clique complex of the karate club graph and
// normalize its operators.
//
//	g := simplicial.KarateClub()
//	cliques, _ := simplicial.Cliques(g, 3)
//	sc, _ := simplicial.NewComplexFromCliques(cliques)
//	b1, _ := sc.BoundaryOperator(1)
//	b2, _ := sc.BoundaryOperator(2)
//	b1n, b1tn, b2n, b2tn, _ := normalization.NormalizedOperators(b1, b2)
//
// Dive into each package's doc.go for the full contracts.
//
//	go get github.com/toposphere/toponorm
package toponorm
