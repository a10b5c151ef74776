// Package simplicial builds 2-dimensional simplicial complexes from graph
// cliques and exposes their signed boundary operators.
//
// The simplicial package provides:
//
//   - Graph — a simple undirected graph over vertices 0..n-1 with sorted
//     adjacency, the input for clique enumeration.
//   - Cliques — deterministic bounded enumeration of all cliques up to a
//     given size, emitted smallest-first then lexicographically (a clique
//     complex of dimension 2 consumes sizes 1..3).
//   - Complex — a downward-closed collection of vertices, edges and
//     triangles, each dimension indexed in lexicographic order.
//   - BoundaryOperator — the signed incidence matrices B1 (vertices×edges)
//     and B2 (edges×triangles) in CSR form, entries in {-1, 0, +1},
//     satisfying the chain-complex identity B1·B2 = 0.
//   - KarateClub — the Zachary karate club reference graph (34 vertices,
//     78 edges, 45 triangles).
//
// All construction is deterministic: identical inputs yield identical
// simplex orderings and identical operators.
package simplicial
