package simplicial

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/toposphere/toponorm/matrix"
)

// Complex is a 2-dimensional simplicial complex: vertices, edges and
// triangles, closed downward (every face of a stored simplex is stored).
// Each dimension is indexed in lexicographic order, so row/column positions
// in the boundary operators are reproducible across runs.
type Complex struct {
	vertices  []int
	edges     [][2]int
	triangles [][3]int

	vertexIndex map[int]int
	edgeIndex   map[[2]int]int
}

// NewComplexFromCliques builds a complex from a clique list: each clique
// contributes all of its faces of dimension 0..2. Cliques larger than a
// triangle are accepted; only their sub-simplices up to dimension 2 are
// retained (the normalization pipeline consumes B1 and B2 only).
//
// Errors: ErrEmptyClique, ErrVertexRange (negative id),
// ErrDuplicateVertex (repeated vertex inside one clique).
// Complexity: O(Σ |clique|³) ingestion + O(S log S) for the final sort of
// S simplices.
func NewComplexFromCliques(cliques [][]int) (*Complex, error) {
	vset := make(map[int]struct{})
	eset := make(map[[2]int]struct{})
	tset := make(map[[3]int]struct{})

	for _, c := range cliques {
		if len(c) == 0 {
			return nil, ErrEmptyClique
		}
		s := make([]int, len(c))
		copy(s, c)
		sort.Ints(s)
		if s[0] < 0 {
			return nil, ErrVertexRange
		}
		for k := 1; k < len(s); k++ {
			if s[k] == s[k-1] {
				return nil, ErrDuplicateVertex
			}
		}
		// Downward closure up to dimension 2.
		for i := 0; i < len(s); i++ {
			vset[s[i]] = struct{}{}
			for j := i + 1; j < len(s); j++ {
				eset[[2]int{s[i], s[j]}] = struct{}{}
				for k := j + 1; k < len(s); k++ {
					tset[[3]int{s[i], s[j], s[k]}] = struct{}{}
				}
			}
		}
	}

	sc := &Complex{
		vertices:    make([]int, 0, len(vset)),
		edges:       make([][2]int, 0, len(eset)),
		triangles:   make([][3]int, 0, len(tset)),
		vertexIndex: make(map[int]int, len(vset)),
		edgeIndex:   make(map[[2]int]int, len(eset)),
	}
	for v := range vset {
		sc.vertices = append(sc.vertices, v)
	}
	sort.Ints(sc.vertices)
	for e := range eset {
		sc.edges = append(sc.edges, e)
	}
	sort.Slice(sc.edges, func(a, b int) bool {
		if sc.edges[a][0] != sc.edges[b][0] {
			return sc.edges[a][0] < sc.edges[b][0]
		}
		return sc.edges[a][1] < sc.edges[b][1]
	})
	for tr := range tset {
		sc.triangles = append(sc.triangles, tr)
	}
	sort.Slice(sc.triangles, func(a, b int) bool {
		ta, tb := sc.triangles[a], sc.triangles[b]
		if ta[0] != tb[0] {
			return ta[0] < tb[0]
		}
		if ta[1] != tb[1] {
			return ta[1] < tb[1]
		}
		return ta[2] < tb[2]
	})
	for i, v := range sc.vertices {
		sc.vertexIndex[v] = i
	}
	for i, e := range sc.edges {
		sc.edgeIndex[e] = i
	}

	log.Debug().
		Int("vertices", len(sc.vertices)).
		Int("edges", len(sc.edges)).
		Int("triangles", len(sc.triangles)).
		Msg("simplicial complex built")

	return sc, nil
}

// NumSimplices returns the number of simplices of the given dimension.
// Returns ErrBadDimension outside 0..2.
func (sc *Complex) NumSimplices(dim int) (int, error) {
	switch dim {
	case 0:
		return len(sc.vertices), nil
	case 1:
		return len(sc.edges), nil
	case 2:
		return len(sc.triangles), nil
	default:
		return 0, ErrBadDimension
	}
}

// Vertices returns the sorted vertex ids. The slice is a copy.
func (sc *Complex) Vertices() []int {
	out := make([]int, len(sc.vertices))
	copy(out, sc.vertices)

	return out
}

// Edges returns the lexicographically ordered edges. The slice is a copy.
func (sc *Complex) Edges() [][2]int {
	out := make([][2]int, len(sc.edges))
	copy(out, sc.edges)

	return out
}

// Triangles returns the lexicographically ordered triangles. The slice is
// a copy.
func (sc *Complex) Triangles() [][3]int {
	out := make([][3]int, len(sc.triangles))
	copy(out, sc.triangles)

	return out
}

// BoundaryOperator returns the signed incidence matrix B_k in CSR form.
//
//   - k = 1: shape |V|×|E|; edge [u, v] (u < v) gets −1 at row u and +1 at
//     row v.
//   - k = 2: shape |E|×|T|; triangle [a, b, c] (a < b < c) gets +1 at edge
//     [b, c], −1 at edge [a, c] and +1 at edge [a, b] — the alternating
//     face signs that make B1·B2 = 0.
//
// Errors: ErrBadDimension for k outside {1, 2}; ErrEmptySkeleton when the
// complex has no simplices at dimension k or k-1.
// Complexity: O(k · #k-simplices) triplet emission + CSR assembly.
func (sc *Complex) BoundaryOperator(k int) (*matrix.CSR, error) {
	switch k {
	case 1:
		if len(sc.vertices) == 0 || len(sc.edges) == 0 {
			return nil, ErrEmptySkeleton
		}
		ts := make([]matrix.Triplet, 0, 2*len(sc.edges))
		for col, e := range sc.edges {
			ts = append(ts,
				matrix.Triplet{Row: sc.vertexIndex[e[0]], Col: col, Val: -1},
				matrix.Triplet{Row: sc.vertexIndex[e[1]], Col: col, Val: +1},
			)
		}
		return matrix.NewCSRFromTriplets(len(sc.vertices), len(sc.edges), ts)
	case 2:
		if len(sc.edges) == 0 || len(sc.triangles) == 0 {
			return nil, ErrEmptySkeleton
		}
		ts := make([]matrix.Triplet, 0, 3*len(sc.triangles))
		for col, tr := range sc.triangles {
			a, b, c := tr[0], tr[1], tr[2]
			ts = append(ts,
				matrix.Triplet{Row: sc.edgeIndex[[2]int{b, c}], Col: col, Val: +1},
				matrix.Triplet{Row: sc.edgeIndex[[2]int{a, c}], Col: col, Val: -1},
				matrix.Triplet{Row: sc.edgeIndex[[2]int{a, b}], Col: col, Val: +1},
			)
		}
		return matrix.NewCSRFromTriplets(len(sc.edges), len(sc.triangles), ts)
	default:
		return nil, ErrBadDimension
	}
}
