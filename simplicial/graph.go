package simplicial

import "sort"

// Graph is a simple undirected graph over vertices 0..n-1.
// Adjacency lists are kept sorted ascending so every traversal — and
// therefore every clique ordering downstream — is deterministic.
// The zero value is not usable; construct with NewGraph.
type Graph struct {
	n   int
	adj [][]int // adj[v] sorted ascending, no duplicates, no loops
	m   int     // edge count
}

// NewGraph creates a graph with n isolated vertices.
// Returns ErrNonPositiveOrder when n <= 0.
func NewGraph(n int) (*Graph, error) {
	if n <= 0 {
		return nil, ErrNonPositiveOrder
	}

	return &Graph{n: n, adj: make([][]int, n)}, nil
}

// NumVertices returns the number of vertices. O(1).
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns the number of edges. O(1).
func (g *Graph) NumEdges() int { return g.m }

// AddEdge inserts the undirected edge {u, v}. Adding an existing edge is a
// no-op; loops and out-of-range ids are rejected.
// Complexity: O(deg) per endpoint for the sorted insert.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrVertexRange
	}
	if u == v {
		return ErrLoopEdge
	}
	if g.hasNeighbor(u, v) {
		return nil // idempotent
	}
	g.adj[u] = insertSorted(g.adj[u], v)
	g.adj[v] = insertSorted(g.adj[v], u)
	g.m++

	return nil
}

// HasEdge reports whether {u, v} is present; out-of-range ids report false.
// Complexity: O(log deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n || u == v {
		return false
	}

	return g.hasNeighbor(u, v)
}

// Neighbors returns a copy of v's sorted neighbor list.
// Returns ErrVertexRange for an invalid id.
func (g *Graph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, ErrVertexRange
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])

	return out, nil
}

// Edges returns all edges as sorted [u, v] pairs (u < v), ordered
// lexicographically. O(V + E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.m)
	for u := 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			if v > u {
				out = append(out, [2]int{u, v})
			}
		}
	}

	return out
}

// hasNeighbor does a binary search in u's sorted adjacency.
func (g *Graph) hasNeighbor(u, v int) bool {
	row := g.adj[u]
	k := sort.SearchInts(row, v)

	return k < len(row) && row[k] == v
}

// insertSorted inserts x into sorted slice s, keeping order.
func insertSorted(s []int, x int) []int {
	k := sort.SearchInts(s, x)
	s = append(s, 0)
	copy(s[k+1:], s[k:])
	s[k] = x

	return s
}
