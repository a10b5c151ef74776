package simplicial

import "github.com/rs/zerolog/log"

// Cliques enumerates every clique of g with 1..maxSize vertices.
//
// Emission order is deterministic: size 1 first, then size 2, and so on
// (breadth-first growth), lexicographic within each size. Each clique is
// reported as a sorted ascending vertex slice. A clique of size k is grown
// only from its prefix of size k-1 extended by a common neighbor with a
// larger id, so every clique appears exactly once.
//
// Building a clique complex of dimension d requires maxSize = d+1; the
// 2-complexes consumed by boundary-operator normalization use maxSize = 3.
//
// Errors: ErrBadCliqueSize when maxSize < 1.
// Complexity: O(Σ_clique deg) — linear in the produced output for sparse
// graphs; exponential graphs produce exponential output by nature.
func Cliques(g *Graph, maxSize int) ([][]int, error) {
	if maxSize < 1 {
		return nil, ErrBadCliqueSize
	}

	// Breadth-first queue seeded with all singletons in ascending order.
	queue := make([][]int, 0, g.NumVertices())
	for v := 0; v < g.NumVertices(); v++ {
		queue = append(queue, []int{v})
	}

	out := make([][]int, 0, len(queue))
	for head := 0; head < len(queue); head++ {
		c := queue[head]
		out = append(out, c)
		if len(c) == maxSize {
			continue
		}
		// Candidates: common neighbors of every member, above the maximum
		// member id. Adjacency lists are sorted, so the running
		// intersection stays sorted for free.
		cand := tailNeighbors(g, c[len(c)-1])
		for _, v := range c[:len(c)-1] {
			cand = intersectSorted(cand, g.adj[v])
			if len(cand) == 0 {
				break
			}
		}
		for _, w := range cand {
			grown := make([]int, len(c)+1)
			copy(grown, c)
			grown[len(c)] = w
			queue = append(queue, grown)
		}
	}

	log.Debug().
		Int("vertices", g.NumVertices()).
		Int("edges", g.NumEdges()).
		Int("max_size", maxSize).
		Int("cliques", len(out)).
		Msg("clique enumeration complete")

	return out, nil
}

// tailNeighbors returns the neighbors of v with id greater than v.
func tailNeighbors(g *Graph, v int) []int {
	row := g.adj[v]
	for k, w := range row {
		if w > v {
			return row[k:]
		}
	}

	return nil
}

// intersectSorted intersects two sorted ascending slices into a new slice.
func intersectSorted(a, b []int) []int {
	out := make([]int, 0, minInt(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}

	return out
}

// minInt returns the smaller of two ints.
func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
