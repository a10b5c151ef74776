package simplicial

import "errors"

var (
	// ErrNonPositiveOrder indicates a graph was requested with no vertices.
	ErrNonPositiveOrder = errors.New("simplicial: graph order must be > 0")
	// ErrVertexRange indicates a vertex id outside 0..n-1.
	ErrVertexRange = errors.New("simplicial: vertex id out of range")
	// ErrLoopEdge indicates a self-loop, which simple graphs reject.
	ErrLoopEdge = errors.New("simplicial: self-loops are not allowed")
	// ErrBadCliqueSize indicates a non-positive clique size bound.
	ErrBadCliqueSize = errors.New("simplicial: clique size bound must be >= 1")
	// ErrEmptyClique indicates an empty vertex list where a clique is required.
	ErrEmptyClique = errors.New("simplicial: clique must contain at least one vertex")
	// ErrDuplicateVertex indicates a repeated vertex inside one clique.
	ErrDuplicateVertex = errors.New("simplicial: clique contains a duplicate vertex")
	// ErrBadDimension indicates a simplex dimension outside the supported 0..2.
	ErrBadDimension = errors.New("simplicial: dimension out of supported range")
	// ErrEmptySkeleton indicates a boundary operator was requested for a
	// dimension the complex has no simplices in.
	ErrEmptySkeleton = errors.New("simplicial: no simplices at requested dimension")
)
