package core

import "errors"

// Sentinel errors for the core package. Callers MUST branch with
// errors.Is; these are never wrapped with a formatted string at the
// definition site (context, if any, is added with %w at the call site).
var (
	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("core: vertex index out of range")

	// ErrSelfLoopZeroOffset indicates an attempt to add a self-loop with
	// offset zero, which the periodic graph model forbids (it would
	// collapse a vertex onto itself within the same cell).
	ErrSelfLoopZeroOffset = errors.New("core: self-loop requires nonzero offset")

	// ErrDuplicateEdge indicates the exact (neighbor, offset) pair
	// already exists in the adjacency of one endpoint.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrEdgeNotFound indicates RemoveEdge was asked to remove an edge
	// that is not present.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDimensionMismatch indicates an offset or permutation with the
	// wrong number of components for the graph's configured dimension.
	ErrDimensionMismatch = errors.New("core: dimension mismatch")

	// ErrBadPermutation indicates a relabeling or axis permutation that
	// is not a bijection over the expected domain.
	ErrBadPermutation = errors.New("core: not a valid permutation")
)
