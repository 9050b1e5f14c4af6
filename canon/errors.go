package canon

import "errors"

// ErrDisconnected is returned when Canonicalize is given a graph that
// is not fully connected; canonicalization operates on one connected
// component at a time (the caller, package engine, splits components
// before calling in).
var ErrDisconnected = errors.New("canon: graph is not connected")

// ErrEmptyGraph is returned for a zero-vertex graph, which has no
// well-defined genome.
var ErrEmptyGraph = errors.New("canon: graph has no vertices")

// ErrMalformedGenome is returned by Parse when the input does not
// match the "D u v o1..oD ..." genome grammar (no vertex-count field,
// 1-based vertex labels).
var ErrMalformedGenome = errors.New("canon: malformed genome string")
