// Package canon computes the canonical topological genome of a
// connected periodic graph: a coordinate- and labeling-independent
// fingerprint. The pipeline is five ordered
// stages — dimensionality reduction, equilibrium placement, minimal
// basis reduction, canonical vertex labeling, and serialization —
// each implemented in its own file and tied together by Canonicalize.
package canon
