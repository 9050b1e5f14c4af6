// Package ingest turns a raw cell + atom list into a candidate
// periodic graph: symmetry expansion, collision pruning,
// and geometry-based bond guessing. It produces edges
// with lattice offsets but does not clean them — that is sanitize's
// job.
package ingest
