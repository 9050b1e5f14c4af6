// Package crystalnets identifies the periodic net topology of a
// crystal structure and matches it against an archive of known nets.
//
// What is crystalnets-go?
//
//	A thread-safe, mostly-standard-library pipeline that takes a
//	CIF-described crystal structure through:
//
//	  • Ingestion: symmetry expansion, collision pruning, bond guessing
//	  • Sanitation: five deterministic cleanup passes over the bond graph
//	  • Canonicalization: dimensionality reduction and canonical labeling
//	    into a reproducible genome string
//	  • Archive matching: lookup against a portable, peer-readable text format
//
// Everything is organized under one package per concern:
//
//	core/     — periodic graph primitives: Graph, Edge, Offset
//	cell/     — unit cell, symmetry operators, atom records
//	chem/     — element table (van der Waals radii, metal flags)
//	ingest/   — symmetry expansion, collision pruning, bond guessing
//	sanitize/ — the five-pass bond-graph cleanup pipeline
//	canon/    — rank reduction, equilibrium placement, canonical labeling
//	archive/  — the .arc text format and its file-watch hot reload
//	cif/      — minimal CIF key/value tokenizer
//	engine/   — glue wiring the above into one Run call per structure
//	batch/    — worker-pool fan-out across many input files
//	cmd/crystalnets/ — the CLI front-end
//
// Each connected component of a structure's bond graph is canonicalized
// independently; identical nets under relabeling, axis permutation, or
// per-vertex offset shift always produce the same genome.
package crystalnets
