// Package cif implements a minimal CIF key/value boundary ahead of
// the core pipeline: a line/loop tokenizer
// that extracts cell, symmetry, atom-site, and optional bond keys
// into a Record, and a converter from that Record into a cell.Cell
// plus labeled atoms. It is deliberately thin — no full CIF grammar,
// no dictionaries, no multi-line semicolon text fields.
package cif
