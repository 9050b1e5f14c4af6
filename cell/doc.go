// Package cell implements the crystallographic data model: a
// unit Cell (lattice matrix + symmetry equivalent positions + Hall
// number) and an Atom record (element symbol, fractional position,
// optional occupancy and residue label).
//
// This package owns no chemistry and no graph structure; it is the
// leaf of the data flow from a raw CIF record to a Cell plus labeled
// atoms and optional bonds, consumed by ingest and engine.
package cell
