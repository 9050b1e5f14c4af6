// Package chem supplies the read-only chemistry tables the ingestion
// and sanitation pipelines consume: element symbol/atomic-number
// lookup, van der Waals radii, the metal flag used to widen bonding
// cutoffs, and the per-element valence-target table used by
// sanitize.FixValence.
//
// None of this package computes chemistry; it is deliberately a
// lookup table, an external collaborator the core consumes rather than
// derives. The element/atomic-number enumeration follows the symbol set used by
// cx-luo-go-chem/molecule/elements.go; the van der Waals radius and
// metal-flag columns are added here since go-chem does not carry them.
package chem
