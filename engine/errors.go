package engine

import "errors"

// ErrMissingAtomInformation is returned when a required atom field is
// absent or an element symbol is unknown.
var ErrMissingAtomInformation = errors.New("engine: missing atom information")

// ErrResidueAssignment is returned when StructureCluster is requested
// but some atom lacks a residue label.
var ErrResidueAssignment = errors.New("engine: clustering mode requires residues but some atoms lack one")

// ErrNonPeriodic is returned when a connected component's effective
// lattice rank is 0: the structure (or one of its pieces) is
// molecular, not a crystal net.
var ErrNonPeriodic = errors.New("engine: effective lattice rank is 0 (non-periodic structure)")
