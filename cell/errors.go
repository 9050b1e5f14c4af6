package cell

import "errors"

var (
	// ErrNonPositiveVolume indicates det(M) <= 0, violating the cell
	// invariant "det(M) > 0".
	ErrNonPositiveVolume = errors.New("cell: lattice matrix must have positive determinant")

	// ErrInvalidOccupancy indicates an occupancy outside (0,1].
	ErrInvalidOccupancy = errors.New("cell: occupancy must be in (0,1]")

	// ErrEmptySymbol indicates an atom record with no element symbol.
	ErrEmptySymbol = errors.New("cell: atom has no element symbol")
)
