package ingest

import "github.com/crystalnets-go/crystalnets/core"

// BondingMode selects how the candidate edge set is produced: from
// input bonds, from a geometric guess, or automatically.
type BondingMode int

const (
	// BondingInput uses only the bonds declared in the input file.
	BondingInput BondingMode = iota
	// BondingGuess discards any declared bonds and guesses from
	// geometry.
	BondingGuess
	// BondingAuto starts from guessed bonds and may restart the guess
	// if the sanity check deletes an edge.
	BondingAuto
)

func (m BondingMode) String() string {
	switch m {
	case BondingInput:
		return "input"
	case BondingGuess:
		return "guess"
	case BondingAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// InputBond is a bond declared in the source file, referencing atoms
// by their CIF label (the optional geom_bond_* keys).
type InputBond struct {
	LabelA, LabelB string
	// Distance is the declared bond length in angstrom; zero means
	// "unspecified", in which case the shortest matching image is used.
	Distance float64
}

// Options configures symmetry expansion and bond guessing.
type Options struct {
	// CutoffCoefficient is c0 in the bond-guess rule d < c0*(ri+rj).
	CutoffCoefficient float64
	// MetalWidening multiplies a metal atom's van der Waals radius by
	// 1.5 before the bond-guess comparison.
	MetalWidening bool
	// CollisionRadius is the minimum-image distance below which two
	// atoms are considered a collision.
	CollisionRadius float64
}

// DefaultOptions returns the 0.55 angstrom collision radius and a
// neutral c0=1.0 cutoff coefficient, reproducing the textbook "sum of
// van der Waals radii" bonding cutoff (see DESIGN.md for why 1.0 was
// chosen over a more aggressive coefficient).
func DefaultOptions() Options {
	return Options{
		CutoffCoefficient: 1.0,
		MetalWidening:     false,
		CollisionRadius:   0.55,
	}
}

// CandidateEdge is one guessed or expanded bond, not yet inserted
// into a core.Graph.
type CandidateEdge struct {
	U, V   int
	Offset core.Offset
	Length float64
}

// toOffset packs three small image-cell deltas into a core.Offset.
func toOffset(dx, dy, dz int) core.Offset {
	return core.Offset{int64(dx), int64(dy), int64(dz)}
}
