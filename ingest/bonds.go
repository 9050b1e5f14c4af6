package ingest

import (
	"strings"

	"github.com/crystalnets-go/crystalnets/cell"
	"github.com/crystalnets-go/crystalnets/chem"
)

const minBondLength = 0.4 // angstrom

// GuessBonds guesses bonds from geometry: for each ordered pair i<=j and
// each of the 27 neighboring cell images (excluding the degenerate
// self-image (i,i,0)), emit an edge iff minBondLength < d <
// c0*(ri+rj), where ri, rj are van der Waals radii (widened 1.5x for
// metals when opts.MetalWidening is set). No H-H edges are emitted.
// Atoms with an unknown element symbol are skipped rather than
// treated as a fatal error here; engine surfaces that upstream as
// MissingAtomInformation before ingestion is reached.
func GuessBonds(m cell.Matrix3, atoms []cell.Atom, opts Options) []CandidateEdge {
	radii := make([]float64, len(atoms))
	known := make([]bool, len(atoms))
	for i, a := range atoms {
		r, err := chem.VdWRadius(a.Symbol)
		if err != nil {
			continue
		}
		if opts.MetalWidening && chem.IsMetal(a.Symbol) {
			r *= 1.5
		}
		radii[i] = r
		known[i] = true
	}

	var out []CandidateEdge
	for i := 0; i < len(atoms); i++ {
		if !known[i] {
			continue
		}
		for j := i; j < len(atoms); j++ {
			if !known[j] {
				continue
			}
			if isHydrogen(atoms[i].Symbol) && isHydrogen(atoms[j].Symbol) {
				continue
			}
			cutoff := opts.CutoffCoefficient * (radii[i] + radii[j])

			for dx := -1; dx <= 1; dx++ {
				for dy := -1; dy <= 1; dy++ {
					for dz := -1; dz <= 1; dz++ {
						if i == j && dx == 0 && dy == 0 && dz == 0 {
							continue
						}
						// For a self-loop, (i,i,o) and (i,i,-o) are the
						// same undirected edge; only consider
						// the lexicographically positive representative
						// so we do not emit the same loop twice.
						if i == j && !toOffset(dx, dy, dz).Positive() {
							continue
						}
						shifted := [3]float64{
							atoms[j].Frac[0] + float64(dx),
							atoms[j].Frac[1] + float64(dy),
							atoms[j].Frac[2] + float64(dz),
						}
						d := cell.CartesianDistance(m, atoms[i].Frac, shifted)
						if d > minBondLength && d < cutoff {
							out = append(out, CandidateEdge{U: i, V: j, Offset: toOffset(dx, dy, dz), Length: d})
						}
					}
				}
			}
		}
	}
	return out
}

func isHydrogen(symbol string) bool {
	return strings.EqualFold(strings.TrimSpace(symbol), "H")
}
