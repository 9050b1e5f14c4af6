package ingest

import (
	"math"

	"github.com/crystalnets-go/crystalnets/cell"
)

// positionTolerance is the equality tolerance between two fractional
// positions: their component-wise difference must be within 1e-4
// after reducing to [0,1), absorbing symmetry-operator rounding error.
const positionTolerance = 1e-4

// ExpandSymmetry applies every equivalent position in c to every atom
// in base, then removes duplicates (same symbol, same position modulo
// the 1e-4 tolerance). The identity operation is implicit and is not
// in c.Equivalents, so base atoms are included unconditionally.
func ExpandSymmetry(c *cell.Cell, base []cell.Atom) []cell.Atom {
	expanded := make([]cell.Atom, 0, len(base)*(len(c.Equivalents)+1))
	expanded = append(expanded, base...)

	for _, atom := range base {
		for _, op := range c.Equivalents {
			expanded = append(expanded, cell.Atom{
				Symbol:    atom.Symbol,
				Label:     atom.Label,
				Frac:      op.Apply(atom.Frac),
				Occupancy: atom.Occupancy,
				Residue:   atom.Residue,
			})
		}
	}

	return dedupAtoms(expanded)
}

// dedupAtoms removes atoms that coincide (same symbol, position equal
// within positionTolerance) with an earlier atom, keeping the first
// occurrence — base atoms therefore take priority over their own
// symmetry images.
func dedupAtoms(atoms []cell.Atom) []cell.Atom {
	out := make([]cell.Atom, 0, len(atoms))
	for _, a := range atoms {
		dup := false
		for _, b := range out {
			if a.Symbol == b.Symbol && fracEqual(a.Frac, b.Frac) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, a)
		}
	}
	return out
}

// fracEqual reports whether two already-normalized fractional
// positions are equal within positionTolerance, accounting for
// wraparound at the [0,1) boundary.
func fracEqual(a, b [3]float64) bool {
	for i := 0; i < 3; i++ {
		d := a[i] - b[i]
		d -= math.Round(d)
		if math.Abs(d) > positionTolerance {
			return false
		}
	}
	return true
}

// ExpandBonds maps each InputBond (declared on base-atom labels) to
// every image pair whose symmetric distance matches the declared one.
// atoms is the symmetry-expanded atom list; indices returned are
// positions within atoms.
func ExpandBonds(c *cell.Cell, atoms []cell.Atom, bonds []InputBond) ([]CandidateEdge, error) {
	byLabel := make(map[string][]int)
	for i, a := range atoms {
		if a.Label != "" {
			byLabel[a.Label] = append(byLabel[a.Label], i)
		}
	}

	var out []CandidateEdge
	for _, b := range bonds {
		idxA, okA := byLabel[b.LabelA]
		idxB, okB := byLabel[b.LabelB]
		if !okA || !okB {
			return nil, ErrUnknownLabel
		}
		for _, i := range idxA {
			for _, j := range idxB {
				if i == j {
					continue
				}
				edge, ok := matchingImage(c, atoms, i, j, b.Distance)
				if ok {
					out = append(out, edge)
				}
			}
		}
	}
	return out, nil
}

// matchingImage searches the 27 neighboring cell images of atom j for
// the one whose distance to atom i matches the declared distance
// within 1e-2 angstrom (a generous tolerance for declared
// bond-length round-off); if distance is zero ("unspecified"), the
// closest image is used unconditionally.
func matchingImage(c *cell.Cell, atoms []cell.Atom, i, j int, distance float64) (CandidateEdge, bool) {
	const distTolerance = 1e-2
	best := CandidateEdge{}
	bestDelta := math.Inf(1)
	found := false

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				if i == j && dx == 0 && dy == 0 && dz == 0 {
					continue
				}
				shifted := [3]float64{
					atoms[j].Frac[0] + float64(dx),
					atoms[j].Frac[1] + float64(dy),
					atoms[j].Frac[2] + float64(dz),
				}
				d := cell.CartesianDistance(c.M, atoms[i].Frac, shifted)
				delta := math.Abs(d - distance)
				if distance == 0 {
					delta = d // prefer the shortest image
				}
				if delta < bestDelta {
					bestDelta = delta
					best = CandidateEdge{U: i, V: j, Offset: toOffset(dx, dy, dz), Length: d}
					found = true
				}
			}
		}
	}

	if !found {
		return CandidateEdge{}, false
	}
	if distance != 0 && bestDelta > distTolerance {
		return CandidateEdge{}, false
	}
	return best, true
}
