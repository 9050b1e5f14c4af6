package ingest

import "github.com/crystalnets-go/crystalnets/cell"

// PruneCollisions returns the indices of atoms to remove from atoms:
// for each unordered pair (i,j), i<j, if their minimum-image distance
// is below radius, j is marked for removal. When a
// cluster of more than two atoms mutually collides, every later index
// is removed, leaving exactly one survivor.
func PruneCollisions(m cell.Matrix3, atoms []cell.Atom, radius float64) []int {
	removed := make(map[int]bool)
	var out []int

	for i := 0; i < len(atoms); i++ {
		if removed[i] {
			continue
		}
		for j := i + 1; j < len(atoms); j++ {
			if removed[j] {
				continue
			}
			d := cell.MinImageDistance(m, atoms[i].Frac, atoms[j].Frac)
			if d < radius {
				removed[j] = true
				out = append(out, j)
			}
		}
	}
	return out
}

// RemoveIndices returns a copy of atoms with the given indices
// removed, preserving relative order.
func RemoveIndices(atoms []cell.Atom, remove []int) []cell.Atom {
	skip := make(map[int]bool, len(remove))
	for _, i := range remove {
		skip[i] = true
	}
	out := make([]cell.Atom, 0, len(atoms))
	for i, a := range atoms {
		if !skip[i] {
			out = append(out, a)
		}
	}
	return out
}
