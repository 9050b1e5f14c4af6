package sanitize

import (
	"sort"

	"github.com/crystalnets-go/crystalnets/cell"
	"github.com/crystalnets-go/crystalnets/chem"
	"github.com/crystalnets-go/crystalnets/core"
)

// FixValence checks and optionally corrects atom valences against
// chem's per-element bounds. In report-only mode (apply = false) the
// graph is left untouched and only the invalid-atom set is returned.
// In apply mode, atoms above their target maximum have their weakest
// excess edges removed (longest bond first, excluding edges to
// hydrogen for C/N/O), then the residual below-minimum set is
// returned.
func FixValence(g *core.Graph, m cell.Matrix3, atoms []cell.Atom, mode chem.ValenceMode, apply bool) (*core.Graph, []int) {
	if !apply {
		return g, invalidAtoms(g, atoms, mode)
	}

	cur := g.Clone()
	for v := 0; v < cur.VertexCount(); v++ {
		rule, ok := chem.ValenceFor(atoms[v].Symbol, mode)
		if !ok {
			continue
		}
		nbrs, _ := cur.Neighbors(v)
		for len(nbrs) > rule.Max {
			victim, ok := weakestRemovable(m, atoms, v, nbrs)
			if !ok {
				break
			}
			_ = cur.RemoveEdge(v, victim.To, victim.Offset)
			nbrs, _ = cur.Neighbors(v)
		}
	}
	return cur, invalidAtoms(cur, atoms, mode)
}

// weakestRemovable picks the longest-bond neighbor to drop, excluding
// hydrogen neighbors from removal when the host is C, N, or O: a C/N/O
// atom losing its hydrogens first would misrepresent the molecule's
// actual connectivity.
func weakestRemovable(m cell.Matrix3, atoms []cell.Atom, v int, nbrs []core.Neighbor) (core.Neighbor, bool) {
	protectH := atoms[v].Symbol == "C" || atoms[v].Symbol == "N" || atoms[v].Symbol == "O"

	candidates := make([]core.Neighbor, 0, len(nbrs))
	for _, n := range nbrs {
		if protectH && isHydrogenSymbol(atoms[n.To].Symbol) {
			continue
		}
		candidates = append(candidates, n)
	}
	if len(candidates) == 0 {
		return core.Neighbor{}, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		li := edgeLength(m, atoms, core.Direct(v, candidates[i].To, candidates[i].Offset))
		lj := edgeLength(m, atoms, core.Direct(v, candidates[j].To, candidates[j].Offset))
		return li > lj
	})
	return candidates[0], true
}

func isHydrogenSymbol(s string) bool { return s == "H" }

// invalidAtoms returns the indices of atoms whose degree is below
// their configured minimum; this is a report, not a mutation.
func invalidAtoms(g *core.Graph, atoms []cell.Atom, mode chem.ValenceMode) []int {
	var out []int
	for v := 0; v < g.VertexCount(); v++ {
		rule, ok := chem.ValenceFor(atoms[v].Symbol, mode)
		if !ok {
			continue
		}
		deg, _ := g.Degree(v)
		if deg < rule.Min {
			out = append(out, v)
		}
	}
	return out
}
