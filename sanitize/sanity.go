package sanitize

import (
	"github.com/crystalnets-go/crystalnets/cell"
	"github.com/crystalnets-go/crystalnets/core"
)

const (
	maxBondLength     = 4.00 // angstrom, no real bond exceeds this
	minNonHBondLength = 0.65 // angstrom
)

// SanityCheck deletes bonds longer than
// maxBondLength, and bonds shorter than minNonHBondLength between two
// non-hydrogen atoms. Returns the cleaned graph and whether any edge
// was deleted (the caller restarts bond-guessing from this signal
// when BondingMode is Auto).
func SanityCheck(g *core.Graph, m cell.Matrix3, atoms []cell.Atom) (*core.Graph, bool) {
	cur := g.Clone()
	deletedAny := false

	for _, e := range cur.Edges() {
		length := edgeLength(m, atoms, e)
		tooLong := length > maxBondLength
		tooShort := length < minNonHBondLength && !isHydrogenSymbol(atoms[e.U].Symbol) && !isHydrogenSymbol(atoms[e.V].Symbol)
		if tooLong || tooShort {
			_ = cur.RemoveEdge(e.U, e.V, e.Offset)
			deletedAny = true
		}
	}
	return cur, deletedAny
}
