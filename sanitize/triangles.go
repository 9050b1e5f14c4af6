package sanitize

import (
	"github.com/crystalnets-go/crystalnets/cell"
	"github.com/crystalnets-go/crystalnets/chem"
	"github.com/crystalnets-go/crystalnets/core"
)

const (
	metalTriangleCutoff    = 2.5 // angstrom
	nonMetalTriangleCutoff = 3.0 // angstrom
	triangleLengthCeiling  = 9.0 // min(9, l1^2+l2^2)
)

// RemoveTriangles removes long edges that close
// a triangle with two short edges: such an edge is almost always a
// spurious shortcut rather than a real bond. Invalidated triangles are
// re-queued until no edge is removed in a round.
func RemoveTriangles(g *core.Graph, m cell.Matrix3, atoms []cell.Atom) *core.Graph {
	cur := g.Clone()

	for {
		removedAny := false
		for _, e := range cur.Edges() {
			cutoff := nonMetalTriangleCutoff
			if chem.IsMetal(atoms[e.U].Symbol) || chem.IsMetal(atoms[e.V].Symbol) {
				cutoff = metalTriangleCutoff
			}
			length := edgeLength(m, atoms, e)
			if length <= cutoff {
				continue
			}
			if closesSpuriousTriangle(cur, m, atoms, e, length) {
				_ = cur.RemoveEdge(e.U, e.V, e.Offset)
				removedAny = true
			}
		}
		if !removedAny {
			return cur
		}
	}
}

// closesSpuriousTriangle searches for a third vertex x completing a
// triangle on e=(s,d,o) via e1=(s,x,o1), e2=(d,x,o2) with o2=o1-o, and
// reports whether the max-squared-length rule marks e for removal.
func closesSpuriousTriangle(g *core.Graph, m cell.Matrix3, atoms []cell.Atom, e core.Edge, longLength float64) bool {
	sNbrs, _ := g.Neighbors(e.U)
	dNbrs, _ := g.Neighbors(e.V)

	for _, n1 := range sNbrs {
		if n1.To == e.V && n1.Offset == e.Offset {
			continue // skip e itself
		}
		for _, n2 := range dNbrs {
			if n2.To != n1.To {
				continue
			}
			if n2.Offset != n1.Offset.Sub(e.Offset) {
				continue
			}
			l1 := edgeLength(m, atoms, core.Direct(e.U, n1.To, n1.Offset))
			l2 := edgeLength(m, atoms, core.Direct(e.V, n2.To, n2.Offset))
			threshold := triangleLengthCeiling
			if sumSq := l1*l1 + l2*l2; sumSq < threshold {
				threshold = sumSq
			}
			if longLength*longLength > threshold {
				return true
			}
		}
	}
	return false
}
