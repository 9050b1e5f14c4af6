package sanitize

import (
	"github.com/crystalnets-go/crystalnets/cell"
	"github.com/crystalnets-go/crystalnets/core"
)

// RemoveHomoatomic deletes every edge
// connecting two atoms of the same element, restricted to the
// configured target elements.
func RemoveHomoatomic(g *core.Graph, atoms []cell.Atom, targets []string) *core.Graph {
	if len(targets) == 0 {
		return g.Clone()
	}
	targetSet := make(map[string]bool, len(targets))
	for _, t := range targets {
		targetSet[t] = true
	}

	cur := g.Clone()
	for _, e := range cur.Edges() {
		if atoms[e.U].Symbol == atoms[e.V].Symbol && targetSet[atoms[e.U].Symbol] {
			_ = cur.RemoveEdge(e.U, e.V, e.Offset)
		}
	}
	return cur
}
