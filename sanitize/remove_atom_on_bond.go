package sanitize

import (
	"github.com/crystalnets-go/crystalnets/cell"
	"github.com/crystalnets-go/crystalnets/core"
)

// angleThresholdDegrees is the cutoff below which two neighbor bonds
// are considered collinear: one neighbor is effectively sitting on the
// bond to the other rather than forming a genuine second contact.
const angleThresholdDegrees = 10.0

// RemoveAtomOnBond removes collinear bond artifacts: for each vertex v with
// two or more neighbors, if two neighbors subtend an angle below
// angleThresholdDegrees at v, the edge to whichever is farther is
// removed. Repeats until no such pair exists, bounded by edge count.
func RemoveAtomOnBond(g *core.Graph, m cell.Matrix3, atoms []cell.Atom) (*core.Graph, error) {
	cur := g.Clone()
	iterCap := cur.EdgeCount() + 1

	for iter := 0; iter <= iterCap; iter++ {
		u, v, o, found := findNarrowAnglePair(cur, m, atoms)
		if !found {
			return cur, nil
		}
		if err := cur.RemoveEdge(u, v, o); err != nil {
			return nil, err
		}
	}
	return nil, ErrIterationCapExceeded
}

// findNarrowAnglePair scans every vertex for a neighbor pair under the
// angle threshold and returns the farther endpoint's edge.
func findNarrowAnglePair(g *core.Graph, m cell.Matrix3, atoms []cell.Atom) (u, v int, o core.Offset, found bool) {
	for vertex := 0; vertex < g.VertexCount(); vertex++ {
		nbrs, err := g.Neighbors(vertex)
		if err != nil || len(nbrs) < 2 {
			continue
		}
		for i := 0; i < len(nbrs); i++ {
			for j := i + 1; j < len(nbrs); j++ {
				if angleDegrees(m, atoms, vertex, nbrs[i], nbrs[j]) < angleThresholdDegrees {
					li := dist(m.MulVec(atoms[vertex].Frac), vertexPosition(m, atoms, nbrs[i].To, nbrs[i].Offset))
					lj := dist(m.MulVec(atoms[vertex].Frac), vertexPosition(m, atoms, nbrs[j].To, nbrs[j].Offset))
					far := nbrs[i]
					if lj > li {
						far = nbrs[j]
					}
					return vertex, far.To, far.Offset, true
				}
			}
		}
	}
	return 0, 0, core.Offset{}, false
}
