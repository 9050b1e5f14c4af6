package canon

import (
	"sort"

	"github.com/crystalnets-go/crystalnets/core"
)

// candidateLabeling performs a canonical breadth-first traversal
// starting from start: at each step the frontier is ordered by the
// lexicographically smallest (neighbor-offset, neighbor-local-index)
// tuple, with ties broken by smallest original vertex index (the
// deterministic secondary tiebreak DESIGN.md documents). It returns
// the old-index -> new-index permutation.
func candidateLabeling(g *core.Graph, start int) []int {
	n := g.VertexCount()
	newIndex := make([]int, n)
	for i := range newIndex {
		newIndex[i] = -1
	}
	visited := make([]bool, n)
	visited[start] = true
	newIndex[start] = 0
	next := 1

	queue := []int{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		nbrs, _ := g.Neighbors(u)
		type frontierCand struct {
			to       int
			offset   core.Offset
			localIdx int
		}
		var cands []frontierCand
		for li, nb := range nbrs {
			if !visited[nb.To] {
				cands = append(cands, frontierCand{nb.To, nb.Offset, li})
			}
		}
		sort.Slice(cands, func(i, j int) bool {
			if cands[i].offset != cands[j].offset {
				return cands[i].offset.Less(cands[j].offset)
			}
			if cands[i].localIdx != cands[j].localIdx {
				return cands[i].localIdx < cands[j].localIdx
			}
			return cands[i].to < cands[j].to
		})

		for _, c := range cands {
			if visited[c.to] {
				continue
			}
			visited[c.to] = true
			newIndex[c.to] = next
			next++
			queue = append(queue, c.to)
		}
	}

	// Disconnected safety net: assign any unreached vertex (should not
	// occur for a connected graph, the only input Canonicalize accepts).
	for v := 0; v < n; v++ {
		if newIndex[v] == -1 {
			newIndex[v] = next
			next++
		}
	}
	return newIndex
}

// compareEdgeLists returns -1, 0, or 1 comparing two sorted direct-
// form edge lists lexicographically by (U, V, Offset...), matching
// the ordering core.Graph.Edges already produces.
func compareEdgeLists(a, b []core.Edge) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i].U != b[i].U {
			return sign(a[i].U - b[i].U)
		}
		if a[i].V != b[i].V {
			return sign(a[i].V - b[i].V)
		}
		for k := 0; k < core.MaxDim; k++ {
			if a[i].Offset[k] != b[i].Offset[k] {
				return sign(int(a[i].Offset[k] - b[i].Offset[k]))
			}
		}
	}
	return sign(len(a) - len(b))
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

func edgeListsEqual(a, b []core.Edge) bool { return compareEdgeLists(a, b) == 0 }
