package engine

import "github.com/crystalnets-go/crystalnets/core"

// components splits g into its connected components over the finite
// quotient, each returned as its own freshly 0-indexed graph. A
// structure with several independent interpenetrating or molecular
// fragments yields one genome per fragment rather than one genome for
// the disjoint union.
func components(g *core.Graph) []*core.Graph {
	n := g.VertexCount()
	compOf := make([]int, n)
	for i := range compOf {
		compOf[i] = -1
	}

	var groups [][]int
	for v := 0; v < n; v++ {
		if compOf[v] != -1 {
			continue
		}
		id := len(groups)
		compOf[v] = id
		queue := []int{v}
		var group []int
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			group = append(group, u)
			nbrs, _ := g.Neighbors(u)
			for _, nb := range nbrs {
				if compOf[nb.To] == -1 {
					compOf[nb.To] = id
					queue = append(queue, nb.To)
				}
			}
		}
		groups = append(groups, group)
	}

	newIdx := make([]int, n)
	subs := make([]*core.Graph, len(groups))
	for id, group := range groups {
		for i, old := range group {
			newIdx[old] = i
		}
		subs[id] = core.NewGraph(len(group), g.Dim())
	}
	for _, e := range g.Edges() {
		id := compOf[e.U]
		_ = subs[id].AddEdge(newIdx[e.U], newIdx[e.V], e.Offset)
	}
	return subs
}
