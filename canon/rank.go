package canon

import (
	"math/big"

	"github.com/crystalnets-go/crystalnets/core"
)

// spanningTree runs a breadth-first traversal of g from vertex 0,
// assigning each reached vertex a position relative to the root (the
// sum of tree-edge offsets along the path to it) and recording which
// directed adjacency entries belong to the tree. It is the voltage-
// graph construction dimensionality reduction builds on: tree edges
// carry no translation in the reduced representation, co-tree edges
// carry the graph's cycle vectors.
func spanningTree(g *core.Graph) (pos []core.Offset, treeEdges map[edgeKey]bool, err error) {
	n := g.VertexCount()
	if n == 0 {
		return nil, nil, ErrEmptyGraph
	}

	visited := make([]bool, n)
	pos = make([]core.Offset, n)
	treeEdges = make(map[edgeKey]bool)

	queue := []int{0}
	visited[0] = true
	count := 1
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nbrs, _ := g.Neighbors(u)
		for _, nb := range nbrs {
			if visited[nb.To] {
				continue
			}
			visited[nb.To] = true
			pos[nb.To] = pos[u].Add(nb.Offset)
			treeEdges[edgeKey{u, nb.To, nb.Offset}] = true
			treeEdges[edgeKey{nb.To, u, nb.Offset.Neg()}] = true
			count++
			queue = append(queue, nb.To)
		}
	}

	if count != n {
		return nil, nil, ErrDisconnected
	}
	return pos, treeEdges, nil
}

// edgeKey identifies one directed adjacency entry, used to mark
// spanning-tree membership regardless of traversal direction.
type edgeKey struct {
	U, V int
	O    core.Offset
}

// CycleVectors returns the raw translation vector contributed by every
// co-tree edge: pos[u] + offset - pos[v] for the directed form of each
// undirected edge not in the spanning tree. These vectors generate
// exactly the lattice of translations the periodic graph admits.
func CycleVectors(g *core.Graph) ([][3]int64, error) {
	pos, treeEdges, err := spanningTree(g)
	if err != nil {
		return nil, err
	}

	var vectors [][3]int64
	for _, e := range g.Edges() {
		if treeEdges[edgeKey{e.U, e.V, e.Offset}] {
			continue
		}
		rc := pos[e.U].Add(e.Offset).Sub(pos[e.V])
		vectors = append(vectors, [3]int64{rc[0], rc[1], rc[2]})
	}
	return vectors, nil
}

// ZRank returns the rank over the rationals of the lattice spanned by
// vectors, via Gaussian elimination on an exact big.Rat matrix so the
// result is immune to floating-point error.
func ZRank(vectors [][3]int64) int {
	rows := make([][3]*big.Rat, len(vectors))
	for i, v := range vectors {
		rows[i] = [3]*big.Rat{
			new(big.Rat).SetInt64(v[0]),
			new(big.Rat).SetInt64(v[1]),
			new(big.Rat).SetInt64(v[2]),
		}
	}

	rank := 0
	for col := 0; col < 3 && rank < len(rows); col++ {
		pivot := -1
		for r := rank; r < len(rows); r++ {
			if rows[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		pivotVal := new(big.Rat).Set(rows[rank][col])
		for r := 0; r < len(rows); r++ {
			if r == rank || rows[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Quo(rows[r][col], pivotVal)
			for c := 0; c < 3; c++ {
				tmp := new(big.Rat).Mul(factor, rows[rank][c])
				rows[r][c] = new(big.Rat).Sub(rows[r][c], tmp)
			}
		}
		rank++
	}
	return rank
}
