package canon

import (
	"fmt"
	"math/big"

	"github.com/crystalnets-go/crystalnets/core"
)

// EquilibriumPlacement solves, independently for each of the first
// dim coordinates, the linear system that places every non-pinned
// vertex at the barycenter of its neighbors (offsets contributing),
// with vertex 0 fixed at the origin. The Laplacian
// is dimension-independent, so one (n-1)x(n-1) elimination is shared
// across all dim right-hand sides.
func EquilibriumPlacement(g *core.Graph, dim int) ([][]*big.Rat, error) {
	n := g.VertexCount()
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	positions := make([][]*big.Rat, n)
	positions[0] = zeroVec(dim)
	if n == 1 {
		return positions, nil
	}

	laplacian := make([][]*big.Rat, n-1)
	rhs := make([][]*big.Rat, n-1)
	for i := range laplacian {
		laplacian[i] = make([]*big.Rat, n-1)
		for j := range laplacian[i] {
			laplacian[i][j] = big.NewRat(0, 1)
		}
		rhs[i] = make([]*big.Rat, dim)
		for d := range rhs[i] {
			rhs[i][d] = big.NewRat(0, 1)
		}
	}

	for v := 1; v < n; v++ {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return nil, err
		}
		i := v - 1
		laplacian[i][i] = new(big.Rat).Add(laplacian[i][i], big.NewRat(int64(len(nbrs)), 1))
		for _, nb := range nbrs {
			for d := 0; d < dim; d++ {
				rhs[i][d] = new(big.Rat).Add(rhs[i][d], big.NewRat(nb.Offset[d], 1))
			}
			if nb.To == 0 {
				continue
			}
			j := nb.To - 1
			laplacian[i][j] = new(big.Rat).Sub(laplacian[i][j], big.NewRat(1, 1))
		}
	}

	for i := 1; i < n; i++ {
		positions[i] = make([]*big.Rat, dim)
	}
	for d := 0; d < dim; d++ {
		col := make([]*big.Rat, n-1)
		for i := range col {
			col[i] = rhs[i][d]
		}
		sol, ok := solveLinearSystem(laplacian, col)
		if !ok {
			return nil, fmt.Errorf("canon: equilibrium placement is singular (disconnected graph?)")
		}
		for i := 0; i < n-1; i++ {
			positions[i+1][d] = sol[i]
		}
	}
	return positions, nil
}

func zeroVec(dim int) []*big.Rat {
	v := make([]*big.Rat, dim)
	for i := range v {
		v[i] = big.NewRat(0, 1)
	}
	return v
}

// placementsDiffer reports whether a and b assign meaningfully
// different coordinates to any vertex, after re-pinning both to
// vertex 0 (already true by construction here, kept explicit for
// clarity at call sites).
func placementsDiffer(a, b [][]*big.Rat) bool {
	if len(a) != len(b) {
		return true
	}
	for i := range a {
		for d := range a[i] {
			if a[i][d].Cmp(b[i][d]) != 0 {
				return true
			}
		}
	}
	return false
}

// placementsEquivalent reports whether two origin-pinned pullback
// placements describe the same geometric arrangement: either
// identical, or related by a global point inversion (every
// coordinate negated). Re-pinning at a different root vertex of a
// centrosymmetric net recovers the inverted, not the identical,
// placement, so checking equality alone flags every such net as
// unstable; checking inversion too covers that common case without
// claiming to detect every possible realizing isometry.
func placementsEquivalent(a, b [][]*big.Rat) bool {
	if !placementsDiffer(a, b) {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for d := range a[i] {
			if new(big.Rat).Neg(a[i][d]).Cmp(b[i][d]) != 0 {
				return false
			}
		}
	}
	return true
}
