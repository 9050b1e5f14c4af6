package canon

import (
	"fmt"
	"math/big"

	"github.com/crystalnets-go/crystalnets/core"
)

// Result is the outcome of canonicalizing one connected periodic
// graph: its genome string, the reduced dimension it was serialized
// at, and whether step 5's instability check fired.
type Result struct {
	Genome   string
	Dim      int
	Unstable bool
}

type labelCandidate struct {
	perm  []int
	graph *core.Graph
	edges []core.Edge
}

// Canonicalize runs the full topological-fingerprint pipeline against
// a single connected periodic graph: dimensionality reduction,
// candidate canonical labelings compared by sorted edge list,
// instability detection among ties, and genome serialization.
func Canonicalize(g *core.Graph) (Result, error) {
	n := g.VertexCount()
	if n == 0 {
		return Result{}, ErrEmptyGraph
	}

	pos, treeEdges, err := spanningTree(g)
	if err != nil {
		return Result{}, err
	}

	var cycleVectors [][3]int64
	for _, e := range g.Edges() {
		if treeEdges[edgeKey{e.U, e.V, e.Offset}] {
			continue
		}
		rc := pos[e.U].Add(e.Offset).Sub(pos[e.V])
		cycleVectors = append(cycleVectors, [3]int64{rc[0], rc[1], rc[2]})
	}

	basis := MinimizeBasis(ReduceToBasis(cycleVectors))
	dim := len(basis)

	reduced := core.NewGraph(n, dim)
	for _, e := range g.Edges() {
		rc := pos[e.U].Add(e.Offset).Sub(pos[e.V])
		coeffs, ok := ExpressInBasis(rc, basis)
		if !ok {
			return Result{}, fmt.Errorf("canon: edge (%d,%d,%s) does not reduce onto the computed lattice basis", e.U, e.V, e.Offset)
		}
		var newOffset core.Offset
		for k, c := range coeffs {
			newOffset[k] = c
		}
		if err := reduced.AddEdge(e.U, e.V, newOffset); err != nil {
			return Result{}, fmt.Errorf("canon: %w", err)
		}
	}

	var best labelCandidate
	var tied []labelCandidate
	for v0 := 0; v0 < n; v0++ {
		perm := candidateLabeling(reduced, v0)
		relabeled, err := reduced.Relabel(perm)
		if err != nil {
			return Result{}, fmt.Errorf("canon: %w", err)
		}
		cand := labelCandidate{perm: perm, graph: relabeled, edges: relabeled.Edges()}

		if tied == nil {
			best = cand
			tied = []labelCandidate{cand}
			continue
		}
		switch cmp := compareEdgeLists(cand.edges, best.edges); {
		case cmp < 0:
			best = cand
			tied = []labelCandidate{cand}
		case cmp == 0:
			tied = append(tied, cand)
		}
	}

	unstable := detectInstability(best, tied, dim)

	return Result{
		Genome:   Serialize(best.graph, dim),
		Dim:      dim,
		Unstable: unstable,
	}, nil
}

// detectInstability checks the combinatorial/geometric boundary case:
// when several distinct starting vertices produce the identical sorted edge list
// (the canonical graph is literally the same combinatorial object
// under each), pull the shared equilibrium placement back through
// each candidate's permutation, re-pinned at original vertex 0. If two
// pullbacks disagree, the combinatorial symmetry tying them is not
// realized by a matching geometric placement: the net is unstable.
func detectInstability(best labelCandidate, tied []labelCandidate, dim int) bool {
	if len(tied) < 2 || dim == 0 {
		return false
	}
	placement, err := EquilibriumPlacement(best.graph, dim)
	if err != nil {
		return false
	}

	n := len(best.perm)
	var reference [][]*big.Rat
	for _, cand := range tied {
		origin := placement[cand.perm[0]]
		pulled := make([][]*big.Rat, n)
		for v := 0; v < n; v++ {
			p := placement[cand.perm[v]]
			diff := make([]*big.Rat, dim)
			for d := 0; d < dim; d++ {
				diff[d] = new(big.Rat).Sub(p[d], origin[d])
			}
			pulled[v] = diff
		}
		if reference == nil {
			reference = pulled
			continue
		}
		if !placementsEquivalent(reference, pulled) {
			return true
		}
	}
	return false
}
