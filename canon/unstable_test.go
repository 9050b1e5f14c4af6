package canon

import (
	"testing"

	"github.com/crystalnets-go/crystalnets/core"
	"github.com/stretchr/testify/require"
)

// The real boundary-case nets this harness is meant to guard ("sxt",
// "llw-z") are not available from this program's retrieval sources, so
// these tests exercise detectInstability directly against
// hand-constructed tied candidates and a known equilibrium placement,
// rather than driving the whole pipeline to a specific named net.

// chainGraph returns a dim-1 path 0-1-...-(n-1) with unit offset per
// step, used only to get a well-defined, hand-checkable equilibrium
// placement; detectInstability never consults tied candidates' graphs
// or edges, only best.graph and each candidate's perm.
func chainGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n, 1)
	for v := 0; v+1 < n; v++ {
		require.NoError(t, g.AddEdge(v, v+1, core.Offset{1, 0, 0}))
	}
	return g
}

func TestDetectInstability_DisagreeingTieIsFlagged(t *testing.T) {
	t.Parallel()

	best := labelCandidate{perm: []int{0, 1, 2}, graph: chainGraph(t, 3)}
	// best.perm's own tie (the identity) plus a second root whose
	// pullback does not match the first even up to inversion: swapping
	// original vertices 1 and 2 in the canonical numbering scrambles
	// their relative order instead of just reflecting it.
	tied := []labelCandidate{
		{perm: []int{0, 1, 2}},
		{perm: []int{0, 2, 1}},
	}

	require.True(t, detectInstability(best, tied, 1))
}

func TestDetectInstability_InversionRelatedTieIsNotFlagged(t *testing.T) {
	t.Parallel()

	// A two-vertex, one-edge chain has exactly the symmetry a point
	// inversion realizes: re-rooting at the other endpoint recovers
	// the negated placement, not the identical one.
	best := labelCandidate{perm: []int{0, 1}, graph: chainGraph(t, 2)}
	tied := []labelCandidate{
		{perm: []int{0, 1}},
		{perm: []int{1, 0}},
	}

	require.False(t, detectInstability(best, tied, 1))
}

func TestDetectInstability_SingleCandidateNeverFlagged(t *testing.T) {
	t.Parallel()

	best := labelCandidate{perm: []int{0, 1, 2}, graph: chainGraph(t, 3)}
	require.False(t, detectInstability(best, []labelCandidate{{perm: []int{0, 1, 2}}}, 1))
}

func TestDetectInstability_ZeroDimensionNeverFlagged(t *testing.T) {
	t.Parallel()

	best := labelCandidate{perm: []int{0, 1}, graph: chainGraph(t, 2)}
	tied := []labelCandidate{{perm: []int{0, 1}}, {perm: []int{1, 0}}}
	require.False(t, detectInstability(best, tied, 0))
}
