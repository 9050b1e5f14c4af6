package core_test

import (
	"testing"

	"github.com/crystalnets-go/crystalnets/core"
	"github.com/stretchr/testify/require"
)

func off(a, b, c int64) core.Offset { return core.Offset{a, b, c} }

func TestAddEdge_DirectFormAndDuplicate(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(2, 3)
	require.NoError(t, g.AddEdge(0, 1, off(0, 0, 1)))

	edges := g.Edges()
	require.Len(t, edges, 1)
	require.Equal(t, core.Edge{U: 0, V: 1, Offset: off(0, 0, 1)}, edges[0])

	err := g.AddEdge(0, 1, off(0, 0, 1))
	require.ErrorIs(t, err, core.ErrDuplicateEdge)

	// reverse direction is the same undirected edge and must also collide
	err = g.AddEdge(1, 0, off(0, 0, -1))
	require.ErrorIs(t, err, core.ErrDuplicateEdge)
}

func TestAddEdge_SelfLoopRequiresNonzeroOffset(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(1, 3)
	err := g.AddEdge(0, 0, off(0, 0, 0))
	require.ErrorIs(t, err, core.ErrSelfLoopZeroOffset)

	require.NoError(t, g.AddEdge(0, 0, off(1, 0, 0)))
	edges := g.Edges()
	require.Len(t, edges, 1)
	require.True(t, edges[0].Offset.Positive())
}

func TestSelfLoopsAtDistinctOffsets(t *testing.T) {
	t.Parallel()

	// A single-vertex graph with self-loops at distinct offsets must
	// keep both as separate edges.
	g := core.NewGraph(1, 3)
	require.NoError(t, g.AddEdge(0, 0, off(1, 0, 0)))
	require.NoError(t, g.AddEdge(0, 0, off(0, 1, 0)))

	edges := g.Edges()
	require.Len(t, edges, 2)
	for _, e := range edges {
		require.True(t, e.Offset.Positive())
	}
}

func TestDirect_PicksCanonicalOrientation(t *testing.T) {
	t.Parallel()

	e := core.Direct(2, 1, off(0, 0, 1))
	require.Equal(t, 1, e.U)
	require.Equal(t, 2, e.V)
	require.Equal(t, off(0, 0, -1), e.Offset)
}

func TestRemoveEdge(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(2, 3)
	require.NoError(t, g.AddEdge(0, 1, off(1, 0, 0)))
	require.NoError(t, g.RemoveEdge(0, 1, off(1, 0, 0)))
	require.Empty(t, g.Edges())

	err := g.RemoveEdge(0, 1, off(1, 0, 0))
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestRelabel_Isomorphism(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(3, 3)
	require.NoError(t, g.AddEdge(0, 1, off(0, 0, 0)))
	require.NoError(t, g.AddEdge(1, 2, off(0, 0, 1)))

	relabeled, err := g.Relabel([]int{2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, g.EdgeCount(), relabeled.EdgeCount())

	_, err = g.Relabel([]int{0, 0, 1})
	require.ErrorIs(t, err, core.ErrBadPermutation)
}

func TestSwapAxes_PermutesOffsets(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(2, 3)
	require.NoError(t, g.AddEdge(0, 1, off(1, 2, 3)))

	swapped, err := g.SwapAxes([core.MaxDim]int{2, 0, 1})
	require.NoError(t, err)

	edges := swapped.Edges()
	require.Len(t, edges, 1)
	require.Equal(t, off(3, 1, 2), edges[0].Offset)
}

func TestOffsetRepresentatives_ShiftsIncidentEdges(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(2, 3)
	require.NoError(t, g.AddEdge(0, 1, off(0, 0, 0)))

	shifted, err := g.OffsetRepresentatives([]core.Offset{off(1, 0, 0), off(0, 0, 0)})
	require.NoError(t, err)

	edges := shifted.Edges()
	require.Len(t, edges, 1)
	// (0,1,o) becomes (0,1,o-delta[0]+delta[1]) = (0,1,(0,0,0)-(1,0,0))
	require.Equal(t, off(-1, 0, 0), edges[0].Offset)
}

func TestRemoveVertex_RemapsIndices(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(3, 3)
	require.NoError(t, g.AddEdge(0, 1, off(0, 0, 0)))
	require.NoError(t, g.AddEdge(1, 2, off(0, 0, 0)))

	mapping, err := g.RemoveVertex(1)
	require.NoError(t, err)
	require.Equal(t, -1, mapping[1])
	require.Equal(t, 2, g.VertexCount())
	require.Empty(t, g.Edges())
}

func TestNeighbors_OutOfRange(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(1, 3)
	_, err := g.Neighbors(5)
	require.ErrorIs(t, err, core.ErrVertexOutOfRange)
}
