package canon_test

import (
	"testing"

	"github.com/crystalnets-go/crystalnets/canon"
	"github.com/crystalnets-go/crystalnets/core"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize_SingleSelfLoopIsOneDimensional(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(1, 1)
	require.NoError(t, g.AddEdge(0, 0, core.Offset{1, 0, 0}))

	result, err := canon.Canonicalize(g)
	require.NoError(t, err)
	require.Equal(t, 1, result.Dim)
	require.False(t, result.Unstable)
	require.Equal(t, "1 1 1 1\n", result.Genome)
}

func fullRankTwoVertexGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(2, 3)
	require.NoError(t, g.AddEdge(0, 1, core.Offset{0, 0, 0}))
	require.NoError(t, g.AddEdge(0, 1, core.Offset{1, 0, 0}))
	require.NoError(t, g.AddEdge(0, 1, core.Offset{0, 1, 0}))
	require.NoError(t, g.AddEdge(0, 1, core.Offset{0, 0, 1}))
	return g
}

func TestCanonicalize_ThreePeriodicRankAndEdgeCount(t *testing.T) {
	t.Parallel()

	g := fullRankTwoVertexGraph(t)
	result, err := canon.Canonicalize(g)
	require.NoError(t, err)
	require.Equal(t, 3, result.Dim)

	parsed, dim, err := canon.Parse(result.Genome)
	require.NoError(t, err)
	require.Equal(t, 3, dim)
	require.Equal(t, 2, parsed.VertexCount())
	require.Equal(t, 4, parsed.EdgeCount())
}

func TestCanonicalize_IsIdempotent(t *testing.T) {
	t.Parallel()

	g := fullRankTwoVertexGraph(t)
	first, err := canon.Canonicalize(g)
	require.NoError(t, err)

	reparsed, _, err := canon.Parse(first.Genome)
	require.NoError(t, err)
	second, err := canon.Canonicalize(reparsed)
	require.NoError(t, err)

	require.Equal(t, first.Genome, second.Genome)
}

func TestCanonicalize_InvariantUnderRelabeling(t *testing.T) {
	t.Parallel()

	g := fullRankTwoVertexGraph(t)
	base, err := canon.Canonicalize(g)
	require.NoError(t, err)

	swapped, err := g.Relabel([]int{1, 0})
	require.NoError(t, err)
	relabeledResult, err := canon.Canonicalize(swapped)
	require.NoError(t, err)

	require.Equal(t, base.Genome, relabeledResult.Genome)
}

func TestCanonicalize_InvariantUnderAxisSwap(t *testing.T) {
	t.Parallel()

	g := fullRankTwoVertexGraph(t)
	base, err := canon.Canonicalize(g)
	require.NoError(t, err)

	swapped, err := g.SwapAxes([core.MaxDim]int{1, 0, 2})
	require.NoError(t, err)
	swappedResult, err := canon.Canonicalize(swapped)
	require.NoError(t, err)

	require.Equal(t, base.Genome, swappedResult.Genome)
}

func TestCanonicalize_InvariantUnderUnimodularBasisChange(t *testing.T) {
	t.Parallel()

	g := fullRankTwoVertexGraph(t)
	base, err := canon.Canonicalize(g)
	require.NoError(t, err)

	// A unimodular shear (det=1): re-expresses every offset in a
	// different, equally valid basis for the same translation
	// lattice. Canonicalization reduces to the lattice's intrinsic
	// rank and basis, so it must not be sensitive to which basis the
	// input happened to be embedded in.
	shear := [core.MaxDim][core.MaxDim]int64{
		{1, 0, 0},
		{1, 1, 0},
		{0, 0, 1},
	}
	sheared := g.ApplyBasisChange(shear)
	shearedResult, err := canon.Canonicalize(sheared)
	require.NoError(t, err)

	require.Equal(t, base.Genome, shearedResult.Genome)
}

func TestZRank_IdentifiesDegenerateRank(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, canon.ZRank(nil))
	require.Equal(t, 1, canon.ZRank([][3]int64{{2, 0, 0}, {4, 0, 0}}))
	require.Equal(t, 2, canon.ZRank([][3]int64{{1, 0, 0}, {0, 1, 0}}))
	require.Equal(t, 3, canon.ZRank([][3]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}))
}

func TestReduceToBasis_CollapsesToGenerators(t *testing.T) {
	t.Parallel()

	basis := canon.ReduceToBasis([][3]int64{{2, 0, 0}, {0, 3, 0}, {2, 3, 0}})
	require.Len(t, basis, 2)
}

func TestExpressInBasis_RecoversExactCoefficients(t *testing.T) {
	t.Parallel()

	basis := [][3]int64{{1, 0, 0}, {0, 1, 0}}
	coeffs, ok := canon.ExpressInBasis([3]int64{3, -2, 0}, basis)
	require.True(t, ok)
	require.Equal(t, []int64{3, -2}, coeffs)
}

func TestGenome_ParseRoundTrip(t *testing.T) {
	t.Parallel()

	src := "1 1 1 1\n"
	g, dim, err := canon.Parse(src)
	require.NoError(t, err)
	require.Equal(t, 1, dim)
	require.Equal(t, canon.Serialize(g, dim), src)
}

func TestParse_RejectsMalformedGenome(t *testing.T) {
	t.Parallel()

	_, _, err := canon.Parse("not a genome")
	require.ErrorIs(t, err, canon.ErrMalformedGenome)
}
