package archive_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/crystalnets-go/crystalnets/archive"
	"github.com/stretchr/testify/require"
)

func TestInsertAndLookup(t *testing.T) {
	t.Parallel()

	a := archive.New()
	require.NoError(t, a.Insert("dia", "3 2 0 1 0 0 0", false))

	id, ok := a.Lookup("3 2 0 1 0 0 0")
	require.True(t, ok)
	require.Equal(t, "dia", id)

	genome, ok := a.ReverseLookup("dia")
	require.True(t, ok)
	require.Equal(t, "3 2 0 1 0 0 0", genome)
}

func TestInsert_RejectsConflictWithoutOverride(t *testing.T) {
	t.Parallel()

	a := archive.New()
	require.NoError(t, a.Insert("dia", "genome-a", false))

	err := a.Insert("pcu", "genome-a", false)
	require.ErrorIs(t, err, archive.ErrConflict)

	require.NoError(t, a.Insert("pcu", "genome-a", true))
	id, _ := a.Lookup("genome-a")
	require.Equal(t, "pcu", id)
}

func TestMerge_CombinesAliasesOnConflict(t *testing.T) {
	t.Parallel()

	a := archive.New()
	require.NoError(t, a.Insert("dia", "genome-a", false))

	b := archive.New()
	require.NoError(t, b.Insert("diamond", "genome-a", false))

	notes := a.Merge(b)
	require.Len(t, notes, 1)

	id, ok := a.Lookup("genome-a")
	require.True(t, ok)
	require.Equal(t, "dia, diamond", id)
}

func TestLoad_DetectsFormatStampAndParsesRecords(t *testing.T) {
	t.Parallel()

	src := "Made by CrystalNets.jl v1.0.0\n" +
		"# comment\n" +
		"key genome-a\n" +
		"id dia\n" +
		"key genome-b\n" +
		"id pcu\n"

	a, err := archive.Load(strings.NewReader(src))
	require.NoError(t, err)
	require.False(t, a.IsExternal())
	require.Equal(t, 2, a.Len())

	id, ok := a.Lookup("genome-a")
	require.True(t, ok)
	require.Equal(t, "dia", id)
}

func TestLoad_MissingStampMarksExternal(t *testing.T) {
	t.Parallel()

	src := "key genome-a\nid dia\n"
	a, err := archive.Load(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, a.IsExternal())
}

func TestLoad_RejectsMalformedRecord(t *testing.T) {
	t.Parallel()

	_, err := archive.Load(strings.NewReader("id dia\n"))
	require.ErrorIs(t, err, archive.ErrMalformedRecord)
}

func TestWriteThenLoad_RoundTrips(t *testing.T) {
	t.Parallel()

	a := archive.New()
	require.NoError(t, a.Insert("dia", "genome-a", false))
	require.NoError(t, a.Insert("pcu", "genome-b", false))

	var buf strings.Builder
	require.NoError(t, archive.Write(&buf, a))

	reloaded, err := archive.Load(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.False(t, reloaded.IsExternal())
	require.Equal(t, 2, reloaded.Len())
}

// upperCaseGenome stands in for a real canonicalizer: deterministic,
// and different enough from its input to prove Recanonicalize is
// actually rewriting keys rather than leaving them alone.
func upperCaseGenome(genome string) (string, error) {
	return strings.ToUpper(genome), nil
}

func TestLoad_MissingStampThenRecanonicalizeRewritesKeys(t *testing.T) {
	t.Parallel()

	src := "key genome-a\nid dia\nkey genome-b\nid pcu\n"
	a, err := archive.Load(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, a.IsExternal())

	require.NoError(t, a.Recanonicalize(upperCaseGenome))
	require.False(t, a.IsExternal())

	id, ok := a.Lookup("GENOME-A")
	require.True(t, ok)
	require.Equal(t, "dia", id)

	_, ok = a.Lookup("genome-a")
	require.False(t, ok)

	genome, ok := a.ReverseLookup("pcu")
	require.True(t, ok)
	require.Equal(t, "GENOME-B", genome)
}

func TestRecanonicalize_MergesEntriesThatCollide(t *testing.T) {
	t.Parallel()

	a := archive.New()
	require.NoError(t, a.Insert("dia", "genome-a", false))
	require.NoError(t, a.Insert("dia-alt", "GENOME-A", false))

	require.NoError(t, a.Recanonicalize(upperCaseGenome))

	require.Equal(t, 1, a.Len())
	id, ok := a.Lookup("GENOME-A")
	require.True(t, ok)
	require.Contains(t, id, "dia")
	require.Contains(t, id, "dia-alt")
}

func TestRecanonicalize_PropagatesCanonicalizeError(t *testing.T) {
	t.Parallel()

	a := archive.New()
	require.NoError(t, a.Insert("dia", "genome-a", false))

	boom := errors.New("boom")
	err := a.Recanonicalize(func(string) (string, error) { return "", boom })
	require.ErrorIs(t, err, boom)
}
