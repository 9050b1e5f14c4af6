package engine_test

import (
	"strings"
	"testing"

	"github.com/crystalnets-go/crystalnets/archive"
	"github.com/crystalnets-go/crystalnets/cif"
	"github.com/crystalnets-go/crystalnets/engine"
	"github.com/crystalnets-go/crystalnets/ingest"
	"github.com/stretchr/testify/require"
)

// primitiveCubicCIF places one Na at the corner and one Cl at the body
// centre of a 2.8A cubic cell (the CsCl arrangement). After bond
// guessing and sanitation each atom keeps its eight unlike nearest
// neighbors and its six like neighbors along the cell axes, giving a
// 3-periodic net.
const primitiveCubicCIF = `
data_rocksalt
_cell_length_a    2.800
_cell_length_b    2.800
_cell_length_c    2.800
_cell_angle_alpha 90.0
_cell_angle_beta  90.0
_cell_angle_gamma 90.0
loop_
_atom_site_label
_atom_site_type_symbol
_atom_site_fract_x
_atom_site_fract_y
_atom_site_fract_z
_atom_site_occupancy
Na1 Na 0.0 0.0 0.0 1.0
Cl1 Cl 0.5 0.5 0.5 1.0
`

func parse(t *testing.T, src string) *cif.Record {
	t.Helper()
	rec, err := cif.NewReader().Parse(strings.NewReader(src))
	require.NoError(t, err)
	return rec
}

func TestRun_GuessedBondingProducesPeriodicNet(t *testing.T) {
	t.Parallel()

	rec := parse(t, primitiveCubicCIF)
	opts := engine.DefaultOptions()
	opts.BondingMode = ingest.BondingGuess

	results, err := engine.Run(rec, nil, archive.New(), opts)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	for _, r := range results {
		require.Equal(t, 3, r.Dim)
		require.Equal(t, "UNKNOWN", r.Identifier)
	}
}

func TestRun_InputBondingWithoutBondsFails(t *testing.T) {
	t.Parallel()

	rec := parse(t, primitiveCubicCIF)
	opts := engine.DefaultOptions()
	opts.BondingMode = ingest.BondingInput

	_, err := engine.Run(rec, nil, archive.New(), opts)
	require.ErrorIs(t, err, ingest.ErrBondingUnavailable)
}

func TestRun_ClusterModeRequiresResidues(t *testing.T) {
	t.Parallel()

	rec := parse(t, primitiveCubicCIF)
	opts := engine.DefaultOptions()
	opts.StructureType = engine.StructureCluster

	_, err := engine.Run(rec, nil, archive.New(), opts)
	require.ErrorIs(t, err, engine.ErrResidueAssignment)
}

func TestRun_ArchiveHitReturnsKnownIdentifier(t *testing.T) {
	t.Parallel()

	rec := parse(t, primitiveCubicCIF)
	opts := engine.DefaultOptions()
	opts.BondingMode = ingest.BondingGuess

	probe, err := engine.Run(rec, nil, archive.New(), opts)
	require.NoError(t, err)
	require.NotEmpty(t, probe)

	arc := archive.New()
	require.NoError(t, arc.Insert("pcu", probe[0].Genome, false))

	results, err := engine.Run(rec, nil, arc, opts)
	require.NoError(t, err)
	require.Equal(t, "pcu", results[0].Identifier)
}
