package batch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/crystalnets-go/crystalnets/archive"
	"github.com/crystalnets-go/crystalnets/batch"
	"github.com/crystalnets-go/crystalnets/engine"
	"github.com/crystalnets-go/crystalnets/ingest"
	"github.com/stretchr/testify/require"
)

const rocksaltCIF = `
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

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun_IsolatesPerInputFailures(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := writeTemp(t, dir, "good.cif", rocksaltCIF)
	bad := writeTemp(t, dir, "bad.cif", "data_empty\n")

	opts := engine.DefaultOptions()
	opts.BondingMode = ingest.BondingGuess

	results := batch.Run(context.Background(), []string{good, bad}, opts, archive.New(), 2)
	require.Len(t, results, 2)

	require.Equal(t, good, results[0].Path)
	require.NoError(t, results[0].Err)
	require.NotEmpty(t, results[0].Results)
	require.NotEmpty(t, results[0].CorrelationID)

	require.Equal(t, bad, results[1].Path)
	require.Error(t, results[1].Err)
}

func TestRun_MissingFileReportsOpenError(t *testing.T) {
	t.Parallel()

	opts := engine.DefaultOptions()
	results := batch.Run(context.Background(), []string{"/does/not/exist.cif"}, opts, archive.New(), 1)
	require.Len(t, results, 1)
	require.Error(t, results[0].Err)
}

func TestRun_PreservesInputOrderUnderConcurrency(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	var paths []string
	for i := 0; i < 6; i++ {
		paths = append(paths, writeTemp(t, dir, string(rune('a'+i))+".cif", rocksaltCIF))
	}

	opts := engine.DefaultOptions()
	opts.BondingMode = ingest.BondingGuess

	results := batch.Run(context.Background(), paths, opts, archive.New(), 4)
	require.Len(t, results, len(paths))
	for i, r := range results {
		require.Equal(t, paths[i], r.Path)
		require.NoError(t, r.Err)
	}
}
