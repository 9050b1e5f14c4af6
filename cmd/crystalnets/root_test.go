package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/crystalnets-go/crystalnets/archive"
	"github.com/crystalnets-go/crystalnets/canon"
	"github.com/stretchr/testify/require"
)

func newTestContext() context.Context { return context.Background() }

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

func TestHelp_StartsWithMandatedUsagePrefix(t *testing.T) {
	var out bytes.Buffer
	flags := &cliFlags{}
	cmd := newRootCommand(flags, &out, &out)
	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), "usage: CrystalNets")
}

// dia is the diamond net's genome in the CLI's direct-lookup grammar:
// a dimension digit followed by the sorted direct-form edge list
// (vertices 1-based, no separate vertex-count field), exactly as a
// caller would paste it on the command line.
const diaGenome = "3   1 2  0 0 0   1 2  0 0 1   1 2  0 1 0   1 2  1 0 0"

func archiveWithDia(t *testing.T) string {
	t.Helper()
	g, _, err := canon.Parse(diaGenome)
	require.NoError(t, err)
	result, err := canon.Canonicalize(g)
	require.NoError(t, err)

	arc := archive.New()
	require.NoError(t, arc.Insert("dia", result.Genome, false))

	path := filepath.Join(t.TempDir(), "dia.arc")
	require.NoError(t, archive.WriteFile(path, arc))
	return path
}

func TestGenomeLookup_KnownGenomeExitsZero(t *testing.T) {
	flags := &cliFlags{genome: diaGenome, archivePath: archiveWithDia(t)}
	var out, errOut bytes.Buffer
	code := execute(newTestContext(), flags, nil, &out, &errOut)
	require.Equal(t, exitRecognized, code)
	require.Equal(t, "dia\n", out.String())
}

// externalArchiveWithDia writes a stamp-less ".arc" file (no "Made by
// CrystalNets.jl" header) whose key is dia's genome relabeled to a
// non-canonical vertex order, the situation IsExternal/Recanonicalize
// exist to repair: only re-canonicalizing the key on load lets a
// lookup against the program's own canonical genome for dia succeed.
func externalArchiveWithDia(t *testing.T) string {
	t.Helper()
	g, _, err := canon.Parse(diaGenome)
	require.NoError(t, err)
	relabeled, err := g.Relabel([]int{1, 0})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "external.arc")
	src := "key " + canon.Serialize(relabeled, 3) + "id dia\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestGenomeLookup_ExternalArchiveIsRecanonicalizedOnLoad(t *testing.T) {
	flags := &cliFlags{genome: diaGenome, archivePath: externalArchiveWithDia(t)}
	var out, errOut bytes.Buffer
	code := execute(newTestContext(), flags, nil, &out, &errOut)
	require.Equal(t, exitRecognized, code)
	require.Equal(t, "dia\n", out.String())
}

func TestGenomeLookup_UnknownGenomeExitsOne(t *testing.T) {
	// A single self-loop forms a one-vertex net; no archive is loaded
	// here, so the lookup misses.
	flags := &cliFlags{genome: "1 1 1 1"}
	var out, errOut bytes.Buffer
	code := execute(newTestContext(), flags, nil, &out, &errOut)
	require.Equal(t, exitUnrecognized, code)
	require.Equal(t, "UNKNOWN\n", out.String())
}

func TestGenomeLookup_MalformedGenomeExitsInputError(t *testing.T) {
	flags := &cliFlags{genome: "not a genome"}
	var out, errOut bytes.Buffer
	code := execute(newTestContext(), flags, nil, &out, &errOut)
	require.Equal(t, exitInputError, code)
}

func TestExecute_NoArgsAndNoGenomeIsInputError(t *testing.T) {
	flags := &cliFlags{structureType: "auto", bondingMode: "auto"}
	var out, errOut bytes.Buffer
	code := execute(newTestContext(), flags, nil, &out, &errOut)
	require.Equal(t, exitInputError, code)
}

func TestExecute_SingleFileRecognizesNothingButRuns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rocksalt.cif")
	require.NoError(t, os.WriteFile(path, []byte(rocksaltCIF), 0o644))

	flags := &cliFlags{structureType: "auto", bondingMode: "guess"}
	var out, errOut bytes.Buffer
	code := execute(newTestContext(), flags, []string{path}, &out, &errOut)
	require.Equal(t, exitUnrecognized, code)
	require.Contains(t, out.String(), "UNKNOWN")
}
