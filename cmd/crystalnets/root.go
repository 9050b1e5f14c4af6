package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/crystalnets-go/crystalnets/archive"
	"github.com/crystalnets-go/crystalnets/canon"
	"github.com/crystalnets-go/crystalnets/cif"
	"github.com/crystalnets-go/crystalnets/engine"
	"github.com/crystalnets-go/crystalnets/ingest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Exit codes: 0 recognized, 1 computed-but-unrecognized, >1 input error.
const (
	exitRecognized   = 0
	exitUnrecognized = 1
	exitInputError   = 2
)

type cliFlags struct {
	genome        string
	archivePath   string
	structureType string
	bondingMode   string
	verbose       bool
	concurrency   int
}

// newRootCommand builds the crystalnets command tree.
func newRootCommand(flags *cliFlags, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "CrystalNets [flags] <file>...",
		Short:         "Identify the periodic net topology of a crystal structure",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			code := execute(cmd.Context(), flags, args, stdout, stderr)
			return &exitError{code: code}
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetUsageTemplate(usageTemplate)

	cmd.Flags().StringVarP(&flags.genome, "genome", "g", "", "look up a genome string directly instead of reading a file")
	cmd.Flags().StringVarP(&flags.archivePath, "archive", "a", "", "override the default topology archive path")
	cmd.Flags().StringVarP(&flags.structureType, "structure-type", "c", "", "one of auto, mof, cluster, zeolite, guess, atom")
	cmd.Flags().StringVar(&flags.bondingMode, "bonding", "auto", "one of auto, guess, input")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "emit sanitation warnings and progress to stderr")
	cmd.Flags().IntVar(&flags.concurrency, "concurrency", 1, "worker pool size when more than one file is given")

	return cmd
}

// usageTemplate rewrites cobra's default "Usage:" heading to the
// literal "usage: CrystalNets" prefix this CLI's --help output uses.
const usageTemplate = `usage: {{.UseLine}}

{{.Short}}

Flags:
{{.LocalFlags.FlagUsages}}`

// exitError carries a process exit code back through cobra's
// RunE/Execute without cobra printing a second "Error:" line for
// conditions this command has already reported itself.
type exitError struct{ code int }

func (e *exitError) Error() string { return fmt.Sprintf("exit %d", e.code) }

func run(args []string) int {
	flags := &cliFlags{}
	initViper()

	cmd := newRootCommand(flags, os.Stdout, os.Stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		var ee *exitError
		if asExitError(err, &ee) {
			return ee.code
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitInputError
	}
	return exitRecognized
}

func asExitError(err error, target **exitError) bool {
	if ee, ok := err.(*exitError); ok {
		*target = ee
		return true
	}
	return false
}

func initViper() {
	viper.SetEnvPrefix("CRYSTALNETS")
	viper.BindEnv("archive")
	viper.BindEnv("structure_type")
	viper.SetConfigName("crystalnets")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/crystalnets")
	_ = viper.ReadInConfig() // absence is not an error; defaults/flags still apply
}

// execute runs one invocation (genome lookup, single file, or a batch
// of files) and returns the process exit code.
func execute(ctx context.Context, flags *cliFlags, args []string, stdout, stderr io.Writer) int {
	logger := buildLogger(flags.verbose)
	defer logger.Sync()

	archivePath := resolveArchivePath(flags.archivePath)
	arc, err := loadArchive(archivePath)
	if err != nil {
		fmt.Fprintf(stderr, "error: loading archive %q: %v\n", archivePath, err)
		return exitInputError
	}

	if flags.genome != "" {
		return runGenomeLookup(flags.genome, arc, stdout, stderr)
	}

	if len(args) == 0 {
		fmt.Fprintln(stderr, "error: provide a file path or -g <genome>")
		return exitInputError
	}

	opts, err := buildOptions(flags, logger)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitInputError
	}

	if len(args) == 1 {
		return runSingleFile(args[0], arc, opts, stdout, stderr)
	}
	return runBatch(ctx, args, arc, opts, flags.concurrency, stdout, stderr)
}

func resolveArchivePath(override string) string {
	if override != "" {
		return override
	}
	if v := viper.GetString("archive"); v != "" {
		return v
	}
	return "crystalnets.arc"
}

func loadArchive(path string) (*archive.Archive, error) {
	if _, err := os.Stat(path); err != nil {
		return archive.New(), nil
	}
	arc, err := archive.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if arc.IsExternal() {
		if err := arc.Recanonicalize(recanonicalizeGenome); err != nil {
			return nil, fmt.Errorf("recanonicalizing external archive %q: %w", path, err)
		}
	}
	return arc, nil
}

// recanonicalizeGenome parses a (possibly non-canonical) genome string
// and re-emits it in this program's canonical convention, used to
// bring an external archive's keys into a form that will actually
// match genomes this program computes.
func recanonicalizeGenome(genome string) (string, error) {
	g, _, err := canon.Parse(genome)
	if err != nil {
		return "", err
	}
	result, err := canon.Canonicalize(g)
	if err != nil {
		return "", err
	}
	return result.Genome, nil
}

func buildLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	cfg := zap.NewDevelopmentConfig()
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func buildOptions(flags *cliFlags, logger *zap.Logger) (engine.Options, error) {
	opts := engine.DefaultOptions()
	opts.Logger = logger
	opts.Verbose = flags.verbose

	st := flags.structureType
	if st == "" {
		st = viper.GetString("structure_type")
	}
	switch st {
	case "", "auto":
		opts.StructureType = engine.StructureAuto
	case "mof":
		opts.StructureType = engine.StructureMOF
	case "cluster":
		opts.StructureType = engine.StructureCluster
	case "zeolite":
		opts.StructureType = engine.StructureZeolite
	case "guess":
		opts.StructureType = engine.StructureGuess
	case "atom":
		opts.StructureType = engine.StructureAtom
	default:
		return opts, fmt.Errorf("unknown structure type %q", st)
	}

	switch flags.bondingMode {
	case "", "auto":
		opts.BondingMode = ingest.BondingAuto
	case "guess":
		opts.BondingMode = ingest.BondingGuess
	case "input":
		opts.BondingMode = ingest.BondingInput
	default:
		return opts, fmt.Errorf("unknown bonding mode %q", flags.bondingMode)
	}

	return opts, nil
}

func runGenomeLookup(genome string, arc *archive.Archive, stdout, stderr io.Writer) int {
	g, dim, err := canon.Parse(genome)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitInputError
	}
	_ = dim

	result, err := canon.Canonicalize(g)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitInputError
	}

	id, ok := arc.Lookup(result.Genome)
	if !ok {
		fmt.Fprintln(stdout, "UNKNOWN")
		return exitUnrecognized
	}
	fmt.Fprintln(stdout, id)
	return exitRecognized
}

func runSingleFile(path string, arc *archive.Archive, opts engine.Options, stdout, stderr io.Writer) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitInputError
	}
	defer f.Close()

	rec, err := cif.NewReader().Parse(f)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitInputError
	}

	var bonds []ingest.InputBond
	for _, b := range rec.Bonds {
		bonds = append(bonds, ingest.InputBond{LabelA: b.Atom1, LabelB: b.Atom2, Distance: b.Distance})
	}

	results, err := engine.Run(rec, bonds, arc, opts)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitInputError
	}

	return printResults(results, stdout)
}

// printResults writes one identifier per subnet, composite result
// last when the structure yields more than one, and derives the
// overall exit code.
func printResults(results []engine.Result, stdout io.Writer) int {
	if len(results) == 0 {
		fmt.Fprintln(stdout, "UNKNOWN")
		return exitUnrecognized
	}

	allRecognized := true
	for _, r := range results {
		fmt.Fprintln(stdout, r.Identifier)
		if r.Identifier == "UNKNOWN" {
			allRecognized = false
		}
	}

	if len(results) > 1 {
		composite := composeIdentifiers(results)
		fmt.Fprintln(stdout, composite)
		if composite == "UNKNOWN" {
			allRecognized = false
		}
	}

	if allRecognized {
		return exitRecognized
	}
	return exitUnrecognized
}

func composeIdentifiers(results []engine.Result) string {
	for _, r := range results {
		if r.Identifier == "UNKNOWN" {
			return "UNKNOWN"
		}
	}
	out := results[0].Identifier
	for _, r := range results[1:] {
		out += ", " + r.Identifier
	}
	return out
}
