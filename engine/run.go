package engine

import (
	"fmt"

	"github.com/crystalnets-go/crystalnets/archive"
	"github.com/crystalnets-go/crystalnets/canon"
	"github.com/crystalnets-go/crystalnets/chem"
	"github.com/crystalnets-go/crystalnets/cif"
	"github.com/crystalnets-go/crystalnets/core"
	"github.com/crystalnets-go/crystalnets/ingest"
	"github.com/crystalnets-go/crystalnets/sanitize"
	"go.uber.org/zap"
)

// Result is one recognized (or unrecognized) net, one per connected
// component of the sanitized structure graph.
type Result struct {
	Genome     string
	Dim        int
	Identifier string
	Unstable   bool
	Warnings   []string
}

// unidentified is the identifier Run reports for a genome absent from
// the archive: an unrecognized net is not an error, only a miss.
const unidentified = "UNKNOWN"

// Run executes the full pipeline from a parsed CIF record to one
// Result per connected component: cell/symmetry expansion, collision
// pruning, bond resolution, sanitation, canonicalization, and archive
// lookup.
func Run(rec *cif.Record, bonds []ingest.InputBond, arc *archive.Archive, opts Options) ([]Result, error) {
	logger := opts.logger()

	c, atoms, err := cif.ToCell(rec)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}

	if opts.StructureType == StructureCluster {
		for _, a := range atoms {
			if a.Residue == "" {
				return nil, ErrResidueAssignment
			}
		}
	}

	for _, a := range atoms {
		if _, err := chem.Lookup(a.Symbol); err != nil {
			return nil, fmt.Errorf("%w: atom %q: %v", ErrMissingAtomInformation, a.Label, err)
		}
	}

	expanded := ingest.ExpandSymmetry(c, atoms)
	bondOpts := opts.bondOptions()
	removed := ingest.PruneCollisions(c.M, expanded, bondOpts.CollisionRadius)
	if len(removed) > 0 {
		logger.Debug("pruned colliding atoms", zap.Int("count", len(removed)))
	}
	pruned := ingest.RemoveIndices(expanded, removed)

	var candidates []ingest.CandidateEdge
	switch opts.BondingMode {
	case ingest.BondingInput:
		if len(bonds) == 0 {
			return nil, fmt.Errorf("engine: %w", ingest.ErrBondingUnavailable)
		}
		candidates, err = ingest.ExpandBonds(c, pruned, bonds)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
	default:
		candidates = ingest.GuessBonds(c.M, pruned, bondOpts)
	}

	g := core.NewGraph(len(pruned), 3)
	for _, e := range candidates {
		_ = g.AddEdge(e.U, e.V, e.Offset)
	}

	valenceMode := chem.ValenceDefault
	var homoatomic []string
	if opts.StructureType == StructureMOF {
		valenceMode = chem.ValenceMOF
		homoatomic = []string{"O"}
	}

	cfg := sanitize.Config{
		ValenceMode:       valenceMode,
		BondingMode:       opts.BondingMode,
		HomoatomicTargets: homoatomic,
		BondOptions:       bondOpts,
	}
	cleaned, report, err := sanitize.Run(g, c.M, pruned, cfg)
	if err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	if report.Restarts > 0 {
		logger.Info("sanitation restarted bond guessing", zap.Int("restarts", report.Restarts))
	}

	var results []Result
	for _, sub := range components(cleaned) {
		if sub.VertexCount() == 0 {
			continue
		}

		genomeResult, err := canon.Canonicalize(sub)
		if err != nil {
			return nil, fmt.Errorf("engine: %w", err)
		}
		if genomeResult.Dim == 0 {
			return nil, ErrNonPeriodic
		}

		id := unidentified
		if found, ok := arc.Lookup(genomeResult.Genome); ok {
			id = found
		}

		results = append(results, Result{
			Genome:     genomeResult.Genome,
			Dim:        genomeResult.Dim,
			Identifier: id,
			Unstable:   genomeResult.Unstable,
			Warnings:   append([]string(nil), report.Warnings...),
		})
	}

	return results, nil
}
