package sanitize

import (
	"fmt"

	"github.com/crystalnets-go/crystalnets/cell"
	"github.com/crystalnets-go/crystalnets/chem"
	"github.com/crystalnets-go/crystalnets/core"
	"github.com/crystalnets-go/crystalnets/ingest"
)

// maxAutoRestarts bounds how many times SanityCheck may trigger a
// bond-guess restart in Auto mode, guarding against pathological
// inputs that would otherwise oscillate forever.
const maxAutoRestarts = 4

// Config selects the sanitation behavior; it is the per-run
// counterpart of the element-indexed tables in package chem.
type Config struct {
	ValenceMode       chem.ValenceMode
	BondingMode       ingest.BondingMode
	HomoatomicTargets []string
	BondOptions       ingest.Options
}

// Report aggregates the warnings every pass can raise; sanitation
// warnings never abort the pipeline, they only accumulate here.
type Report struct {
	Warnings            []string
	InvalidValenceAtoms []int
	Restarts            int
}

// Run executes the five sanitation passes in the mandated order
// (remove-atom-on-bond, remove-triangles, fix-valence, sanity-check,
// remove-homoatomic), restarting from a fresh bond guess when
// sanity-check deletes an edge and BondingMode is Auto.
func Run(g *core.Graph, m cell.Matrix3, atoms []cell.Atom, cfg Config) (*core.Graph, *Report, error) {
	report := &Report{}
	cur := g

	for restart := 0; ; restart++ {
		cleaned, err := RemoveAtomOnBond(cur, m, atoms)
		if err != nil {
			return nil, report, fmt.Errorf("remove-atom-on-bond: %w", err)
		}

		cleaned = RemoveTriangles(cleaned, m, atoms)

		var invalid []int
		cleaned, invalid = FixValence(cleaned, m, atoms, cfg.ValenceMode, true)
		report.InvalidValenceAtoms = invalid
		if len(invalid) > 0 {
			report.Warnings = append(report.Warnings, fmt.Sprintf("%d atom(s) below minimum valence", len(invalid)))
		}

		var deletedAny bool
		cleaned, deletedAny = SanityCheck(cleaned, m, atoms)
		if deletedAny {
			report.Warnings = append(report.Warnings, "sanity-check deleted one or more suspicious bonds")
		}

		if deletedAny && cfg.BondingMode == ingest.BondingAuto && restart < maxAutoRestarts {
			report.Restarts++
			guessed := ingest.GuessBonds(m, atoms, cfg.BondOptions)
			fresh := core.NewGraph(len(atoms), g.Dim())
			for _, e := range guessed {
				_ = fresh.AddEdge(e.U, e.V, e.Offset)
			}
			cur = fresh
			continue
		}

		cleaned = RemoveHomoatomic(cleaned, atoms, cfg.HomoatomicTargets)
		return cleaned, report, nil
	}
}
