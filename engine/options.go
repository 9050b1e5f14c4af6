package engine

import (
	"github.com/crystalnets-go/crystalnets/ingest"
	"go.uber.org/zap"
)

// StructureType selects how the input's atoms are interpreted prior
// to bond resolution, mirroring the CLI's "-c <structure-type>" flag.
type StructureType string

const (
	StructureAuto    StructureType = "auto"
	StructureMOF     StructureType = "mof"
	StructureCluster StructureType = "cluster"
	StructureZeolite StructureType = "zeolite"
	StructureGuess   StructureType = "guess"
	StructureAtom    StructureType = "atom"
)

// Options configures one Run invocation. cmd/crystalnets populates it
// from cobra flags and a viper-loaded config file.
type Options struct {
	StructureType     StructureType
	BondingMode       ingest.BondingMode
	MetalWidening     bool
	CutoffCoefficient float64
	ArchivePath       string
	Verbose           bool
	Logger            *zap.Logger
}

// DefaultOptions returns the baseline defaults: auto structure
// type, auto bonding, and the resolved c0=1.0 cutoff coefficient.
func DefaultOptions() Options {
	return Options{
		StructureType:     StructureAuto,
		BondingMode:       ingest.BondingAuto,
		CutoffCoefficient: ingest.DefaultOptions().CutoffCoefficient,
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

// bondOptions derives the ingest.Options these engine Options imply:
// MOF structure type widens metal cutoffs even if the caller didn't
// separately ask for it.
func (o Options) bondOptions() ingest.Options {
	defaults := ingest.DefaultOptions()
	coeff := o.CutoffCoefficient
	if coeff == 0 {
		coeff = defaults.CutoffCoefficient
	}
	return ingest.Options{
		CutoffCoefficient: coeff,
		MetalWidening:     o.MetalWidening || o.StructureType == StructureMOF,
		CollisionRadius:   defaults.CollisionRadius,
	}
}
