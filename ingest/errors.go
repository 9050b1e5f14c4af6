package ingest

import "errors"

var (
	// ErrBondingUnavailable indicates BondingInput was requested but no
	// input bonds were supplied.
	ErrBondingUnavailable = errors.New("ingest: bonding mode is Input but no bonds were specified")

	// ErrUnknownLabel indicates an input bond references an atom label
	// absent from the base atom list.
	ErrUnknownLabel = errors.New("ingest: bond references unknown atom label")
)
