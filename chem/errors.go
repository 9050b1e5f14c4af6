package chem

import "errors"

// ErrUnknownElement indicates a symbol absent from the element table.
// This surfaces as a MissingAtomInformation condition one layer up,
// in the ingest/engine packages.
var ErrUnknownElement = errors.New("chem: unknown element symbol")
