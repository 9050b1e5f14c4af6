package archive

import "errors"

// ErrConflict is returned by Insert when the id or genome already maps
// to something else and override was not requested.
var ErrConflict = errors.New("archive: conflicting entry")

// ErrMalformedRecord is returned by Load for a ".arc" file that does
// not follow the "key <genome>" / "id <identifier>" record grammar.
var ErrMalformedRecord = errors.New("archive: malformed record")

// ErrNotFound is a sentinel for callers that prefer an error over the
// boolean that Lookup and ReverseLookup return; no package in this
// module returns it (batch, cmd and engine use the boolean form).
var ErrNotFound = errors.New("archive: entry not found")
