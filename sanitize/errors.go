package sanitize

import "errors"

// ErrIterationCapExceeded indicates a cleanup pass did not converge
// within its bounded iteration budget — a defensive backstop; these
// passes terminate on well-formed input, so hitting this is a bug
// report, not an expected outcome.
var ErrIterationCapExceeded = errors.New("sanitize: iteration cap exceeded")
