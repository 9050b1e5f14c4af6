package batch

import "github.com/crystalnets-go/crystalnets/engine"

// Result is one input file's outcome: either a list of engine results
// or an error, never both, keyed back to the input path that produced
// it. Isolating failures per path is what lets a batch of many
// structures survive one malformed input.
type Result struct {
	Path          string
	CorrelationID string
	Results       []engine.Result
	Err           error
}
