package chem

// ValenceMode selects between the default and MOF-widened valence
// bounds. MOF-mode bounds are heuristics for the looser coordination
// seen around metal-organic framework linkers, not hard chemical
// limits.
type ValenceMode int

const (
	// ValenceDefault is the non-MOF target table.
	ValenceDefault ValenceMode = iota
	// ValenceMOF widens O to 4 and C/N to 5 (lower bound unchanged).
	ValenceMOF
)

// ValenceRule is one row of the {element -> (min, max)} table
// sanitize.FixValence consults.
type ValenceRule struct {
	Min, Max int
}

// defaultRules is the non-MOF target table.
var defaultRules = map[string]ValenceRule{
	"H": {Min: 1, Max: 1},
	"O": {Min: 1, Max: 2},
	"C": {Min: 2, Max: 4},
	"N": {Min: 2, Max: 4},
}

// mofRules widens O to 4 and C/N to 5, lower bounds unchanged, to
// tolerate the higher apparent coordination MOF linker geometries
// produce.
var mofRules = map[string]ValenceRule{
	"H": {Min: 1, Max: 1},
	"O": {Min: 1, Max: 4},
	"C": {Min: 2, Max: 5},
	"N": {Min: 2, Max: 5},
}

// ValenceFor returns the target rule for symbol under mode. The
// second return is false when the element has no configured target
// (sanitize.FixValence then skips it, leaving degree unconstrained).
func ValenceFor(symbol string, mode ValenceMode) (ValenceRule, bool) {
	key := normalize(symbol)
	rules := defaultRules
	if mode == ValenceMOF {
		rules = mofRules
	}
	r, ok := rules[key]
	return r, ok
}
