package chem

import (
	"fmt"
	"strings"
)

// Element is one row of the read-only periodic table data consumed by
// bond guessing and valence fixing.
type Element struct {
	Symbol       string
	AtomicNumber int
	// VdWRadius is the van der Waals radius in angstrom (Bondi/Alvarez
	// scale), used as-is by ingest.GuessBonds.
	VdWRadius float64
	// Metal marks elements whose bonding cutoff is widened 1.5x when
	// MetalWidening is enabled.
	Metal bool
}

// table is the element data, keyed by symbol. Atomic numbers follow
// the ELEM_* enumeration in cx-luo-go-chem/molecule/elements.go; van
// der Waals radii and the metal flag are the columns that table does
// not carry but bond guessing and valence fixing require.
var table = map[string]Element{
	"H":  {"H", 1, 1.20, false},
	"He": {"He", 2, 1.40, false},
	"Li": {"Li", 3, 1.82, true},
	"Be": {"Be", 4, 1.53, true},
	"B":  {"B", 5, 1.92, false},
	"C":  {"C", 6, 1.70, false},
	"N":  {"N", 7, 1.55, false},
	"O":  {"O", 8, 1.52, false},
	"F":  {"F", 9, 1.47, false},
	"Ne": {"Ne", 10, 1.54, false},
	"Na": {"Na", 11, 2.27, true},
	"Mg": {"Mg", 12, 1.73, true},
	"Al": {"Al", 13, 1.84, true},
	"Si": {"Si", 14, 2.10, false},
	"P":  {"P", 15, 1.80, false},
	"S":  {"S", 16, 1.80, false},
	"Cl": {"Cl", 17, 1.75, false},
	"Ar": {"Ar", 18, 1.88, false},
	"K":  {"K", 19, 2.75, true},
	"Ca": {"Ca", 20, 2.31, true},
	"Sc": {"Sc", 21, 2.15, true},
	"Ti": {"Ti", 22, 2.11, true},
	"V":  {"V", 23, 2.07, true},
	"Cr": {"Cr", 24, 2.06, true},
	"Mn": {"Mn", 25, 2.05, true},
	"Fe": {"Fe", 26, 2.04, true},
	"Co": {"Co", 27, 2.00, true},
	"Ni": {"Ni", 28, 1.97, true},
	"Cu": {"Cu", 29, 1.96, true},
	"Zn": {"Zn", 30, 2.01, true},
	"Ga": {"Ga", 31, 1.87, true},
	"Ge": {"Ge", 32, 2.11, false},
	"As": {"As", 33, 1.85, false},
	"Se": {"Se", 34, 1.90, false},
	"Br": {"Br", 35, 1.85, false},
	"Kr": {"Kr", 36, 2.02, false},
	"Rb": {"Rb", 37, 3.03, true},
	"Sr": {"Sr", 38, 2.49, true},
	"Y":  {"Y", 39, 2.40, true},
	"Zr": {"Zr", 40, 2.23, true},
	"Nb": {"Nb", 41, 2.18, true},
	"Mo": {"Mo", 42, 2.17, true},
	"Ru": {"Ru", 44, 2.07, true},
	"Rh": {"Rh", 45, 1.95, true},
	"Pd": {"Pd", 46, 2.02, true},
	"Ag": {"Ag", 47, 2.03, true},
	"Cd": {"Cd", 48, 2.18, true},
	"In": {"In", 49, 1.93, true},
	"Sn": {"Sn", 50, 2.17, true},
	"Sb": {"Sb", 51, 2.06, false},
	"Te": {"Te", 52, 2.06, false},
	"I":  {"I", 53, 1.98, false},
	"Xe": {"Xe", 54, 2.16, false},
	"Cs": {"Cs", 55, 3.43, true},
	"Ba": {"Ba", 56, 2.68, true},
	"La": {"La", 57, 2.43, true},
	"Ce": {"Ce", 58, 2.42, true},
	"Gd": {"Gd", 64, 2.36, true},
	"Hf": {"Hf", 72, 2.23, true},
	"Ta": {"Ta", 73, 2.22, true},
	"W":  {"W", 74, 2.18, true},
	"Re": {"Re", 75, 2.16, true},
	"Os": {"Os", 76, 2.16, true},
	"Ir": {"Ir", 77, 2.13, true},
	"Pt": {"Pt", 78, 2.13, true},
	"Au": {"Au", 79, 2.14, true},
	"Hg": {"Hg", 80, 2.23, true},
	"Tl": {"Tl", 81, 1.96, true},
	"Pb": {"Pb", 82, 2.02, true},
	"Bi": {"Bi", 83, 2.07, true},
	"U":  {"U", 92, 1.86, true},
}

// Lookup returns the element row for symbol (case-normalized: first
// letter upper, rest lower). Returns ErrUnknownElement if absent.
func Lookup(symbol string) (Element, error) {
	key := normalize(symbol)
	e, ok := table[key]
	if !ok {
		return Element{}, fmt.Errorf("%q: %w", symbol, ErrUnknownElement)
	}
	return e, nil
}

// IsMetal reports whether symbol names a metal, used to decide the
// metal-widening rule. Unknown symbols are treated as non-metal.
func IsMetal(symbol string) bool {
	e, err := Lookup(symbol)
	return err == nil && e.Metal
}

// VdWRadius returns the van der Waals radius in angstrom, or
// ErrUnknownElement if symbol is not in the table.
func VdWRadius(symbol string) (float64, error) {
	e, err := Lookup(symbol)
	if err != nil {
		return 0, err
	}
	return e.VdWRadius, nil
}

func normalize(symbol string) string {
	s := strings.TrimSpace(symbol)
	if s == "" {
		return s
	}
	if len(s) == 1 {
		return strings.ToUpper(s)
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
