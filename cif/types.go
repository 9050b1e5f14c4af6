package cif

// Record is the raw extraction from one CIF data block: the cell,
// symmetry, atom-site, and optional bond keys this package reads,
// nothing more.
type Record struct {
	CellLengths     [3]float64 // a, b, c (angstrom)
	CellAngles      [3]float64 // alpha, beta, gamma (degrees)
	HallSymbol      string
	HMSymbol        string
	IntTablesNumber int
	SymmetryXYZ     []string
	Atoms           []AtomRecord
	Bonds           []BondRecord
}

// AtomRecord is one atom_site_* loop row.
type AtomRecord struct {
	Label     string
	Symbol    string // atom_site_type_symbol, may be empty
	Fract     [3]float64
	Occupancy float64 // 0 means "unspecified"
}

// BondRecord is one geom_bond_* loop row (optional in the input).
type BondRecord struct {
	Atom1, Atom2 string
	Distance     float64
}
