package cell

import (
	"fmt"
	"math"
	"math/big"
)

// Matrix3 is a 3x3 real matrix whose columns are the lattice basis
// vectors.
type Matrix3 [3][3]float64

// Det returns the determinant of m.
func (m Matrix3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// MulVec returns M*v.
func (m Matrix3) MulVec(v [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return r
}

// IntMatrix3 is an integer 3x3 matrix, used for symmetry rotations and
// for basis-change/axis-permutation matrices in canonicalization.
type IntMatrix3 [3][3]int64

// Identity is the 3x3 integer identity matrix.
var Identity = IntMatrix3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

// IsIdentity reports whether m is the identity matrix.
func (m IntMatrix3) IsIdentity() bool { return m == Identity }

// SymmetryOp is a crystallographic equivalent position: an integer
// rotation/reflection matrix plus a rational translation vector.
type SymmetryOp struct {
	Rot   IntMatrix3
	Trans [3]*big.Rat
}

// IsIdentity reports whether op is the identity operation (identity
// rotation, zero translation).
func (op SymmetryOp) IsIdentity() bool {
	if !op.Rot.IsIdentity() {
		return false
	}
	for _, t := range op.Trans {
		if t != nil && t.Sign() != 0 {
			return false
		}
	}
	return true
}

// Apply returns op applied to fractional position p: Rot*p + Trans,
// reduced to [0,1) per component.
func (op SymmetryOp) Apply(p [3]float64) [3]float64 {
	var r [3]float64
	for i := 0; i < 3; i++ {
		sum := 0.0
		for j := 0; j < 3; j++ {
			sum += float64(op.Rot[i][j]) * p[j]
		}
		if op.Trans[i] != nil {
			t, _ := op.Trans[i].Float64()
			sum += t
		}
		r[i] = sum
	}
	return NormalizeFrac(r)
}

// Cell is a unit cell: lattice matrix, symmetry equivalent positions
// (identity implicit and excluded), and a Hall number.
type Cell struct {
	M           Matrix3
	Equivalents []SymmetryOp
	HallNumber  int
}

// NewCell validates det(M) > 0 and strips any explicit identity
// operation from equivalents: the identity is always implicit, so
// carrying it explicitly would duplicate every base atom on expansion.
func NewCell(m Matrix3, equivalents []SymmetryOp, hall int) (*Cell, error) {
	if m.Det() <= 0 {
		return nil, fmt.Errorf("det=%g: %w", m.Det(), ErrNonPositiveVolume)
	}

	filtered := make([]SymmetryOp, 0, len(equivalents))
	for _, op := range equivalents {
		if op.IsIdentity() {
			continue
		}
		filtered = append(filtered, op)
	}

	return &Cell{M: m, Equivalents: filtered, HallNumber: hall}, nil
}

// Atom is a labeled atomic position inside the unit cell.
type Atom struct {
	Symbol    string
	Label     string // atom_site_label, e.g. for bond-expansion lookups
	Frac      [3]float64
	Occupancy float64 // 0 means "unspecified"; otherwise in (0,1]
	Residue   string
}

// NewAtom validates and normalizes an atom record: symbol must be
// non-empty, occupancy (if supplied, i.e. nonzero) must lie in (0,1],
// and the fractional position is normalized into [0,1)^3.
func NewAtom(symbol, label string, frac [3]float64, occupancy float64, residue string) (Atom, error) {
	if symbol == "" {
		return Atom{}, ErrEmptySymbol
	}
	if occupancy != 0 && (occupancy <= 0 || occupancy > 1) {
		return Atom{}, fmt.Errorf("occupancy=%g: %w", occupancy, ErrInvalidOccupancy)
	}
	return Atom{
		Symbol:    symbol,
		Label:     label,
		Frac:      NormalizeFrac(frac),
		Occupancy: occupancy,
		Residue:   residue,
	}, nil
}

// NormalizeFrac wraps each component of p into [0,1).
func NormalizeFrac(p [3]float64) [3]float64 {
	var r [3]float64
	for i, c := range p {
		f := math.Mod(c, 1.0)
		if f < 0 {
			f += 1.0
		}
		// Guard against floating-point residue landing exactly at 1.0.
		if f >= 1.0 {
			f = 0.0
		}
		r[i] = f
	}
	return r
}

// CartesianDistance returns the Euclidean distance between fractional
// positions p and q, both already placed in the same image (no
// minimum-image search), under lattice m.
func CartesianDistance(m Matrix3, p, q [3]float64) float64 {
	d := [3]float64{p[0] - q[0], p[1] - q[1], p[2] - q[2]}
	c := m.MulVec(d)
	return math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
}

// MinImageDistance returns the minimum-image Euclidean distance
// between fractional positions p and q under lattice m, searching the
// 27 neighboring images k in {-1,0,1}^3.
func MinImageDistance(m Matrix3, p, q [3]float64) float64 {
	best := math.Inf(1)
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				shifted := [3]float64{q[0] + float64(dx), q[1] + float64(dy), q[2] + float64(dz)}
				d := CartesianDistance(m, p, shifted)
				if d < best {
					best = d
				}
			}
		}
	}
	return best
}
