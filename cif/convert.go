package cif

import (
	"fmt"
	"math"

	"github.com/crystalnets-go/crystalnets/cell"
)

// ToCell builds a cell.Cell and its labeled atoms from rec, converting
// cell_length_*/cell_angle_* into a lattice matrix and each symmetry
// operator string into a cell.SymmetryOp. Atoms missing
// atom_site_type_symbol have their element inferred from the leading
// letters of their label.
func ToCell(rec *Record) (*cell.Cell, []cell.Atom, error) {
	if rec.CellLengths == ([3]float64{}) || rec.CellAngles == ([3]float64{}) {
		return nil, nil, ErrMissingCellKeys
	}
	m := lengthsAnglesToMatrix(rec.CellLengths, rec.CellAngles)

	ops := make([]cell.SymmetryOp, 0, len(rec.SymmetryXYZ))
	for _, expr := range rec.SymmetryXYZ {
		op, err := ParseSymmetryOp(expr)
		if err != nil {
			return nil, nil, err
		}
		ops = append(ops, op)
	}

	c, err := cell.NewCell(m, ops, rec.IntTablesNumber)
	if err != nil {
		return nil, nil, err
	}

	atoms := make([]cell.Atom, 0, len(rec.Atoms))
	for _, a := range rec.Atoms {
		symbol := a.Symbol
		if symbol == "" {
			symbol = inferSymbol(a.Label)
		}
		occupancy := a.Occupancy
		if occupancy == 0 {
			occupancy = 1
		}
		atom, err := cell.NewAtom(symbol, a.Label, a.Fract, occupancy, "")
		if err != nil {
			return nil, nil, fmt.Errorf("cif: atom %q: %w", a.Label, err)
		}
		atoms = append(atoms, atom)
	}
	return c, atoms, nil
}

// lengthsAnglesToMatrix converts the six cell parameters into the
// lattice matrix convention cell.Matrix3 uses (columns are the
// lattice vectors a, b, c), placing a along x and b in the xy-plane.
func lengthsAnglesToMatrix(lengths, angles [3]float64) cell.Matrix3 {
	a, b, c := lengths[0], lengths[1], lengths[2]
	alpha := angles[0] * math.Pi / 180
	beta := angles[1] * math.Pi / 180
	gamma := angles[2] * math.Pi / 180

	cosA, cosB, cosG := math.Cos(alpha), math.Cos(beta), math.Cos(gamma)
	sinG := math.Sin(gamma)

	cx := c * cosB
	cy := c * (cosA - cosB*cosG) / sinG
	inner := 1 - cosA*cosA - cosB*cosB - cosG*cosG + 2*cosA*cosB*cosG
	if inner < 0 {
		inner = 0
	}
	cz := c * math.Sqrt(inner) / sinG

	return cell.Matrix3{
		{a, b * cosG, cx},
		{0, b * sinG, cy},
		{0, 0, cz},
	}
}

// inferSymbol extracts the element portion of a CIF atom label such
// as "Si1" or "O2A": an initial capital, optionally followed by one
// lowercase letter.
func inferSymbol(label string) string {
	if label == "" {
		return label
	}
	end := 1
	if len(label) > 1 && label[1] >= 'a' && label[1] <= 'z' {
		end = 2
	}
	return label[:end]
}
