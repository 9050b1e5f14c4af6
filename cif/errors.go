package cif

import "errors"

// ErrMissingCellKeys is returned when a record lacks the minimum keys
// a cell requires: the three cell lengths and three cell angles.
var ErrMissingCellKeys = errors.New("cif: missing cell_length_*/cell_angle_* keys")

// ErrMalformedSymmetryOp is returned when a symmetry_equiv_pos_as_xyz
// (or space_group_symop_operation_xyz) string does not parse as a
// three-component rotation+translation expression.
var ErrMalformedSymmetryOp = errors.New("cif: malformed symmetry operator")
