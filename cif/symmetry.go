package cif

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/crystalnets-go/crystalnets/cell"
)

// ParseSymmetryOp parses one comma-separated symmetry_equiv_pos_as_xyz
// / space_group_symop_operation_xyz expression, e.g. "-x+1/2,y+1/2,-z",
// into a cell.SymmetryOp.
func ParseSymmetryOp(expr string) (cell.SymmetryOp, error) {
	parts := strings.Split(expr, ",")
	if len(parts) != 3 {
		return cell.SymmetryOp{}, fmt.Errorf("%w: %q", ErrMalformedSymmetryOp, expr)
	}

	var rot cell.IntMatrix3
	var trans [3]*big.Rat
	for i, p := range parts {
		coeff, constant, err := parseLinearExpr(p)
		if err != nil {
			return cell.SymmetryOp{}, fmt.Errorf("%w: %q: %v", ErrMalformedSymmetryOp, expr, err)
		}
		for j := 0; j < 3; j++ {
			if coeff[j].Denom().Cmp(big.NewInt(1)) != 0 {
				return cell.SymmetryOp{}, fmt.Errorf("%w: %q: non-integer rotation coefficient", ErrMalformedSymmetryOp, expr)
			}
			rot[i][j] = coeff[j].Num().Int64()
		}
		trans[i] = constant
	}
	return cell.SymmetryOp{Rot: rot, Trans: trans}, nil
}

// parseLinearExpr parses one component of a symmetry operator, such
// as "x-y+1/3", into its x/y/z coefficients and constant term.
func parseLinearExpr(s string) ([3]*big.Rat, *big.Rat, error) {
	coeff := [3]*big.Rat{big.NewRat(0, 1), big.NewRat(0, 1), big.NewRat(0, 1)}
	constant := big.NewRat(0, 1)

	s = strings.ToLower(strings.ReplaceAll(s, " ", ""))
	i := 0
	for i < len(s) {
		sign := int64(1)
		if s[i] == '+' {
			i++
		} else if s[i] == '-' {
			sign = -1
			i++
		}
		j := i
		for j < len(s) && s[j] != '+' && s[j] != '-' {
			j++
		}
		term := s[i:j]
		i = j
		if term == "" {
			continue
		}

		axis := -1
		switch {
		case strings.HasSuffix(term, "x"):
			axis = 0
		case strings.HasSuffix(term, "y"):
			axis = 1
		case strings.HasSuffix(term, "z"):
			axis = 2
		}
		if axis >= 0 {
			numPart := term[:len(term)-1]
			r := big.NewRat(sign, 1)
			if numPart != "" {
				parsed, err := parseFraction(numPart)
				if err != nil {
					return coeff, constant, err
				}
				if sign < 0 {
					parsed = new(big.Rat).Neg(parsed)
				}
				r = parsed
			}
			coeff[axis] = new(big.Rat).Add(coeff[axis], r)
			continue
		}

		r, err := parseFraction(term)
		if err != nil {
			return coeff, constant, err
		}
		if sign < 0 {
			r = new(big.Rat).Neg(r)
		}
		constant = new(big.Rat).Add(constant, r)
	}
	return coeff, constant, nil
}

func parseFraction(s string) (*big.Rat, error) {
	if idx := strings.IndexByte(s, '/'); idx >= 0 {
		num, err1 := strconv.ParseInt(s[:idx], 10, 64)
		den, err2 := strconv.ParseInt(s[idx+1:], 10, 64)
		if err1 != nil || err2 != nil || den == 0 {
			return nil, fmt.Errorf("bad fraction %q", s)
		}
		return big.NewRat(num, den), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("bad numeric term %q", s)
	}
	return new(big.Rat).SetFloat64(f), nil
}
