package canon

import (
	"math"
	"math/big"
	"sort"
)

// ReduceToBasis collapses an arbitrary generating set of integer
// vectors down to a minimal generating set of the same lattice, via
// column-by-column Euclidean elimination (a row-style Hermite normal
// form reduction): for each coordinate axis in turn, repeatedly
// reduce the row with the second-smallest nonzero absolute entry in
// that column by the row with the smallest (row - q*smallest) until
// only one row retains a nonzero entry there. The returned rows are linearly
// independent and still generate the original lattice.
func ReduceToBasis(vectors [][3]int64) [][3]int64 {
	rows := make([][3]int64, len(vectors))
	copy(rows, vectors)

	pivotRow := 0
	for col := 0; col < 3; col++ {
		for {
			lo, hi := -1, -1
			for i := pivotRow; i < len(rows); i++ {
				if rows[i][col] == 0 {
					continue
				}
				if lo == -1 || absInt64(rows[i][col]) < absInt64(rows[lo][col]) {
					hi = lo
					lo = i
				} else if hi == -1 || absInt64(rows[i][col]) < absInt64(rows[hi][col]) {
					hi = i
				}
			}
			if lo == -1 || hi == -1 {
				break
			}
			q := rows[hi][col] / rows[lo][col]
			for c := 0; c < 3; c++ {
				rows[hi][c] -= q * rows[lo][c]
			}
		}
		// Exactly one (or zero) row now holds a nonzero entry in col
		// among rows[pivotRow:]; move it into pivot position.
		for i := pivotRow; i < len(rows); i++ {
			if rows[i][col] != 0 {
				rows[pivotRow], rows[i] = rows[i], rows[pivotRow]
				pivotRow++
				break
			}
		}
	}

	nonzero := make([][3]int64, 0, pivotRow)
	for i := 0; i < pivotRow; i++ {
		if rows[i] != ([3]int64{}) {
			nonzero = append(nonzero, rows[i])
		}
	}
	return nonzero
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// MinimizeBasis applies a Gauss/Minkowski-style pairwise size
// reduction to basis, iterating until no replacement shortens any
// vector, then fixes a deterministic presentation: ascending squared
// norm, and each vector's sign flipped so its first nonzero component
// is positive. This approximates the textbook "shortest vectors
// first, angles near 90 degrees" cell reduction without claiming a
// provably-optimal Minkowski reduction.
func MinimizeBasis(basis [][3]int64) [][3]int64 {
	b := make([][3]int64, len(basis))
	copy(b, basis)

	for iter := 0; iter < 50; iter++ {
		sortByNorm(b)
		changed := false
		for i := range b {
			for j := range b {
				if i == j {
					continue
				}
				ni := normSq(b[i])
				if ni == 0 {
					continue
				}
				t := int64(math.Round(float64(dot(b[i], b[j])) / float64(ni)))
				if t == 0 {
					continue
				}
				cand := sub3(b[j], scale3(b[i], t))
				if normSq(cand) < normSq(b[j]) {
					b[j] = cand
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	sortByNorm(b)
	for i := range b {
		b[i] = normalizeSign(b[i])
	}
	return b
}

func sortByNorm(b [][3]int64) {
	sort.Slice(b, func(i, j int) bool {
		ni, nj := normSq(b[i]), normSq(b[j])
		if ni != nj {
			return ni < nj
		}
		return lessLex(b[i], b[j])
	})
}

func lessLex(a, b [3]int64) bool {
	for k := 0; k < 3; k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}
	return false
}

func normalizeSign(v [3]int64) [3]int64 {
	for k := 0; k < 3; k++ {
		if v[k] != 0 {
			if v[k] < 0 {
				return scale3(v, -1)
			}
			return v
		}
	}
	return v
}

func dot(a, b [3]int64) int64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func normSq(a [3]int64) int64 { return dot(a, a) }

func sub3(a, b [3]int64) [3]int64 {
	return [3]int64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func scale3(a [3]int64, t int64) [3]int64 {
	return [3]int64{a[0] * t, a[1] * t, a[2] * t}
}

// ExpressInBasis solves v = sum(c_k * basis[k]) for the integer
// coefficient vector c, using exact big.Rat elimination over the
// (at most 3x3) system formed by basis's rows and returning ok=false
// if no exact integer solution exists (which would indicate v is not
// actually in the lattice basis spans — a bug upstream, not a
// recoverable case).
func ExpressInBasis(v [3]int64, basis [][3]int64) ([]int64, bool) {
	r := len(basis)
	if r == 0 {
		if v == ([3]int64{}) {
			return nil, true
		}
		return nil, false
	}

	// Solve the least-squares-exact normal equations G*c = rhs where
	// G[i][j] = basis[i] . basis[j] and rhs[i] = basis[i] . v. Since
	// basis spans the sublattice v is known to lie in, this system is
	// consistent and its solution is the unique coefficient vector.
	g := make([][]*big.Rat, r)
	rhs := make([]*big.Rat, r)
	for i := 0; i < r; i++ {
		g[i] = make([]*big.Rat, r)
		for j := 0; j < r; j++ {
			g[i][j] = new(big.Rat).SetInt64(dot(basis[i], basis[j]))
		}
		rhs[i] = new(big.Rat).SetInt64(dot(basis[i], v))
	}

	sol, ok := solveLinearSystem(g, rhs)
	if !ok {
		return nil, false
	}

	coeffs := make([]int64, r)
	for i, s := range sol {
		num := new(big.Int).Set(s.Num())
		den := s.Denom()
		if den.Cmp(big.NewInt(1)) != 0 {
			return nil, false
		}
		coeffs[i] = num.Int64()
	}
	return coeffs, true
}

// solveLinearSystem performs Gauss-Jordan elimination over big.Rat on
// the r x r system g*x = rhs, returning ok=false if g is singular.
func solveLinearSystem(g [][]*big.Rat, rhs []*big.Rat) ([]*big.Rat, bool) {
	n := len(g)
	aug := make([][]*big.Rat, n)
	for i := 0; i < n; i++ {
		aug[i] = make([]*big.Rat, n+1)
		copy(aug[i], g[i])
		aug[i][n] = rhs[i]
	}

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if aug[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return nil, false
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]
		pivotVal := new(big.Rat).Set(aug[col][col])
		for c := col; c <= n; c++ {
			aug[col][c] = new(big.Rat).Quo(aug[col][c], pivotVal)
		}
		for r := 0; r < n; r++ {
			if r == col || aug[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(aug[r][col])
			for c := col; c <= n; c++ {
				tmp := new(big.Rat).Mul(factor, aug[col][c])
				aug[r][c] = new(big.Rat).Sub(aug[r][c], tmp)
			}
		}
	}

	out := make([]*big.Rat, n)
	for i := 0; i < n; i++ {
		out[i] = aug[i][n]
	}
	return out, true
}
