package sanitize

import (
	"math"

	"github.com/crystalnets-go/crystalnets/cell"
	"github.com/crystalnets-go/crystalnets/core"
)

// vertexPosition returns the Cartesian position of v's cell-0
// representative shifted by offset, i.e. M*(frac(v)+offset).
func vertexPosition(m cell.Matrix3, atoms []cell.Atom, v int, offset core.Offset) [3]float64 {
	p := atoms[v].Frac
	shifted := [3]float64{
		p[0] + float64(offset[0]),
		p[1] + float64(offset[1]),
		p[2] + float64(offset[2]),
	}
	return m.MulVec(shifted)
}

// edgeLength returns the Cartesian bond length of e.
func edgeLength(m cell.Matrix3, atoms []cell.Atom, e core.Edge) float64 {
	origin := m.MulVec(atoms[e.U].Frac)
	far := vertexPosition(m, atoms, e.V, e.Offset)
	return dist(origin, far)
}

func dist(a, b [3]float64) float64 {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// angleDegrees returns the angle in degrees between the vectors from
// vertex v to its two (possibly periodic) neighbors n1 and n2.
func angleDegrees(m cell.Matrix3, atoms []cell.Atom, v int, n1, n2 core.Neighbor) float64 {
	origin := m.MulVec(atoms[v].Frac)
	p1 := vertexPosition(m, atoms, n1.To, n1.Offset)
	p2 := vertexPosition(m, atoms, n2.To, n2.Offset)

	u1 := [3]float64{p1[0] - origin[0], p1[1] - origin[1], p1[2] - origin[2]}
	u2 := [3]float64{p2[0] - origin[0], p2[1] - origin[1], p2[2] - origin[2]}

	dot := u1[0]*u2[0] + u1[1]*u2[1] + u1[2]*u2[2]
	n1Len := math.Sqrt(u1[0]*u1[0] + u1[1]*u1[1] + u1[2]*u1[2])
	n2Len := math.Sqrt(u2[0]*u2[0] + u2[1]*u2[1] + u2[2]*u2[2])
	if n1Len == 0 || n2Len == 0 {
		return 0
	}
	cosTheta := dot / (n1Len * n2Len)
	cosTheta = math.Max(-1, math.Min(1, cosTheta))
	return math.Acos(cosTheta) * 180 / math.Pi
}
