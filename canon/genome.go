package canon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/crystalnets-go/crystalnets/core"
)

// Serialize renders g (already reduced to dim-periodic and canonically
// labeled) as a genome string: the dimension, then the sorted
// direct-form edge list, each edge as "u v o1 ... oD" with vertices
// numbered from 1, all whitespace-separated, newline-terminated. There
// is no separate vertex-count field; a reader recovers it from the
// highest vertex label an edge actually references, with the
// zero-edge graph (a single isolated vertex) written as the bare
// dimension digit.
func Serialize(g *core.Graph, dim int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d", dim)
	for _, e := range g.Edges() {
		fmt.Fprintf(&b, " %d %d", e.U+1, e.V+1)
		for k := 0; k < dim; k++ {
			fmt.Fprintf(&b, " %d", e.Offset[k])
		}
	}
	b.WriteByte('\n')
	return b.String()
}

// Parse reads a genome string back into a periodic graph and its
// dimension. Vertices are 1-based on the wire and 0-based in the
// returned graph. It is the left inverse of Serialize: Parse(Serialize
// (g, dim)) reconstructs a graph isomorphic to g by construction.
func Parse(s string) (*core.Graph, int, error) {
	fields := strings.Fields(s)
	if len(fields) < 1 {
		return nil, 0, ErrMalformedGenome
	}

	nums := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedGenome, f)
		}
		nums[i] = v
	}

	dim := int(nums[0])
	if dim < 0 || dim > core.MaxDim {
		return nil, 0, ErrMalformedGenome
	}

	rest := nums[1:]
	stride := 2 + dim
	if len(rest)%stride != 0 {
		return nil, 0, ErrMalformedGenome
	}
	numEdges := len(rest) / stride

	n := 1
	for i := 0; i < numEdges; i++ {
		u := rest[i*stride]
		v := rest[i*stride+1]
		if u < 1 || v < 1 {
			return nil, 0, fmt.Errorf("%w: vertex labels are 1-based", ErrMalformedGenome)
		}
		if int(u) > n {
			n = int(u)
		}
		if int(v) > n {
			n = int(v)
		}
	}

	g := core.NewGraph(n, dim)
	for i := 0; i < numEdges; i++ {
		u := int(rest[i*stride]) - 1
		v := int(rest[i*stride+1]) - 1
		var offset core.Offset
		for k := 0; k < dim; k++ {
			offset[k] = rest[i*stride+2+k]
		}
		if err := g.AddEdge(u, v, offset); err != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrMalformedGenome, err)
		}
	}
	return g, dim, nil
}
