// Package tsp - core types shared by the validator and the exact solver.
package tsp

import "math"

// Cost is the integer weight of a directed edge i→j.
type Cost = int64

const (
	// Inf is the sentinel for "no direct edge". It is only meaningful at the
	// matrix boundary; the solver never does arithmetic on it.
	Inf Cost = math.MaxInt64

	// MaxNodes is the largest matrix order whose subset tables can be addressed.
	// Practical instances stay far below it (2^n·n entries per table).
	MaxNodes = 30

	// MaxEdgeCost is the largest finite edge cost accepted by NewMatrix.
	// Any closed tour sums at most MaxNodes edges, so its cost stays below Inf.
	MaxEdgeCost Cost = Inf / (MaxNodes + 1)
)

// Matrix is a validated, immutable square cost matrix with a designated
// start node. Build it with NewMatrix; the zero value is not usable.
//
// Diagonal entries are kept as given but never read by the solver.
type Matrix struct {
	n     int
	start int
	costs []Cost // row-major, n*n
}

// N returns the number of nodes.
func (m *Matrix) N() int { return m.n }

// Start returns the designated start node.
func (m *Matrix) Start() int { return m.start }

// At returns the cost of edge i→j and whether the edge exists.
// Indices are not range-checked beyond the slice bounds.
func (m *Matrix) At(i, j int) (Cost, bool) {
	c := m.costs[i*m.n+j]
	return c, c != Inf
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []Cost {
	out := make([]Cost, m.n)
	copy(out, m.costs[i*m.n:(i+1)*m.n])
	return out
}

// Rows returns a deep copy of the matrix in [][]Cost form.
func (m *Matrix) Rows() [][]Cost {
	out := make([][]Cost, m.n)
	for i := range out {
		out[i] = m.Row(i)
	}
	return out
}

// Tour holds the outcome of an exact solve.
type Tour struct {
	// Cost is the total weight of the closed cycle.
	Cost Cost `json:"cost" yaml:"cost"`

	// Path lists visited nodes, starting and ending at the start node.
	// For n nodes, len(Path) == n+1 and Path[0] == Path[n] == start.
	Path []int `json:"path" yaml:"path"`
}
