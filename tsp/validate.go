// Package tsp - validation of cost matrices ahead of the exact solver.
//
// NewMatrix is the only way to build a Matrix. It establishes every
// precondition the solver relies on, so the solver itself never re-checks:
//  1. Shape: non-empty, square, n ≤ MaxNodes.
//  2. Start vertex in range.
//  3. Off-diagonal values: Inf, or a finite cost in [0..MaxEdgeCost].
//
// Diagonal entries are accepted as-is (conventionally Inf) and ignored.
//
// Complexity: O(n²) time, one O(n²) allocation for the row-major copy.
package tsp

import "github.com/pkg/errors"

// NewMatrix validates costs and start, and returns an immutable Matrix.
// The input slices are copied; later changes to costs do not affect the result.
//
// Errors (match with errors.Is): ErrEmptyMatrix, ErrNonSquare, ErrTooManyNodes,
// ErrStartOutOfRange, ErrNegativeCost, ErrCostOverflow.
func NewMatrix(costs [][]Cost, start int) (*Matrix, error) {
	n := len(costs)
	if n == 0 {
		return nil, errors.WithStack(ErrEmptyMatrix)
	}

	var i, j int
	for i = 0; i < n; i++ {
		if len(costs[i]) != n {
			return nil, errors.Wrapf(ErrNonSquare, "row %d has %d columns, want %d", i, len(costs[i]), n)
		}
	}
	if n > MaxNodes {
		return nil, errors.Wrapf(ErrTooManyNodes, "n=%d, max %d", n, MaxNodes)
	}
	if err := validateStartVertex(n, start); err != nil {
		return nil, err
	}

	flat := make([]Cost, n*n)
	var c Cost
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			c = costs[i][j]
			flat[i*n+j] = c
			if i == j || c == Inf {
				continue
			}
			if c < 0 {
				return nil, errors.Wrapf(ErrNegativeCost, "costs[%d][%d]=%d", i, j, c)
			}
			if c > MaxEdgeCost {
				return nil, errors.Wrapf(ErrCostOverflow, "costs[%d][%d]=%d", i, j, c)
			}
		}
	}

	return &Matrix{n: n, start: start, costs: flat}, nil
}

// validateStartVertex verifies that start∈[0..n-1].
func validateStartVertex(n int, start int) error {
	if start < 0 || start >= n {
		return errors.Wrapf(ErrStartOutOfRange, "start=%d, n=%d", start, n)
	}

	return nil
}
