// Package tsp_test provides lightweight helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tspdp/tsp"
)

const (
	// seedDet is a deterministic seed for generated instances.
	seedDet = int64(7)

	// startV is the canonical start vertex used across tests.
	startV = 0
)

// Repeat runs fn n times as subtests, to lock determinism.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	for i := 0; i < n; i++ {
		t.Run("", fn)
	}
}

// cycleCosts builds a symmetric ring metric: cost(i,j)=min(|i-j|, n-|i-j|),
// Inf on the diagonal. The optimum closed tour costs exactly n.
func cycleCosts(n int) [][]tsp.Cost {
	out := make([][]tsp.Cost, n)
	for i := range out {
		out[i] = make([]tsp.Cost, n)
		for j := range out[i] {
			if i == j {
				out[i][j] = tsp.Inf
				continue
			}
			d := i - j
			if d < 0 {
				d = -d
			}
			if n-d < d {
				d = n - d
			}
			out[i][j] = tsp.Cost(d)
		}
	}
	return out
}

// bruteForce enumerates every ordering of the non-start nodes and returns the
// cheapest closed tour cost, or false when none exists. Reference for n ≤ 8.
func bruteForce(costs [][]tsp.Cost, start int) (tsp.Cost, bool) {
	n := len(costs)
	if n == 1 {
		return 0, true
	}
	rest := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != start {
			rest = append(rest, v)
		}
	}

	var (
		best  tsp.Cost
		found bool
		walk  func(k int)
	)
	walk = func(k int) {
		if k == len(rest) {
			var sum tsp.Cost
			prev := start
			for _, v := range append(append([]int(nil), rest...), start) {
				c := costs[prev][v]
				if c == tsp.Inf {
					return
				}
				sum += c
				prev = v
			}
			if !found || sum < best {
				best, found = sum, true
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			walk(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	walk(0)

	return best, found
}

// mustMatrix builds a Matrix or fails the test.
func mustMatrix(t *testing.T, costs [][]tsp.Cost, start int) *tsp.Matrix {
	t.Helper()
	m, err := tsp.NewMatrix(costs, start)
	if err != nil {
		t.Fatalf("NewMatrix: %v", err)
	}
	return m
}
