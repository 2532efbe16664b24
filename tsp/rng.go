// Package tsp - deterministic random instances.
//
// RandomMatrix builds reproducible cost matrices for tests, benchmarks and
// the CLI "random" command. Same options ⇒ identical matrix on every platform.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; every call owns its own stream.
package tsp

import (
	"math/rand"

	"github.com/pkg/errors"
)

// defaultRNGSeed is the fixed seed used when callers pass Seed==0.
const defaultRNGSeed int64 = 1

// RandomOptions configures RandomMatrix.
type RandomOptions struct {
	// N is the matrix order, 1 ≤ N ≤ MaxNodes.
	N int `json:"n" yaml:"n"`

	// MaxCost bounds finite edge costs to [1..MaxCost]; 0 means 100.
	MaxCost Cost `json:"max_cost" yaml:"max_cost"`

	// Density is the probability that an off-diagonal edge exists, in (0,1].
	// 0 means 1 (complete graph).
	Density float64 `json:"density" yaml:"density"`

	// PlantTour keeps the edges of one random Hamiltonian cycle regardless of
	// Density, so the instance always has a solution.
	PlantTour bool `json:"plant_tour" yaml:"plant_tour"`

	// Symmetric mirrors the upper triangle into the lower one.
	Symmetric bool `json:"symmetric" yaml:"symmetric"`

	// Seed selects the stream; 0 ⇒ defaultRNGSeed.
	Seed int64 `json:"seed" yaml:"seed"`
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// permRange returns a permutation of 0..n-1 drawn from rng (Fisher–Yates).
func permRange(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	var i, j int
	for i = 0; i < n; i++ {
		p[i] = i
	}
	for i = n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// RandomMatrix generates a cost matrix with Inf on the diagonal.
//
// Errors: ErrEmptyMatrix for N<1, ErrTooManyNodes for N>MaxNodes,
// ErrCostOverflow for MaxCost outside [0..MaxEdgeCost].
//
// Complexity: O(n²).
func RandomMatrix(opts RandomOptions) ([][]Cost, error) {
	n := opts.N
	if n < 1 {
		return nil, errors.WithStack(ErrEmptyMatrix)
	}
	if n > MaxNodes {
		return nil, errors.Wrapf(ErrTooManyNodes, "n=%d, max %d", n, MaxNodes)
	}
	maxCost := opts.MaxCost
	if maxCost == 0 {
		maxCost = 100
	}
	if maxCost < 0 || maxCost > MaxEdgeCost {
		return nil, errors.Wrapf(ErrCostOverflow, "max cost %d", maxCost)
	}
	density := opts.Density
	if density <= 0 || density > 1 {
		density = 1
	}

	var (
		rng  = rngFromSeed(opts.Seed)
		out  = make([][]Cost, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		out[i] = make([]Cost, n)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				out[i][j] = Inf
			case opts.Symmetric && j < i:
				out[i][j] = out[j][i]
			case rng.Float64() >= density:
				out[i][j] = Inf
			default:
				out[i][j] = 1 + rng.Int63n(maxCost)
			}
		}
	}

	if opts.PlantTour && n > 1 {
		p := permRange(n, rng)
		var u, v int
		for i = 0; i < n; i++ {
			u, v = p[i], p[(i+1)%n]
			if out[u][v] == Inf {
				out[u][v] = 1 + rng.Int63n(maxCost)
			}
			if opts.Symmetric {
				out[v][u] = out[u][v]
			}
		}
	}

	return out, nil
}
