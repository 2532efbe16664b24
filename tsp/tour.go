// Package tsp - tour utilities.
//
// Helpers that check and price a closed tour independently of the solver:
//   - ValidateTour: enforce Hamiltonian-cycle invariants.
//   - TourCost: sum edge costs along a tour over a Matrix.
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//
// They never panic on user input; failures are reported with ErrInvalidTour
// (wrapped with position context) or ErrStartOutOfRange.
package tsp

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return errors.Wrapf(ErrInvalidTour, "permutation length %d, want %d", len(perm), n)
	}
	seen := make([]bool, n)

	var i, v int
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return errors.Wrapf(ErrInvalidTour, "position %d: vertex %d out of range", i, v)
		}
		if seen[v] {
			return errors.Wrapf(ErrInvalidTour, "position %d: vertex %d repeated", i, v)
		}
		seen[v] = true
	}

	return nil
}

// ValidateTour enforces
//
//	len(tour) == n+1, tour[0]==tour[n]==start,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return errors.Wrapf(ErrInvalidTour, "tour length %d, want %d", len(tour), n+1)
	}
	if err := validateStartVertex(n, start); err != nil {
		return err
	}
	if tour[0] != start || tour[n] != start {
		return errors.Wrapf(ErrInvalidTour, "tour must start and end at %d, got %d…%d", start, tour[0], tour[n])
	}

	return ValidatePermutation(tour[:n], n)
}

// TourCost validates tour against m and returns the sum of m's costs along
// consecutive pairs. A missing edge makes the tour invalid.
//
// For n == 1 the tour [s, s] costs 0: the return to start is not an edge.
//
// Complexity: O(n).
func TourCost(m *Matrix, tour []int) (Cost, error) {
	if err := ValidateTour(tour, m.N(), m.Start()); err != nil {
		return 0, err
	}
	if m.N() == 1 {
		return 0, nil
	}

	var (
		sum Cost
		i   int
		c   Cost
		ok  bool
	)
	for i = 0; i+1 < len(tour); i++ {
		if c, ok = m.At(tour[i], tour[i+1]); !ok {
			return 0, errors.Wrapf(ErrInvalidTour, "no edge %d→%d", tour[i], tour[i+1])
		}
		sum += c
	}

	return sum, nil
}

// String renders the tour as "0 → 2 → 3 → 1 → 0 (cost 80)".
func (t Tour) String() string {
	var b strings.Builder
	for i, v := range t.Path {
		if i > 0 {
			b.WriteString(" → ")
		}
		fmt.Fprintf(&b, "%d", v)
	}
	fmt.Fprintf(&b, " (cost %d)", t.Cost)

	return b.String()
}
