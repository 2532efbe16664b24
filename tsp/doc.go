// Package tsp solves the Travelling Salesman Problem exactly on small
// directed integer cost matrices.
//
// It provides:
//
//   - NewMatrix: validates a [][]Cost (square, non-empty, n ≤ MaxNodes,
//     start in range, costs in [0..MaxEdgeCost] or Inf) into an immutable Matrix.
//   - Solver: the Held–Karp dynamic program over (visited-set, last-node)
//     states, with predecessor-based tour reconstruction.
//   - Complexity: O(n²·2ⁿ) time, O(n·2ⁿ) memory.
//   - Solve: NewMatrix + Solver in one call, ErrNoTour when no cycle exists.
//   - ValidateTour / TourCost: independent checks of a returned tour.
//   - RandomMatrix: deterministic random instances.
//
// A cost of Inf signals "no direct edge". Tours start and end at the
// matrix's start node and have length n+1. When several closing nodes give
// the same optimum, the lowest-numbered one is used, so results are
// deterministic.
//
// Use this package for instances up to roughly n≈20; beyond that the
// subset tables outgrow memory. Callers are expected to bound n.
package tsp
