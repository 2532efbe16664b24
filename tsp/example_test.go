// Package tsp_test provides runnable, deterministic examples of exact TSP
// solving with tspdp/tsp.
package tsp_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tspdp/tsp"
)

// ExampleSolve solves the classic symmetric 4-city instance.
func ExampleSolve() {
	costs := [][]tsp.Cost{
		{tsp.Inf, 10, 15, 20},
		{10, tsp.Inf, 35, 25},
		{15, 35, tsp.Inf, 30},
		{20, 25, 30, tsp.Inf},
	}
	res, err := tsp.Solve(costs, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost)
	fmt.Println(res.Path)
	// Output:
	// 80
	// [0 2 3 1 0]
}

// ExampleSolver reuses a validated matrix and reports infeasibility as ok=false.
func ExampleSolver() {
	m, err := tsp.NewMatrix([][]tsp.Cost{
		{tsp.Inf, 1, tsp.Inf},
		{tsp.Inf, tsp.Inf, 1},
		{1, tsp.Inf, tsp.Inf},
	}, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	res, ok := tsp.NewSolver(m).Solve()
	fmt.Println(ok, res)
	// Output:
	// true 1 → 2 → 0 → 1 (cost 3)
}

// ExampleSolve_noTour shows the sentinel returned for a graph without a cycle.
func ExampleSolve_noTour() {
	_, err := tsp.Solve([][]tsp.Cost{
		{tsp.Inf, 4},
		{tsp.Inf, tsp.Inf},
	}, 0)
	fmt.Println(errors.Is(err, tsp.ErrNoTour))
	// Output:
	// true
}
