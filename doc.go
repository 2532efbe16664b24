// Package tspdp solves small Travelling Salesman instances exactly.
//
// 🚀 What is tspdp?
//
//	Given an n×n directed integer cost matrix (INF = no edge) and a start
//	node, tspdp finds the cheapest closed tour visiting every node exactly
//	once, using the Held–Karp bitmask dynamic program:
//		• O(n²·2ⁿ) time, O(n·2ⁿ) memory, practical up to n≈20
//		• asymmetric costs and missing edges supported
//		• deterministic tie-breaking (lowest closing node wins)
//
// Packages:
//
//	tsp/       Matrix validation, Held–Karp Solver, tour checks, random instances
//	matrixio/  text and YAML matrix formats
//	config/    layered CLI configuration (defaults, YAML, .env, flags)
//	cache/     on-disk memo of solved instances
//	cmd/tspdp/ command-line front end
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/tspdp/tsp"
//
//	res, err := tsp.Solve(costs, 0)
//	if errors.Is(err, tsp.ErrNoTour) {
//		// no Hamiltonian cycle closes back at node 0
//	}
//	fmt.Println(res.Cost, res.Path)
package tspdp
