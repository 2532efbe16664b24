// Package matrixio reads and writes cost matrices for tspdp/tsp.
//
// Two source formats are supported:
//
//   - Text: one row per line, whitespace-separated integers. Blank lines
//     and lines starting with '#' are skipped. The tokens INF, inf, ∞, -
//     and 9223372036854775807 mean "no edge" (tsp.Inf).
//
//     INF 10 15
//     10 INF 35
//     15 35 INF
//
//   - YAML: a document with an optional start node and a costs grid whose
//     cells are integers, INF, .inf or null.
//
//     start: 0
//     costs:
//     - [INF, 10, 15]
//     - [10, INF, 35]
//     - [15, 35, null]
//
// Load picks the format by file extension (.yaml/.yml, otherwise text).
// Parsing checks shape only (non-empty, rectangular, square); value rules
// such as non-negativity are left to tsp.NewMatrix.
package matrixio
