package tsp

import "errors"

// Sentinel errors. Callers match them with errors.Is; validation wraps them
// with position context.
var (
	// ErrEmptyMatrix is returned for a matrix with no rows.
	ErrEmptyMatrix = errors.New("tsp: empty matrix")

	// ErrNonSquare is returned when some row length differs from the row count.
	ErrNonSquare = errors.New("tsp: matrix is not square")

	// ErrTooManyNodes is returned when n exceeds MaxNodes.
	ErrTooManyNodes = errors.New("tsp: too many nodes for subset tables")

	// ErrStartOutOfRange is returned when the start node is not in [0..n-1].
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrNegativeCost is returned for a negative off-diagonal cost.
	ErrNegativeCost = errors.New("tsp: negative edge cost")

	// ErrCostOverflow is returned for a finite cost above MaxEdgeCost.
	ErrCostOverflow = errors.New("tsp: edge cost exceeds MaxEdgeCost")

	// ErrNoTour is returned by Solve when no Hamiltonian cycle closes back
	// at the start node.
	ErrNoTour = errors.New("tsp: no closed tour visits every node")

	// ErrInvalidTour is returned by ValidateTour and TourCost for a sequence
	// that is not a closed Hamiltonian cycle over the matrix.
	ErrInvalidTour = errors.New("tsp: invalid tour")
)
