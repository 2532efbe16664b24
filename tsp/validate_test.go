package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tspdp/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(n int, v tsp.Cost) [][]tsp.Cost {
	out := make([][]tsp.Cost, n)
	for i := range out {
		out[i] = make([]tsp.Cost, n)
		for j := range out[i] {
			out[i][j] = v
		}
	}
	return out
}

func TestNewMatrix_Errors(t *testing.T) {
	tests := []struct {
		name  string
		costs [][]tsp.Cost
		start int
		want  error
	}{
		{"nil", nil, 0, tsp.ErrEmptyMatrix},
		{"no rows", [][]tsp.Cost{}, 0, tsp.ErrEmptyMatrix},
		{"ragged", [][]tsp.Cost{{inf, 1}, {1}}, 0, tsp.ErrNonSquare},
		{"wide", [][]tsp.Cost{{inf, 1, 2}, {1, inf, 2}}, 0, tsp.ErrNonSquare},
		{"empty row", [][]tsp.Cost{{}}, 0, tsp.ErrNonSquare},
		{"too many", square(tsp.MaxNodes+1, 1), 0, tsp.ErrTooManyNodes},
		{"start negative", square(3, 1), -1, tsp.ErrStartOutOfRange},
		{"start past end", square(3, 1), 3, tsp.ErrStartOutOfRange},
		{"negative", [][]tsp.Cost{{inf, -1}, {1, inf}}, 0, tsp.ErrNegativeCost},
		{"overflow", [][]tsp.Cost{{inf, tsp.MaxEdgeCost + 1}, {1, inf}}, 0, tsp.ErrCostOverflow},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := tsp.NewMatrix(tc.costs, tc.start)
			require.ErrorIs(t, err, tc.want)
			require.Nil(t, m)
		})
	}
}

func TestNewMatrix_Accepts(t *testing.T) {
	costs := [][]tsp.Cost{
		{-5, 0, inf},
		{tsp.MaxEdgeCost, inf, 2},
		{1, inf, 99},
	}
	m, err := tsp.NewMatrix(costs, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, m.N())
	assert.Equal(t, 2, m.Start())

	c, ok := m.At(1, 0)
	assert.True(t, ok)
	assert.Equal(t, tsp.MaxEdgeCost, c)
	_, ok = m.At(0, 2)
	assert.False(t, ok, "Inf is no edge")
	c, ok = m.At(0, 1)
	assert.True(t, ok, "zero cost is a real edge")
	assert.Equal(t, tsp.Cost(0), c)
}

func TestNewMatrix_CopiesInput(t *testing.T) {
	costs := [][]tsp.Cost{{inf, 1}, {2, inf}}
	m, err := tsp.NewMatrix(costs, 0)
	require.NoError(t, err)

	costs[0][1] = 100
	c, _ := m.At(0, 1)
	assert.Equal(t, tsp.Cost(1), c)

	row := m.Row(0)
	row[1] = 7
	c, _ = m.At(0, 1)
	assert.Equal(t, tsp.Cost(1), c)
	assert.Equal(t, [][]tsp.Cost{{inf, 1}, {2, inf}}, m.Rows())
}

func TestMaxEdgeCost_NoOverflow(t *testing.T) {
	// the heaviest possible tour still stays below the sentinel
	assert.Less(t, tsp.MaxEdgeCost*tsp.MaxNodes, tsp.Inf)
}
