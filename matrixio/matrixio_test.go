package matrixio_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspdp/matrixio"
	"github.com/katalvlaran/tspdp/tsp"
)

const inf = tsp.Inf

func TestReadText(t *testing.T) {
	src := `
# classic instance
INF 10 15 20
10 inf 35 25

15 35 ∞ 30
20 25 30 9223372036854775807
`
	costs, err := matrixio.ReadText(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, [][]tsp.Cost{
		{inf, 10, 15, 20},
		{10, inf, 35, 25},
		{15, 35, inf, 30},
		{20, 25, 30, inf},
	}, costs)
}

func TestReadText_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
		line string
	}{
		{"empty", "", matrixio.ErrEmpty, ""},
		{"only blanks", "\n  \n# c\n", matrixio.ErrEmpty, ""},
		{"bad token", "0 1\n1 x\n", matrixio.ErrParse, "line 2"},
		{"float", "0 1.5\n1 0\n", matrixio.ErrParse, "line 1"},
		{"ragged", "0 1 2\n1 0\n", matrixio.ErrRagged, "line 2"},
		{"not square", "0 1 2\n1 0 2\n", matrixio.ErrNotSquare, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			costs, err := matrixio.ReadText(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, costs)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestText_RoundTrip(t *testing.T) {
	costs := tsp.Samples()[1].Costs
	var buf bytes.Buffer
	require.NoError(t, matrixio.WriteText(&buf, costs))
	assert.True(t, strings.HasPrefix(buf.String(), "INF 2 INF 6 INF\n"))

	back, err := matrixio.ReadText(&buf)
	require.NoError(t, err)
	assert.Equal(t, costs, back)
}

func TestReadYAML(t *testing.T) {
	src := `
start: 2
costs:
  - [INF, 10, 15]
  - [10, .inf, 35]
  - [15, 35, null]
`
	doc, err := matrixio.ReadYAML(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 2, doc.Start)
	assert.True(t, doc.HasStart)
	assert.Equal(t, [][]tsp.Cost{
		{inf, 10, 15},
		{10, inf, 35},
		{15, 35, inf},
	}, doc.Costs)
}

func TestReadYAML_NullCells(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want [][]tsp.Cost
	}{
		{
			name: "diagonal",
			src:  "costs:\n  - [null, 3]\n  - [4, null]\n",
			want: [][]tsp.Cost{{inf, 3}, {4, inf}},
		},
		{
			name: "rows mostly null",
			src:  "costs:\n  - [null, 3, null]\n  - [null, ~, 4]\n  - [5, null, null]\n",
			want: [][]tsp.Cost{{inf, 3, inf}, {inf, inf, 4}, {5, inf, inf}},
		},
		{
			name: "block style",
			src:  "costs:\n  -\n    - null\n    - 7\n  -\n    - 8\n    -\n",
			want: [][]tsp.Cost{{inf, 7}, {8, inf}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := matrixio.ReadYAML(strings.NewReader(tc.src))
			require.NoError(t, err)
			assert.Equal(t, tc.want, doc.Costs)
			assert.False(t, doc.HasStart)
			assert.Equal(t, 0, doc.Start)
		})
	}
}

func TestReadYAML_ExplicitZeroStart(t *testing.T) {
	doc, err := matrixio.ReadYAML(strings.NewReader("start: 0\ncosts: [[INF, 1], [1, INF]]\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Start)
	assert.True(t, doc.HasStart)
}

func TestReadYAML_Errors(t *testing.T) {
	_, err := matrixio.ReadYAML(strings.NewReader(""))
	require.ErrorIs(t, err, matrixio.ErrEmpty)

	_, err = matrixio.ReadYAML(strings.NewReader("costs:\n  - [1, 2]\n  - [3]\n"))
	require.ErrorIs(t, err, matrixio.ErrNotSquare)

	_, err = matrixio.ReadYAML(strings.NewReader("costs:\n  - [1, abc]\n  - [3, 4]\n"))
	require.ErrorIs(t, err, matrixio.ErrParse)

	_, err = matrixio.ReadYAML(strings.NewReader("costs:\n  - [1, 2.5]\n  - [3, 4]\n"))
	require.ErrorIs(t, err, matrixio.ErrParse)
}

func TestYAML_RoundTrip(t *testing.T) {
	doc := matrixio.Document{Start: 1, HasStart: true, Costs: tsp.Samples()[0].Costs}
	var buf bytes.Buffer
	require.NoError(t, matrixio.WriteYAML(&buf, doc))

	back, err := matrixio.ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "m.txt")
	require.NoError(t, os.WriteFile(txt, []byte("INF 3\n4 INF\n"), 0o644))
	doc, err := matrixio.Load(txt)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Start)
	assert.False(t, doc.HasStart)
	assert.Equal(t, [][]tsp.Cost{{inf, 3}, {4, inf}}, doc.Costs)

	yml := filepath.Join(dir, "m.YML")
	require.NoError(t, os.WriteFile(yml, []byte("start: 1\ncosts: [[INF, 3], [4, INF]]\n"), 0o644))
	doc, err = matrixio.Load(yml)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.Start)

	_, err = matrixio.Load(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
