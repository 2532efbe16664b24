package matrixio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/tspdp/tsp"
)

var (
	// ErrEmpty is returned when a source holds no matrix rows.
	ErrEmpty = errors.New("matrixio: no matrix data")

	// ErrParse is returned for a token that is neither an integer nor an Inf token.
	ErrParse = errors.New("matrixio: invalid cost token")

	// ErrRagged is returned when a row's column count differs from the first row.
	ErrRagged = errors.New("matrixio: inconsistent column count")

	// ErrNotSquare is returned when the row count differs from the column count.
	ErrNotSquare = errors.New("matrixio: matrix is not square")
)

// infTokens are accepted spellings of tsp.Inf.
var infTokens = map[string]struct{}{
	"INF": {},
	"inf": {},
	"Inf": {},
	"∞":   {},
	"-":   {},
}

// ParseCost converts a single token into a cost.
func ParseCost(tok string) (tsp.Cost, error) {
	tok = strings.TrimSpace(tok)
	if _, ok := infTokens[tok]; ok {
		return tsp.Inf, nil
	}
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrParse, "%q", tok)
	}

	return v, nil
}

// FormatCost is the inverse of ParseCost; Inf is written as "INF".
func FormatCost(c tsp.Cost) string {
	if c == tsp.Inf {
		return "INF"
	}
	return strconv.FormatInt(c, 10)
}

// ReadText parses the whitespace text format.
//
// Errors carry the 1-based source line and match ErrEmpty, ErrParse,
// ErrRagged or ErrNotSquare with errors.Is; reader failures are wrapped.
func ReadText(r io.Reader) ([][]tsp.Cost, error) {
	var (
		sc     = bufio.NewScanner(r)
		rows   [][]tsp.Cost
		cols   = -1
		lineNo int
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		row := make([]tsp.Cost, len(fields))
		for i, f := range fields {
			c, err := ParseCost(f)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d, column %d", lineNo, i+1)
			}
			row[i] = c
		}
		if cols < 0 {
			cols = len(row)
		} else if len(row) != cols {
			return nil, errors.Wrapf(ErrRagged, "line %d has %d columns, want %d", lineNo, len(row), cols)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading line %d", lineNo+1)
	}

	if err := checkShape(rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// checkShape rejects empty and non-square grids.
func checkShape(rows [][]tsp.Cost) error {
	if len(rows) == 0 {
		return errors.WithStack(ErrEmpty)
	}
	for i, row := range rows {
		if len(row) != len(rows) {
			return errors.Wrapf(ErrNotSquare, "%d rows, row %d has %d columns", len(rows), i, len(row))
		}
	}

	return nil
}

// WriteText writes costs in the text format, one row per line.
func WriteText(w io.Writer, costs [][]tsp.Cost) error {
	bw := bufio.NewWriter(w)
	for _, row := range costs {
		for j, c := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(FormatCost(c))
		}
		bw.WriteByte('\n')
	}

	return errors.WithStack(bw.Flush())
}
