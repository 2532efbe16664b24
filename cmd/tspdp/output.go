package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspdp/matrixio"
	"github.com/katalvlaran/tspdp/tsp"
)

// report is the rendered outcome of one instance.
type report struct {
	Name   string       `json:"name" yaml:"name"`
	N      int          `json:"n" yaml:"n"`
	Start  int          `json:"start" yaml:"start"`
	Found  bool         `json:"found" yaml:"found"`
	Cost   *tsp.Cost    `json:"cost,omitempty" yaml:"cost,omitempty"`
	Path   []int        `json:"path,omitempty" yaml:"path,omitempty"`
	Cached bool         `json:"cached" yaml:"cached"`
	Matrix [][]tsp.Cost `json:"-" yaml:"-"`
}

func (r *report) fill(t tsp.Tour, ok bool) {
	r.Found = ok
	if !ok {
		return
	}
	cost := t.Cost
	r.Cost = &cost
	r.Path = t.Path
}

// render writes r in the configured output format.
func (a *app) render(r report) error {
	switch a.cfg.Output {
	case "json":
		return errors.WithStack(json.NewEncoder(a.out).Encode(r))
	case "yaml":
		enc := yaml.NewEncoder(a.out)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return errors.WithStack(err)
		}
		return errors.WithStack(enc.Close())
	default:
		return a.renderText(r)
	}
}

func (a *app) renderText(r report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", r.Name)
	if r.Matrix != nil {
		fmt.Fprintf(&b, "  Matrix (%dx%d):\n", r.N, r.N)
		for _, row := range r.Matrix {
			cells := make([]string, len(row))
			for j, c := range row {
				cells[j] = matrixio.FormatCost(c)
			}
			fmt.Fprintf(&b, "    [%s]\n", strings.Join(cells, " "))
		}
	}
	if !r.Found {
		b.WriteString("  No tour found.\n")
	} else {
		fmt.Fprintf(&b, "  Minimum tour cost: %d\n", *r.Cost)
		fmt.Fprintf(&b, "  Path: %v\n", r.Path)
	}
	_, err := fmt.Fprint(a.out, b.String())

	return err
}
