package matrixio

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tspdp/tsp"
)

// Document is a matrix together with its start node.
// HasStart reports whether the source named a start node explicitly.
type Document struct {
	Start    int          `yaml:"start"`
	HasStart bool         `yaml:"-"`
	Costs    [][]tsp.Cost `yaml:"-"`
}

// cell decodes one YAML grid entry.
type cell tsp.Cost

// UnmarshalYAML accepts integers, Inf tokens, .inf and null.
func (c *cell) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.Wrapf(ErrParse, "line %d: expected a scalar", value.Line)
	}
	switch value.Tag {
	case "!!null":
		*c = cell(tsp.Inf)
		return nil
	case "!!float":
		var f float64
		if err := value.Decode(&f); err != nil || !math.IsInf(f, 1) {
			return errors.Wrapf(ErrParse, "line %d: %q", value.Line, value.Value)
		}
		*c = cell(tsp.Inf)
		return nil
	}
	v, err := ParseCost(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*c = cell(v)

	return nil
}

// row decodes one grid row. yaml.v3 never calls cell.UnmarshalYAML for a
// null node, so the row hands every element to it explicitly.
type row []cell

// UnmarshalYAML decodes every element of a sequence node as a cell.
func (r *row) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return errors.Wrapf(ErrParse, "line %d: expected a sequence", value.Line)
	}
	out := make(row, len(value.Content))
	for i, n := range value.Content {
		if n.Kind == yaml.AliasNode {
			n = n.Alias
		}
		if err := out[i].UnmarshalYAML(n); err != nil {
			return err
		}
	}
	*r = out

	return nil
}

// yamlDocument is the on-disk shape of Document.
type yamlDocument struct {
	Start *int  `yaml:"start"`
	Costs []row `yaml:"costs"`
}

// ReadYAML parses a YAML matrix document.
func ReadYAML(r io.Reader) (Document, error) {
	var raw yamlDocument
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Document{}, errors.WithStack(ErrEmpty)
		}
		return Document{}, errors.Wrap(err, "decoding yaml matrix")
	}

	costs := make([][]tsp.Cost, len(raw.Costs))
	for i, cells := range raw.Costs {
		costs[i] = make([]tsp.Cost, len(cells))
		for j, c := range cells {
			costs[i][j] = tsp.Cost(c)
		}
	}
	if err := checkShape(costs); err != nil {
		return Document{}, err
	}

	doc := Document{Costs: costs}
	if raw.Start != nil {
		doc.Start, doc.HasStart = *raw.Start, true
	}

	return doc, nil
}

// WriteYAML writes doc in the format ReadYAML accepts. The start node is
// always written, so reading the output back yields HasStart.
func WriteYAML(w io.Writer, doc Document) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	grid := &yaml.Node{Kind: yaml.SequenceNode}
	for _, cells := range doc.Costs {
		seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		for _, c := range cells {
			n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: FormatCost(c)}
			if c == tsp.Inf {
				n.Tag = "!!str"
			}
			seq.Content = append(seq.Content, n)
		}
		grid.Content = append(grid.Content, seq)
	}
	root.Content = append(root.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "start"},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: FormatCost(tsp.Cost(doc.Start))},
		&yaml.Node{Kind: yaml.ScalarNode, Value: "costs"},
		grid,
	)

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return errors.Wrap(err, "encoding yaml matrix")
	}

	return errors.WithStack(enc.Close())
}

// Load reads a matrix file. YAML files (.yaml, .yml) may carry a start
// node; text files always yield Start 0 with HasStart unset.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, errors.Wrapf(err, "opening matrix file %s", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		doc, err := ReadYAML(f)
		return doc, errors.Wrapf(err, "%s", path)
	default:
		costs, err := ReadText(f)
		if err != nil {
			return Document{}, errors.Wrapf(err, "%s", path)
		}
		return Document{Costs: costs}, nil
	}
}
