package graphfile

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/pathfind/core"
)

// Sentinel errors returned by graphfile.
var (
	// ErrMalformed wraps every decoding, schema and conversion failure.
	ErrMalformed = errors.New("graphfile: malformed graph document")

	// ErrUnknownFormat indicates a file extension or format name that is
	// neither JSON nor YAML.
	ErrUnknownFormat = errors.New("graphfile: unknown format")
)

// Format selects the document encoding.
type Format int

const (
	// JSON documents (.json).
	JSON Format = iota
	// YAML documents (.yaml, .yml).
	YAML
)

// String returns "json" or "yaml".
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Document is the serialized form of a graph.
type Document struct {
	Directed bool      `json:"directed,omitempty" yaml:"directed,omitempty" jsonschema:"edges are one-way when true"`
	Nodes    []NodeDoc `json:"nodes,omitempty" yaml:"nodes,omitempty" jsonschema:"optional node list carrying positions"`
	Edges    []EdgeDoc `json:"edges" yaml:"edges" jsonschema:"weighted edges"`
}

// NodeDoc is one node entry.
type NodeDoc struct {
	ID       string    `json:"id" yaml:"id" jsonschema:"unique node identifier"`
	Position []float64 `json:"position,omitempty" yaml:"position,omitempty" jsonschema:"coordinates used by distance heuristics"`
}

// EdgeDoc is one edge entry.
type EdgeDoc struct {
	From   string  `json:"from" yaml:"from" jsonschema:"source node"`
	To     string  `json:"to" yaml:"to" jsonschema:"target node"`
	Weight float64 `json:"weight" yaml:"weight" jsonschema:"non-negative traversal cost"`
}

// Validate checks identifiers and weights without building a graph.
// Position dimensions are checked by Build.
func (d *Document) Validate() error {
	seen := make(map[string]struct{}, len(d.Nodes))
	for i, n := range d.Nodes {
		if n.ID == "" {
			return fmt.Errorf("%w: nodes[%d]: empty id", ErrMalformed, i)
		}
		if _, dup := seen[n.ID]; dup {
			return fmt.Errorf("%w: nodes[%d]: duplicate id %q", ErrMalformed, i, n.ID)
		}
		seen[n.ID] = struct{}{}
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: edges[%d]: empty endpoint", ErrMalformed, i)
		}
		if !(e.Weight >= 0) {
			return fmt.Errorf("%w: edges[%d]: %w: %v", ErrMalformed, i, core.ErrInvalidWeight, e.Weight)
		}
	}

	return nil
}

// Build converts the document into a graph. Listed nodes are added first,
// in document order, then edges.
//
// Errors wrap ErrMalformed; weight and position failures also wrap the
// matching core sentinel (core.ErrInvalidWeight, core.ErrDimensionMismatch...).
func (d *Document) Build() (*core.Graph[string], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := core.NewGraph[string](core.WithDirected(d.Directed))
	for i, n := range d.Nodes {
		if len(n.Position) == 0 {
			g.AddNode(n.ID)
			continue
		}
		if err := g.SetPosition(n.ID, n.Position...); err != nil {
			return nil, fmt.Errorf("%w: nodes[%d]: %w", ErrMalformed, i, err)
		}
	}
	for i, e := range d.Edges {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrMalformed, i, err)
		}
	}

	return g, nil
}

// FromGraph exports g as a Document. Nodes are listed in sorted order with
// their positions; undirected edges appear once.
func FromGraph(g *core.Graph[string]) *Document {
	d := &Document{Directed: g.Directed()}
	for _, id := range g.Nodes() {
		pos, _ := g.Position(id)
		d.Nodes = append(d.Nodes, NodeDoc{ID: id, Position: pos})
	}
	for _, e := range g.Edges() {
		d.Edges = append(d.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}
	if d.Edges == nil {
		d.Edges = []EdgeDoc{}
	}

	return d
}
