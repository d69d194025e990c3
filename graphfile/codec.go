package graphfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/katalvlaran/pathfind/core"
	"gopkg.in/yaml.v3"
)

// resolvedSchema is derived from Document once per process.
var resolvedSchema = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	s, err := Schema()
	if err != nil {
		return nil, err
	}

	return s.Resolve(nil)
})

// Schema returns the JSON Schema that every document must satisfy: the
// schema inferred from Document, with non-empty identifiers, at least one
// coordinate per position and non-negative weights.
func Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[Document](nil)
	if err != nil {
		return nil, fmt.Errorf("graphfile: infer schema: %w", err)
	}

	one, zero := 1, 0.0
	if p := lookup(s, "nodes", "[]", "id"); p != nil {
		p.MinLength = &one
	}
	if p := lookup(s, "nodes", "[]", "position"); p != nil {
		p.MinItems = &one
	}
	for _, end := range []string{"from", "to"} {
		if p := lookup(s, "edges", "[]", end); p != nil {
			p.MinLength = &one
		}
	}
	if p := lookup(s, "edges", "[]", "weight"); p != nil {
		p.Minimum = &zero
	}

	return s, nil
}

// lookup walks properties by name; "[]" steps into array items.
func lookup(s *jsonschema.Schema, path ...string) *jsonschema.Schema {
	for _, step := range path {
		if s == nil {
			return nil
		}
		if step == "[]" {
			s = s.Items
			continue
		}
		s = s.Properties[step]
	}

	return s
}

// Parse decodes a document, checks it against Schema and runs
// Document.Validate.
func Parse(data []byte, f Format) (*Document, error) {
	raw, err := toJSON(data, f)
	if err != nil {
		return nil, err
	}

	var instance any
	if err := json.Unmarshal(raw, &instance); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, f, err)
	}
	resolved, err := resolvedSchema()
	if err != nil {
		return nil, err
	}
	if err := resolved.Validate(instance); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var d Document
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// toJSON normalizes the input to JSON bytes.
func toJSON(data []byte, f Format) ([]byte, error) {
	switch f {
	case JSON:
		return data, nil
	case YAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrMalformed, err)
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("%w: yaml: %w", ErrMalformed, err)
		}

		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Load reads and validates the document at path; the format follows the
// file extension.
func Load(path string) (*Document, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: read %s: %w", path, err)
	}
	d, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// LoadGraph is Load followed by Build.
func LoadGraph(path string) (*core.Graph[string], error) {
	d, err := Load(path)
	if err != nil {
		return nil, err
	}
	g, err := d.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Encode writes d to w in the given format.
func Encode(w io.Writer, d *Document, f Format) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(d)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}

		return enc.Close()
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, f)
	}
}

// Save writes d to path in the format implied by its extension.
func Save(path string, d *Document) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, d, f); err != nil {
		return err
	}

	return os.WriteFile(path, buf.Bytes(), 0o644)
}
