// Package graphfile reads and writes weighted graphs as JSON or YAML
// documents and converts them to *core.Graph[string].
//
// Document layout (JSON shown; YAML uses the same keys):
//
//	{
//	  "directed": false,
//	  "nodes": [{"id": "A", "position": [0, 0]}, {"id": "B", "position": [1, 0]}],
//	  "edges": [{"from": "A", "to": "B", "weight": 1.2}]
//	}
//
// Nodes are optional: an edge endpoint that is not listed is created
// without a position. Every document is validated against a JSON Schema
// derived from Document before it is decoded, so unknown keys, missing
// endpoints and negative weights are reported as ErrMalformed together
// with the offending location.
package graphfile
