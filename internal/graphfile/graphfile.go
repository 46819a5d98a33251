// Package graphfile reads graph documents from YAML or JSON files.
//
// A document lists vertices and weighted edges:
//
//	vertices:
//	  - {id: 0, label: A, x: 0, y: 0}
//	  - {id: 1, label: B, x: 100, y: 0}
//	edges:
//	  - {from: 0, to: 1, weight: 5}
//
// Decoding checks only the document shape. Structural validity (unknown
// endpoints, self-loops, weight policy) is left to core.Validate so that the
// caller can pick the policy of the algorithm it runs.
package graphfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/algoviz/core"
)

// Format names a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

var (
	// ErrUnknownFormat is returned for a file extension or Format that is
	// neither YAML nor JSON.
	ErrUnknownFormat = errors.New("graphfile: unknown format")

	// ErrNoVertices is returned for a document without vertices.
	ErrNoVertices = errors.New("graphfile: document has no vertices")
)

// Document is the on-disk shape of a graph.
type Document struct {
	Vertices []core.Vertex `json:"vertices" yaml:"vertices"`
	Edges    []core.Edge   `json:"edges" yaml:"edges"`
}

// Graph converts d into an immutable graph. Vertices without a label are
// labeled with their decimal ID.
func (d Document) Graph() *core.Graph {
	vs := make([]core.Vertex, len(d.Vertices))
	for i, v := range d.Vertices {
		if v.Label == "" {
			v.Label = strconv.Itoa(v.ID)
		}
		vs[i] = v
	}

	return core.NewGraph(vs, d.Edges)
}

// FormatOf picks the format from the file extension (.yaml, .yml, .json).
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Load reads and decodes the graph file at path.
func Load(path string) (*core.Graph, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, fmt.Errorf("load graph %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read graph %s: %w", path, err)
	}
	g, err := Decode(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("parse graph %s: %w", path, err)
	}

	return g, nil
}

// Decode reads one document in the given format from r.
func Decode(r io.Reader, format Format) (*core.Graph, error) {
	var doc Document
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if len(doc.Vertices) == 0 {
		return nil, ErrNoVertices
	}

	return doc.Graph(), nil
}

// Encode writes g to w in the given format. Encoding then decoding yields an
// equal graph.
func Encode(w io.Writer, g *core.Graph, format Format) error {
	doc := Document{Vertices: g.Vertices(), Edges: g.Edges()}
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
