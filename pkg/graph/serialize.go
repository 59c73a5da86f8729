package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Graph Serialization API
// =============================================================================

// wireGraph is the JSON shape of a graph: nodes as objects, edges as
// two-element [u, v] arrays.
type wireGraph struct {
	Nodes []Node  `json:"nodes"`
	Edges [][]int `json:"edges"`
}

// MarshalGraph converts a graph to indented JSON bytes.
func MarshalGraph(g *Graph) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteGraph(g, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalGraph decodes JSON bytes into a graph.
// The graph is validated before being returned.
func UnmarshalGraph(data []byte) (*Graph, error) {
	return ReadGraph(bytes.NewReader(data))
}

// WriteGraphFile writes a graph to a JSON file.
// The file is created with 0644 permissions.
func WriteGraphFile(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteGraph(g, f)
}

// WriteGraph writes a graph as JSON to an io.Writer.
func WriteGraph(g *Graph, w io.Writer) error {
	out := wireGraph{
		Nodes: g.Nodes,
		Edges: make([][]int, len(g.Edges)),
	}
	if out.Nodes == nil {
		out.Nodes = []Node{}
	}
	for i, e := range g.Edges {
		out.Edges[i] = []int{e.U, e.V}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadGraphFile reads a JSON file and returns the decoded graph.
// Returns validation errors for malformed graphs.
func ReadGraphFile(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadGraph(f)
}

// ReadGraph decodes a JSON graph from an io.Reader.
// The decoded graph is validated: an edge referencing an unknown node or a
// self-loop fails with an INVALID_GRAPH error rather than being carried along.
func ReadGraph(r io.Reader) (*Graph, error) {
	var data wireGraph
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := &Graph{Nodes: data.Nodes}
	for i := range g.Nodes {
		g.Nodes[i].ID = i
	}
	for _, pair := range data.Edges {
		if len(pair) != 2 {
			return nil, fmt.Errorf("decode: edge must be a [u, v] pair, got %v", pair)
		}
		g.Edges = append(g.Edges, Edge{U: pair[0], V: pair[1]})
	}

	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
