package graph

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/shorfin/wisent/pkg/errors"
)

func TestMarshalRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Graph
	}{
		{"empty", func() *Graph { return New(0) }},
		{"edgeless", func() *Graph {
			g := New(2)
			g.AddNode(Node{Weight: 1.5, X: 0.1, Y: 0.2})
			g.AddNode(Node{Weight: 0.5, X: 0.9, Y: 0.8})
			return g
		}},
		{"path", func() *Graph { return buildPath([]float64{1, 5, 1, 1}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.build()

			data, err := MarshalGraph(g)
			if err != nil {
				t.Fatalf("MarshalGraph: %v", err)
			}

			got, err := UnmarshalGraph(data)
			if err != nil {
				t.Fatalf("UnmarshalGraph: %v", err)
			}

			if got.NodeCount() != g.NodeCount() {
				t.Errorf("nodes = %d, want %d", got.NodeCount(), g.NodeCount())
			}
			if got.EdgeCount() != g.EdgeCount() {
				t.Errorf("edges = %d, want %d", got.EdgeCount(), g.EdgeCount())
			}
			for i, n := range got.Nodes {
				if n.Weight != g.Nodes[i].Weight {
					t.Errorf("node %d weight = %v, want %v", i, n.Weight, g.Nodes[i].Weight)
				}
			}
			for i, e := range got.Edges {
				if e != g.Edges[i] {
					t.Errorf("edge %d = %v, want %v", i, e, g.Edges[i])
				}
			}
		})
	}
}

func TestUnmarshalGraphWireShape(t *testing.T) {
	// Edges on the wire are [u, v] pairs.
	data := []byte(`{
		"nodes": [{"id": 0, "weight": 1.0}, {"id": 1, "weight": 2.0}],
		"edges": [[0, 1]]
	}`)

	g, err := UnmarshalGraph(data)
	if err != nil {
		t.Fatalf("UnmarshalGraph: %v", err)
	}
	if g.EdgeCount() != 1 || g.Edges[0] != (Edge{U: 0, V: 1}) {
		t.Errorf("edges = %v, want [{0 1}]", g.Edges)
	}
}

func TestUnmarshalGraphRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
		code errors.Code
	}{
		{"edge out of range", `{"nodes": [{"weight": 1}], "edges": [[0, 5]]}`, errors.ErrCodeInvalidGraph},
		{"self-loop", `{"nodes": [{"weight": 1}, {"weight": 1}], "edges": [[1, 1]]}`, errors.ErrCodeInvalidGraph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalGraph([]byte(tt.data))
			if err == nil {
				t.Fatal("UnmarshalGraph = nil, want error")
			}
			if tt.code != "" && !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}

	if _, err := UnmarshalGraph([]byte(`{"edges": [[0]]}`)); err == nil || !strings.Contains(err.Error(), "pair") {
		t.Errorf("short edge pair error = %v, want pair complaint", err)
	}
}

func TestWriteReadGraphFile(t *testing.T) {
	g := buildPath([]float64{1, 2, 3})
	path := filepath.Join(t.TempDir(), "graph.json")

	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}

	got, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}
	if got.NodeCount() != 3 || got.EdgeCount() != 2 {
		t.Errorf("round trip = %d nodes %d edges, want 3/2", got.NodeCount(), got.EdgeCount())
	}

	if _, err := ReadGraphFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("ReadGraphFile(missing) = nil, want error")
	}
}
