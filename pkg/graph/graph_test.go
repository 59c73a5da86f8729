package graph

import (
	"testing"

	"github.com/shorfin/wisent/pkg/errors"
)

func buildPath(weights []float64) *Graph {
	g := New(len(weights))
	for _, w := range weights {
		g.AddNode(Node{Weight: w})
	}
	for i := 0; i < len(weights)-1; i++ {
		_ = g.AddEdge(i, i+1)
	}
	return g
}

func TestAddNodeAssignsDenseIDs(t *testing.T) {
	g := New(3)
	for i := 0; i < 3; i++ {
		id := g.AddNode(Node{Weight: 1})
		if id != i {
			t.Errorf("AddNode returned id %d, want %d", id, i)
		}
		if g.Nodes[i].ID != i {
			t.Errorf("Nodes[%d].ID = %d, want %d", i, g.Nodes[i].ID, i)
		}
	}
}

func TestAddEdge(t *testing.T) {
	tests := []struct {
		name     string
		u, v     int
		wantErr  bool
		wantEdge int
	}{
		{"valid", 0, 1, false, 1},
		{"reversed normalizes", 2, 1, false, 1},
		{"self-loop", 1, 1, true, 0},
		{"out of range", 0, 9, true, 0},
		{"negative", -1, 0, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(3)
			for i := 0; i < 3; i++ {
				g.AddNode(Node{Weight: 1})
			}

			err := g.AddEdge(tt.u, tt.v)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AddEdge(%d,%d) = %v, wantErr %v", tt.u, tt.v, err, tt.wantErr)
			}
			if err != nil && errors.GetCode(err) != errors.ErrCodeInvalidGraph {
				t.Errorf("code = %v, want INVALID_GRAPH", errors.GetCode(err))
			}
			if got := g.EdgeCount(); got != tt.wantEdge {
				t.Errorf("EdgeCount() = %d, want %d", got, tt.wantEdge)
			}
		})
	}
}

func TestAddEdgeDeduplicates(t *testing.T) {
	g := New(2)
	g.AddNode(Node{Weight: 1})
	g.AddNode(Node{Weight: 1})

	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 0)

	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1 after duplicate adds", got)
	}
}

func TestAddEdgeDeduplicatesAtScale(t *testing.T) {
	// Dense insertion must stay fast: every add is a set lookup, not a scan
	// of the edge slice.
	const n = 500
	g := New(n)
	for i := 0; i < n; i++ {
		g.AddNode(Node{Weight: 1})
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(i, j)
		}
	}
	// Second pass in reversed orientation is all duplicates.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			_ = g.AddEdge(j, i)
		}
	}

	if want := n * (n - 1) / 2; g.EdgeCount() != want {
		t.Errorf("EdgeCount() = %d, want %d", g.EdgeCount(), want)
	}
}

func TestAddEdgeDeduplicatesAfterDecode(t *testing.T) {
	// Graphs decoded straight into the exported fields must still dedupe
	// when edges are added afterwards, regardless of stored orientation.
	g := &Graph{
		Nodes: []Node{{ID: 0, Weight: 1}, {ID: 1, Weight: 1}},
		Edges: []Edge{{U: 1, V: 0}},
	}

	_ = g.AddEdge(0, 1)
	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
}

func TestDegreesAndAdjacency(t *testing.T) {
	g := buildPath([]float64{1, 1, 1, 1})

	wantDeg := []int{1, 2, 2, 1}
	for i, d := range g.Degrees() {
		if d != wantDeg[i] {
			t.Errorf("degree[%d] = %d, want %d", i, d, wantDeg[i])
		}
	}

	adj := g.Adjacency()
	if len(adj[1]) != 2 || adj[1][0] != 0 || adj[1][1] != 2 {
		t.Errorf("adj[1] = %v, want [0 2]", adj[1])
	}
}

func TestDensity(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Graph
		want  float64
	}{
		{"empty", func() *Graph { return New(0) }, 0},
		{"single node", func() *Graph {
			g := New(1)
			g.AddNode(Node{Weight: 1})
			return g
		}, 0},
		{"complete triangle", func() *Graph {
			g := New(3)
			for i := 0; i < 3; i++ {
				g.AddNode(Node{Weight: 1})
			}
			_ = g.AddEdge(0, 1)
			_ = g.AddEdge(1, 2)
			_ = g.AddEdge(0, 2)
			return g
		}, 1},
		{"path of four", func() *Graph { return buildPath([]float64{1, 1, 1, 1}) }, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.build().Density(); got != tt.want {
				t.Errorf("Density() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	g := buildPath([]float64{1, 1, 1})
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	// Corrupt the edge list directly: AddEdge would reject these.
	g.Edges = append(g.Edges, Edge{U: 0, V: 99})
	if err := g.Validate(); !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Errorf("Validate() = %v, want INVALID_GRAPH", err)
	}

	g.Edges = []Edge{{U: 1, V: 1}}
	if err := g.Validate(); !errors.Is(err, errors.ErrCodeInvalidGraph) {
		t.Errorf("Validate() with self-loop = %v, want INVALID_GRAPH", err)
	}
}

func TestTotalWeight(t *testing.T) {
	g := buildPath([]float64{1.5, 2.5, 1})
	if got := g.TotalWeight(); got != 5 {
		t.Errorf("TotalWeight() = %v, want 5", got)
	}
}
