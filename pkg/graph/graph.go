package graph

import (
	"slices"

	"github.com/shorfin/wisent/pkg/errors"
)

// Node is a vertex in an undirected weighted graph. Node identifiers are
// dense integer indices: node i lives at Graph.Nodes[i]. The position fields
// are rendering metadata only and carry no semantic meaning for solvers.
//
// The zero value is usable but has weight 0; generators always assign a
// positive weight.
type Node struct {
	ID     int     `json:"id"`
	Weight float64 `json:"weight"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
}

// Edge is an unordered pair of distinct node identifiers.
// By convention generators store U < V, but consumers must not rely on it.
type Edge struct {
	U int
	V int
}

// Graph is an in-memory undirected weighted graph. Nodes are identified by
// their index into Nodes; Edges reference those indices.
//
// Graph is not safe for concurrent mutation. Solvers treat it as a snapshot:
// do not mutate a Graph while a selection is being computed from it.
type Graph struct {
	Nodes []Node
	Edges []Edge

	// index holds the normalized edge set for O(1) duplicate checks in
	// AddEdge. Built lazily from Edges, so graphs decoded straight into the
	// exported fields stay consistent.
	index map[Edge]struct{}
}

// New creates an empty graph with capacity for n nodes.
func New(n int) *Graph {
	return &Graph{Nodes: make([]Node, 0, n)}
}

// AddNode appends a node and returns its identifier.
// The node's ID field is overwritten with its index.
func (g *Graph) AddNode(n Node) int {
	n.ID = len(g.Nodes)
	g.Nodes = append(g.Nodes, n)
	return n.ID
}

// AddEdge records an undirected edge between u and v, normalized to u < v.
// Returns an INVALID_GRAPH error for self-loops or out-of-range endpoints.
// Duplicate edges are silently ignored, so edge multiplicity never exceeds one.
func (g *Graph) AddEdge(u, v int) error {
	if u == v {
		return errors.New(errors.ErrCodeInvalidGraph, "self-loop on node %d", u)
	}
	if u < 0 || u >= len(g.Nodes) || v < 0 || v >= len(g.Nodes) {
		return errors.New(errors.ErrCodeInvalidGraph, "edge (%d,%d) references a node outside [0,%d)", u, v, len(g.Nodes))
	}
	if u > v {
		u, v = v, u
	}

	if g.index == nil {
		g.index = make(map[Edge]struct{}, len(g.Edges))
		for _, ex := range g.Edges {
			if ex.U > ex.V {
				ex.U, ex.V = ex.V, ex.U
			}
			g.index[ex] = struct{}{}
		}
	}
	e := Edge{U: u, V: v}
	if _, dup := g.index[e]; dup {
		return nil
	}
	g.index[e] = struct{}{}
	g.Edges = append(g.Edges, e)
	return nil
}

// HasEdge reports whether an edge between u and v exists, in either order.
func (g *Graph) HasEdge(u, v int) bool {
	return slices.ContainsFunc(g.Edges, func(e Edge) bool {
		return (e.U == u && e.V == v) || (e.U == v && e.V == u)
	})
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Degrees returns the degree of every node, indexed by node ID.
// Each edge contributes one to both endpoints.
func (g *Graph) Degrees() []int {
	deg := make([]int, len(g.Nodes))
	for _, e := range g.Edges {
		deg[e.U]++
		deg[e.V]++
	}
	return deg
}

// Adjacency returns the neighbor list of every node, indexed by node ID.
// Neighbor lists are sorted ascending. The result is freshly allocated on
// every call.
func (g *Graph) Adjacency() [][]int {
	adj := make([][]int, len(g.Nodes))
	for _, e := range g.Edges {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}
	for i := range adj {
		slices.Sort(adj[i])
	}
	return adj
}

// Density returns the ratio of edges present to edges possible, in [0,1].
// Returns 0 for graphs with fewer than two nodes.
func (g *Graph) Density() float64 {
	n := len(g.Nodes)
	if n < 2 {
		return 0
	}
	return 2 * float64(len(g.Edges)) / (float64(n) * float64(n-1))
}

// TotalWeight returns the sum of all node weights.
func (g *Graph) TotalWeight() float64 {
	var total float64
	for _, n := range g.Nodes {
		total += n.Weight
	}
	return total
}

// Validate checks structural integrity and returns nil if the graph is
// well-formed. It verifies that every edge references two distinct node
// identifiers within [0, NodeCount). Solvers call this before doing any
// work so a malformed graph fails fast instead of misbehaving silently.
func (g *Graph) Validate() error {
	n := len(g.Nodes)
	for _, e := range g.Edges {
		if e.U < 0 || e.U >= n || e.V < 0 || e.V >= n {
			return errors.New(errors.ErrCodeInvalidGraph, "edge (%d,%d) references a node outside [0,%d)", e.U, e.V, n)
		}
		if e.U == e.V {
			return errors.New(errors.ErrCodeInvalidGraph, "self-loop on node %d", e.U)
		}
	}
	return nil
}
