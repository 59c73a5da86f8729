// Package mwis approximates the Maximum Weighted Independent Set of an
// undirected weighted graph.
//
// The solver is a deterministic one-pass greedy heuristic: it favors
// high-weight, low-connectivity nodes and never backtracks. The returned set
// is always a valid independent set, but carries no optimality guarantee —
// greedy selection can be arbitrarily far from the true optimum on
// adversarial graphs.
package mwis

import (
	"slices"

	"github.com/shorfin/wisent/pkg/errors"
	"github.com/shorfin/wisent/pkg/graph"
)

// Algorithm is the identifier reported alongside solutions.
const Algorithm = "greedy"

// Selection is the result of a solver run: an independent set of node
// identifiers and its total weight.
type Selection struct {
	Nodes  []int   `json:"nodes"`  // selected node IDs, ascending
	Weight float64 `json:"weight"` // sum of selected node weights
}

// Contains reports whether node id is part of the selection.
func (s Selection) Contains(id int) bool {
	_, found := slices.BinarySearch(s.Nodes, id)
	return found
}

// Solve returns a greedy approximation of the maximum weighted independent
// set of g. It is a pure function of the graph: identical graphs yield
// identical selections, with no hidden randomness.
//
// The heuristic scores each node as weight/(degree+1), processes nodes in
// descending score order (ties broken by ascending ID), selects any node not
// yet in conflict, and marks all of its neighbors conflicted. Conflicted
// nodes are skipped permanently.
//
// A malformed graph (edge referencing an out-of-range node, or a self-loop)
// fails fast with an INVALID_GRAPH error before any selection work.
func Solve(g *graph.Graph) (Selection, error) {
	if err := g.Validate(); err != nil {
		return Selection{}, err
	}

	n := g.NodeCount()
	if n == 0 {
		return Selection{Nodes: []int{}}, nil
	}

	degrees := g.Degrees()
	adj := g.Adjacency()

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	// Stable sort over ID-ordered input: equal scores keep ascending IDs.
	slices.SortStableFunc(order, func(a, b int) int {
		sa := score(g.Nodes[a].Weight, degrees[a])
		sb := score(g.Nodes[b].Weight, degrees[b])
		switch {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		}
		return 0
	})

	conflicted := make([]bool, n)
	sel := Selection{Nodes: []int{}}
	for _, id := range order {
		if conflicted[id] {
			continue
		}
		sel.Nodes = append(sel.Nodes, id)
		sel.Weight += g.Nodes[id].Weight
		for _, nb := range adj[id] {
			conflicted[nb] = true
		}
	}

	slices.Sort(sel.Nodes)
	return sel, nil
}

// score favors heavy, loosely connected nodes.
func score(weight float64, degree int) float64 {
	return weight / float64(degree+1)
}

// Verify checks that sel is a valid independent set of g: every selected ID
// is a valid node and no edge joins two selected nodes. It is the brute-force
// counterpart to Solve's by-construction guarantee, useful in tests and when
// accepting selections from external callers.
func Verify(g *graph.Graph, sel Selection) error {
	if err := g.Validate(); err != nil {
		return err
	}

	inSel := make(map[int]bool, len(sel.Nodes))
	for _, id := range sel.Nodes {
		if id < 0 || id >= g.NodeCount() {
			return errors.New(errors.ErrCodeInvalidGraph, "selected node %d outside [0,%d)", id, g.NodeCount())
		}
		inSel[id] = true
	}

	for _, e := range g.Edges {
		if inSel[e.U] && inSel[e.V] {
			return errors.New(errors.ErrCodeInvalidGraph, "nodes %d and %d are both selected but adjacent", e.U, e.V)
		}
	}
	return nil
}
