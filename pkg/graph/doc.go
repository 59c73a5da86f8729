// Package graph defines the in-memory undirected weighted graph model shared
// by the generators, solvers, and renderers.
//
// Nodes carry a positive weight and an optional 2-D position used only for
// rendering. Node identifiers are dense integer indices, so Nodes[i].ID == i
// holds for every well-formed graph.
//
// The package also provides the canonical JSON serialization used by the CLI
// and the HTTP API:
//
//	{
//	  "nodes": [{"id": 0, "weight": 1.2, "x": 0.5, "y": 0.1}, ...],
//	  "edges": [[0, 1], [1, 2], ...]
//	}
//
// Edges serialize as two-element arrays, matching the wire format consumed by
// external reporting layers.
package graph
