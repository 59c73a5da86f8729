// Package gen produces synthetic weighted graphs under one of three topology
// families: Erdős–Rényi random graphs, ring lattices with fixed degree, and
// Barabási–Albert-style scale-free graphs grown by preferential attachment.
//
// Generation is fully deterministic given a seed: the same Options always
// produce the same graph. Randomness comes from an explicitly seeded PCG
// source, never from the global generator.
package gen

import (
	"math"
	"math/rand/v2"

	"github.com/shorfin/wisent/pkg/errors"
	"github.com/shorfin/wisent/pkg/graph"
)

// Topology selects the family of synthetic graph to generate.
type Topology string

const (
	// TopologyRandom is an Erdős–Rényi graph: every unordered node pair is
	// connected with independent probability Options.Probability.
	TopologyRandom Topology = "random"

	// TopologyRegular is a ring lattice: node i connects to the next
	// RegularDegree nodes (mod n), so every node has degree 2*RegularDegree
	// once wrap-around duplicates are collapsed.
	TopologyRegular Topology = "regular"

	// TopologyScaleFree grows a Barabási–Albert-style graph: a complete seed
	// clique followed by nodes that attach preferentially to high-degree nodes.
	TopologyScaleFree Topology = "scale-free"
)

// ValidateTopology returns an INVALID_TOPOLOGY error for unknown names.
func ValidateTopology(t Topology) error {
	switch t {
	case TopologyRandom, TopologyRegular, TopologyScaleFree:
		return nil
	}
	return errors.New(errors.ErrCodeInvalidTopology, "unknown topology %q (want random, regular, or scale-free)", t)
}

// Structural parameters of the non-random topologies.
const (
	// RegularDegree is the per-direction connection count of the ring lattice.
	RegularDegree = 3

	// ScaleFreeSeedSize is the size of the initial complete clique.
	ScaleFreeSeedSize = 3

	// ScaleFreeAttach is the number of edges each new node attaches with.
	ScaleFreeAttach = 2
)

// Node weights are drawn uniformly from [WeightMin, WeightMax).
const (
	WeightMin = 0.5
	WeightMax = 2.0
)

// Options configures graph generation.
type Options struct {
	Nodes       int      // node count, n >= 0
	Probability float64  // edge probability in [0,1]; random topology only
	Topology    Topology // topology family
	Seed        uint64   // RNG seed; identical seeds yield identical graphs
}

// Generate produces a synthetic graph per the options.
//
// Every node receives a weight uniform in [0.5, 2.0) and a position on a
// jittered circle; positions are rendering metadata only. The returned graph
// always satisfies graph.Validate: edges connect distinct in-range nodes and
// carry no duplicates.
//
// Returns INVALID_INPUT for a negative node count, INVALID_PROBABILITY for a
// probability outside [0,1], and INVALID_TOPOLOGY for an unknown topology.
func Generate(opts Options) (*graph.Graph, error) {
	if err := errors.ValidateNodeCount(opts.Nodes); err != nil {
		return nil, err
	}
	if err := errors.ValidateProbability(opts.Probability); err != nil {
		return nil, err
	}
	if err := ValidateTopology(opts.Topology); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))

	g := graph.New(opts.Nodes)
	for i := 0; i < opts.Nodes; i++ {
		g.AddNode(nodeAt(i, opts.Nodes, rng))
	}

	switch opts.Topology {
	case TopologyRandom:
		genRandom(g, opts.Probability, rng)
	case TopologyRegular:
		genRegular(g)
	case TopologyScaleFree:
		genScaleFree(g, rng)
	}

	return g, nil
}

// nodeAt builds node i of n: uniform weight and a position on a circle with
// a small radial jitter so rendered nodes don't overlap exactly.
func nodeAt(i, n int, rng *rand.Rand) graph.Node {
	angle := 2 * math.Pi * float64(i) / float64(max(n, 1))
	radius := 0.4 + 0.05*rng.Float64()
	return graph.Node{
		Weight: WeightMin + rng.Float64()*(WeightMax-WeightMin),
		X:      0.5 + radius*math.Cos(angle),
		Y:      0.5 + radius*math.Sin(angle),
	}
}

// genRandom connects every unordered pair (i,j), i<j, with independent
// probability p.
func genRandom(g *graph.Graph, p float64, rng *rand.Rand) {
	n := g.NodeCount()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				_ = g.AddEdge(i, j)
			}
		}
	}
}

// genRegular wires the ring lattice: node i to (i+1)..(i+RegularDegree) mod n.
// AddEdge collapses the duplicates the wrap-around would otherwise produce,
// so the edge set is deduplicated at construction.
func genRegular(g *graph.Graph) {
	n := g.NodeCount()
	for i := 0; i < n; i++ {
		for k := 1; k <= RegularDegree; k++ {
			j := (i + k) % n
			if j == i {
				continue // n <= RegularDegree wraps onto itself
			}
			_ = g.AddEdge(i, j)
		}
	}
}

// genScaleFree seeds a complete clique on the first ScaleFreeSeedSize nodes,
// then attaches each subsequent node with ScaleFreeAttach edges drawn by
// degree-proportional sampling without replacement.
func genScaleFree(g *graph.Graph, rng *rand.Rand) {
	n := g.NodeCount()
	m0 := min(ScaleFreeSeedSize, n)

	for i := 0; i < m0; i++ {
		for j := i + 1; j < m0; j++ {
			_ = g.AddEdge(i, j)
		}
	}

	for i := m0; i < n; i++ {
		degrees := g.Degrees()
		weights := make([]float64, i)
		for j := 0; j < i; j++ {
			weights[j] = float64(degrees[j])
		}

		targets := sampleWithoutReplacement(weights, min(ScaleFreeAttach, i), rng)
		for _, j := range targets {
			_ = g.AddEdge(i, j)
		}
	}
}
