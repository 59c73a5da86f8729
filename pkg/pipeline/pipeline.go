// Package pipeline provides the core generate → solve → analyze → render
// pipeline shared by the CLI and the HTTP API. Centralizing this logic keeps
// behavior consistent across entry points: defaults, validation, and caching
// live here, not in the callers.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, logger)
//	opts := pipeline.Options{
//	    Nodes:       50,
//	    Probability: 0.3,
//	    Topology:    gen.TopologyRandom,
//	    Formats:     []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Individual stages are exposed too: Generate, Solve, Analyze, and Render can
// be called with an existing graph.
package pipeline

import (
	"github.com/shorfin/wisent/pkg/errors"
	"github.com/shorfin/wisent/pkg/gen"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultNodes is the default node count for generated graphs.
	DefaultNodes = 20

	// DefaultProbability is the default edge probability for random graphs.
	DefaultProbability = 0.3

	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)
)

// DefaultTopology is the default topology family.
const DefaultTopology = gen.TopologyRandom

// Format constants for output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
	FormatPNG = "png"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Generation options
	Nodes       int          `json:"nodes"`
	Probability float64      `json:"probability"`
	Topology    gen.Topology `json:"topology"`
	Seed        uint64       `json:"seed,omitempty"`

	// Render options
	Formats  []string `json:"formats,omitempty"`  // dot, svg, png; empty skips rendering
	Detailed bool     `json:"detailed,omitempty"` // weight/degree in node labels
	Pin      bool     `json:"pin,omitempty"`      // pin model positions in the layout

	// Analysis toggle
	Analyze bool `json:"analyze,omitempty"`
}

// Defaults returns Options populated with the package defaults.
func Defaults() Options {
	return Options{
		Nodes:       DefaultNodes,
		Probability: DefaultProbability,
		Topology:    DefaultTopology,
		Seed:        DefaultSeed,
	}
}

// Validate checks the options before any work is done.
func (o Options) Validate() error {
	if err := errors.ValidateNodeCount(o.Nodes); err != nil {
		return err
	}
	if err := errors.ValidateProbability(o.Probability); err != nil {
		return err
	}
	if err := gen.ValidateTopology(o.Topology); err != nil {
		return err
	}
	for _, f := range o.Formats {
		if err := errors.ValidateOutputFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// genOptions projects the pipeline options onto the generator.
func (o Options) genOptions() gen.Options {
	return gen.Options{
		Nodes:       o.Nodes,
		Probability: o.Probability,
		Topology:    o.Topology,
		Seed:        o.Seed,
	}
}
