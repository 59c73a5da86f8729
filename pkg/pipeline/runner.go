package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shorfin/wisent/pkg/analyze"
	"github.com/shorfin/wisent/pkg/cache"
	"github.com/shorfin/wisent/pkg/errors"
	"github.com/shorfin/wisent/pkg/gen"
	"github.com/shorfin/wisent/pkg/graph"
	"github.com/shorfin/wisent/pkg/mwis"
	"github.com/shorfin/wisent/pkg/render"
)

// artifactTTL bounds how long rendered artifacts stay cached.
const artifactTTL = 24 * time.Hour

// Result is the output of a pipeline run.
type Result struct {
	Graph     *graph.Graph
	Selection mwis.Selection
	Report    *analyze.Report   // nil unless Options.Analyze
	Artifacts map[string][]byte // format -> rendered bytes
	Cached    bool              // true if every artifact came from cache
	Elapsed   time.Duration
}

// Runner executes the pipeline with shared dependencies.
type Runner struct {
	cache  cache.Cache
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil cache disables artifact caching;
// a nil logger discards debug output.
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{cache: c, logger: logger}
}

// Execute runs the full pipeline: generate, solve, optionally analyze, and
// render any requested formats.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	start := time.Now()

	if err := opts.Validate(); err != nil {
		return nil, err
	}

	g, err := r.Generate(ctx, opts)
	if err != nil {
		return nil, err
	}

	sel, err := r.Solve(ctx, g)
	if err != nil {
		return nil, err
	}

	res := &Result{Graph: g, Selection: sel}

	if opts.Analyze {
		report, err := analyze.Analyze(g)
		if err != nil {
			return nil, err
		}
		res.Report = &report
	}

	if len(opts.Formats) > 0 {
		artifacts, cached, err := r.Render(ctx, g, sel, opts)
		if err != nil {
			return nil, err
		}
		res.Artifacts = artifacts
		res.Cached = cached
	}

	res.Elapsed = time.Since(start)
	r.logger.Debug("pipeline complete",
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"selected", len(sel.Nodes),
		"weight", sel.Weight,
		"elapsed", res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// Generate builds a synthetic graph from the options.
func (r *Runner) Generate(ctx context.Context, opts Options) (*graph.Graph, error) {
	g, err := gen.Generate(opts.genOptions())
	if err != nil {
		return nil, err
	}
	r.logger.Debug("generated graph",
		"topology", opts.Topology,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"seed", opts.Seed)
	return g, nil
}

// Solve runs the greedy heuristic over g.
func (r *Runner) Solve(ctx context.Context, g *graph.Graph) (mwis.Selection, error) {
	sel, err := mwis.Solve(g)
	if err != nil {
		return mwis.Selection{}, err
	}
	r.logger.Debug("solved", "selected", len(sel.Nodes), "weight", sel.Weight)
	return sel, nil
}

// Render produces the requested artifact formats for a solved graph.
// Raster formats (svg, png) are cached content-addressed: the key hashes the
// DOT text, which already encodes the graph, the selection, and the label
// options. The DOT text itself is cheap and always recomputed. The second
// return reports whether every requested artifact was served from cache.
func (r *Runner) Render(ctx context.Context, g *graph.Graph, sel mwis.Selection, opts Options) (map[string][]byte, bool, error) {
	dot := render.ToDOT(g, sel, render.Options{
		Detailed:     opts.Detailed,
		PinPositions: opts.Pin,
	})

	artifacts := make(map[string][]byte, len(opts.Formats))
	allCached := true
	for _, format := range opts.Formats {
		if format == FormatDOT {
			artifacts[FormatDOT] = []byte(dot)
			allCached = false
			continue
		}

		key := cache.Key("artifact", cache.Hash([]byte(dot)), format)
		if data, ok, err := r.cache.Get(ctx, key); err == nil && ok {
			r.logger.Debug("artifact cache hit", "format", format)
			artifacts[format] = data
			continue
		}
		allCached = false

		data, err := rasterize(ctx, dot, format)
		if err != nil {
			return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
		}
		artifacts[format] = data

		if err := r.cache.Set(ctx, key, data, artifactTTL); err != nil {
			r.logger.Debug("artifact cache write failed", "format", format, "err", err)
		}
	}
	return artifacts, allCached, nil
}

func rasterize(ctx context.Context, dot, format string) ([]byte, error) {
	switch format {
	case FormatSVG:
		return render.ToSVG(ctx, dot)
	case FormatPNG:
		return render.ToPNG(ctx, dot)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown output format %q", format)
}
