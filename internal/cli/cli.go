// Package cli implements the wisent command-line interface.
//
// This package provides commands for generating synthetic weighted graphs,
// solving the maximum weighted independent set heuristically, analyzing graph
// structure, benchmarking the solver, rendering diagrams, and serving the
// HTTP API. The CLI is built using cobra and supports verbose logging via
// the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Produce a synthetic graph (random, regular, or scale-free)
//   - solve: Run the greedy MWIS heuristic over a graph
//   - analyze: Compute structural statistics for a graph
//   - bench: Measure the solver across a sweep of graph sizes
//   - render: Draw a graph and its selection as DOT, SVG, or PNG
//   - serve: Run the HTTP API
//   - cache: Manage the rendered artifact cache
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shorfin/wisent/pkg/buildinfo"
	"github.com/shorfin/wisent/pkg/cache"
	"github.com/shorfin/wisent/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "wisent"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "wisent",
		Short:        "Wisent generates weighted graphs and approximates their heaviest independent sets",
		Long:         `Wisent is a toolkit for synthetic weighted graphs: generate them under random, regular, or scale-free topologies, approximate the maximum weighted independent set with a greedy heuristic, and report or render the results.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.analyzeCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCache(noCache), c.Logger)
}

func newCache(noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache()
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return cache.NewNullCache()
	}
	return fc
}

// cacheDir returns the cache directory using XDG standard (~/.cache/wisent/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
