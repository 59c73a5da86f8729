// Package config loads optional TOML configuration for the wisent CLI and
// server. Every field has a default; a missing config file is not an error.
// CLI flags override file values.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/shorfin/wisent/pkg/errors"
	"github.com/shorfin/wisent/pkg/gen"
	"github.com/shorfin/wisent/pkg/pipeline"
)

// DefaultFilename is the config file looked up in the working directory and
// under the user config dir (~/.config/wisent/).
const DefaultFilename = "wisent.toml"

// Config is the full application configuration.
type Config struct {
	Server   Server   `toml:"server"`
	Generate Generate `toml:"generate"`
	Render   Render   `toml:"render"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `toml:"addr"`
}

// Generate configures graph-generation defaults.
type Generate struct {
	Nodes       int     `toml:"nodes"`
	Probability float64 `toml:"probability"`
	Topology    string  `toml:"topology"`
	Seed        uint64  `toml:"seed"`
}

// Render configures rendering defaults.
type Render struct {
	Format   string `toml:"format"`
	Detailed bool   `toml:"detailed"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{Addr: ":8080"},
		Generate: Generate{
			Nodes:       pipeline.DefaultNodes,
			Probability: pipeline.DefaultProbability,
			Topology:    string(pipeline.DefaultTopology),
			Seed:        pipeline.DefaultSeed,
		},
		Render: Render{Format: pipeline.FormatSVG},
	}
}

// Load reads configuration from path. An empty path searches the default
// locations; a missing file in that case yields Default().
// Invalid TOML or invalid values fail with an INVALID_CONFIG error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		found, ok := findDefault()
		if !ok {
			return cfg, nil
		}
		path = found
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if err := errors.ValidateNodeCount(c.Generate.Nodes); err != nil {
		return err
	}
	if err := errors.ValidateProbability(c.Generate.Probability); err != nil {
		return err
	}
	if err := gen.ValidateTopology(gen.Topology(c.Generate.Topology)); err != nil {
		return err
	}
	if err := errors.ValidateOutputFormat(c.Render.Format); err != nil {
		return err
	}
	return nil
}

// findDefault looks for wisent.toml in the working directory, then under the
// user config dir.
func findDefault() (string, bool) {
	if _, err := os.Stat(DefaultFilename); err == nil {
		return DefaultFilename, true
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(dir, "wisent", DefaultFilename)
	if _, err := os.Stat(path); err == nil {
		return path, true
	}
	return "", false
}
