// Package cli implements the schematic command-line interface.
//
// The commands are:
//   - layout: Solve a netlist and write the placement as JSON or YAML
//   - render: Draw a netlist or a saved placement as TikZ, SVG, DOT, PDF or PNG
//   - check: Validate a netlist and report per-axis statistics
//   - inspect: Browse the placed nodes interactively
//   - cache: Manage the placement cache
//
// Settings come from the configuration file (see package config) and are
// overridden by flags.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/schematic/pkg/buildinfo"
	"github.com/matzehuels/schematic/pkg/cache"
	"github.com/matzehuels/schematic/pkg/config"
	"github.com/matzehuels/schematic/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "schematic"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	noCache    bool
	strict     bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Schematic places circuit elements on a grid",
		Long:         `Schematic computes 2-D coordinates for the terminals of two-terminal circuit elements from a netlist and draws the result as circuitikz, SVG or Graphviz output.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default: $XDG_CONFIG_HOME/schematic/config.toml)")
	root.PersistentFlags().BoolVar(&c.noCache, "no-cache", false, "disable the placement cache")
	root.PersistentFlags().BoolVar(&c.strict, "strict", false, "reject duplicate element names")

	// Register all subcommands
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the configuration file named by --config, or the default
// one when it exists.
func (c *CLI) loadConfig() error {
	var (
		cfg config.Config
		err error
	)
	if c.configPath != "" {
		cfg, err = config.Load(c.configPath)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}
	if c.strict {
		cfg.Layout.Strict = true
	}
	c.Config = cfg
	c.Logger.Debug("loaded configuration", "path", c.configPath, "cache", cfg.Cache.Backend)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	cc, err := c.newCache(ctx)
	if err != nil {
		return nil, err
	}
	keyer := cache.NewScopedKeyer(cache.NewDefaultKeyer(), buildinfo.Version+":")
	return pipeline.NewRunner(cc, keyer, c.Logger), nil
}

// newCache opens the configured cache backend. An unreachable Redis server
// degrades to no caching with a warning.
func (c *CLI) newCache(ctx context.Context) (cache.Cache, error) {
	cfg := c.Config.Cache
	if c.noCache || cfg.Backend == config.BackendNone {
		return cache.NewNullCache(), nil
	}

	switch cfg.Backend {
	case config.BackendRedis:
		rc, err := cache.NewRedisCache(ctx, cache.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			c.Logger.Warn("redis cache unavailable, continuing without cache", "addr", cfg.RedisAddr, "error", err)
			return cache.NewNullCache(), nil
		}
		return cache.WithTTL(rc, cfg.TTL.Duration), nil
	default:
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return cache.NewNullCache(), nil
			}
		}
		fc, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, fmt.Errorf("open cache %s: %w", dir, err)
		}
		return cache.WithTTL(fc, cfg.TTL.Duration), nil
	}
}

// pipelineOptions returns pipeline options seeded from the configuration.
func (c *CLI) pipelineOptions() pipeline.Options {
	r := c.Config.Render
	return pipeline.Options{
		Strict:      c.Config.Layout.Strict,
		Scale:       c.Config.Layout.Scale,
		Formats:     []string{r.Format},
		Engine:      r.SVGEngine,
		DrawLabels:  r.DrawLabels,
		DrawNodes:   r.DrawNodes,
		LabelNodes:  r.LabelNodes,
		PictureArgs: r.PictureArgs,
		Logger:      c.Logger,
	}
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/schematic/).
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

// readInput reads a netlist from path, or from stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, string, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return data, "<stdin>", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, err
	}
	return data, path, nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
// An empty string yields nil so the configured format applies.
func parseFormats(s string) []string {
	if s == "" {
		return nil
	}
	var formats []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			formats = append(formats, f)
		}
	}
	return formats
}
