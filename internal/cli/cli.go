// Package cli implements the graphwiz command-line interface.
//
// Commands build graphs from manifest files (TOML, JSON or YAML) and render
// them as DOT text or, through Graphviz, as images:
//   - render: write DOT, SVG, PNG, JPG or PDF
//   - validate: check manifests without rendering
//   - attrs: list known DOT attribute names
//   - browse: explore a manifest's scopes interactively
//   - serve: run the HTTP render service
//   - cache: inspect or clear the layout cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// passed through context.Context, and library events reach it through the
// observability hooks.
//
// # Configuration
//
// Defaults come from the config file (see package config) and are
// overridden by flags.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwiz/internal/config"
	"github.com/matzehuels/graphwiz/pkg/buildinfo"
	"github.com/matzehuels/graphwiz/pkg/cache"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// layoutKeyType labels layout entries in cache hooks.
const layoutKeyType = "layout"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	errOut     io.Writer
	configPath string
	cfg        *config.Config
}

// New creates a CLI that prints results to out and logs to errOut.
func New(out, errOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errOut, level),
		out:    out,
		errOut: errOut,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          config.AppName,
		Short:        "graphwiz builds Graphviz graphs from declarative manifests",
		Long:         `graphwiz turns TOML, JSON or YAML graph manifests into Graphviz DOT text and, through an embedded Graphviz, into SVG, PNG, JPG or PDF images.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			installHooks(c.Logger)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/graphwiz/config.toml)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.attrsCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// config returns the loaded configuration, or the defaults before loading.
func (c *CLI) config() *config.Config {
	if c.cfg == nil {
		return config.Default()
	}
	return c.cfg
}

// newCache opens the layout cache selected by the configuration: Redis when a
// URL is configured, files otherwise, nothing when disabled.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	cfg := c.config()
	if noCache || !cfg.Cache.Enabled {
		return cache.NewNullCache(), nil
	}
	if cfg.Cache.RedisURL != "" {
		rc, err := cache.NewRedisCache(ctx, cfg.Cache.RedisURL)
		if err != nil {
			return nil, err
		}
		loggerFromContext(ctx).Debug("using redis cache")
		return cache.Observed(rc, layoutKeyType), nil
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, err
	}
	loggerFromContext(ctx).Debug("using file cache", "dir", dir)
	return cache.Observed(fc, layoutKeyType), nil
}
