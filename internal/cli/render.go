package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwiz/internal/config"
	"github.com/matzehuels/graphwiz/pkg/manifest"
	"github.com/matzehuels/graphwiz/pkg/render/dot"
	"github.com/matzehuels/graphwiz/pkg/render/layout"
)

// stdoutPath selects standard output for -o.
const stdoutPath = "-"

// renderOpts holds the command-line flags for the render command.
// Flags left unset fall back to the [render] section of the config file.
type renderOpts struct {
	output     string // output file; "-" for stdout
	format     string // dot, svg, png, jpg or pdf
	engine     string // Graphviz layout engine
	responsive bool   // scale SVG output with its container
	noCache    bool   // bypass the layout cache

	directed, strict       bool
	setDirected, setStrict bool // whether the flags were given
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <manifest>",
		Short: "Render a manifest to DOT or an image",
		Long: `Render builds the graph described by a manifest and writes it as DOT text
or lays it out with Graphviz.

DOT output goes to stdout unless -o is given. Images are written next to the
manifest (graph.toml -> graph.svg) unless -o is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.config().Render
			if !cmd.Flags().Changed("format") {
				opts.format = cfg.Format
			}
			if !cmd.Flags().Changed("engine") {
				opts.engine = cfg.Engine
			}
			if !cmd.Flags().Changed("responsive") {
				opts.responsive = cfg.Responsive
			}
			opts.setDirected = cmd.Flags().Changed("directed")
			opts.setStrict = cmd.Flags().Changed("strict")
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (- for stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.FormatDOT, "output format: dot, svg, png, jpg, pdf")
	cmd.Flags().StringVar(&opts.engine, "engine", string(layout.EngineDot), "Graphviz layout engine")
	cmd.Flags().BoolVar(&opts.directed, "directed", true, "emit a digraph (overrides the manifest)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "emit a strict graph (overrides the manifest)")
	cmd.Flags().BoolVar(&opts.responsive, "responsive", false, "scale SVG output with its container")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the layout cache")

	cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return formatNames(), cobra.ShellCompDirectiveNoFileComp
	})
	cmd.RegisterFlagCompletionFunc("engine", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, e := range layout.Engines() {
			names = append(names, string(e))
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func formatNames() []string {
	names := []string{config.FormatDOT}
	for _, f := range layout.Formats() {
		names = append(names, string(f))
	}
	return names
}

// dotOptions resolves the DOT flavor: flags, then the manifest, then config.
func (c *CLI) dotOptions(m *manifest.Manifest, opts *renderOpts) dot.Options {
	cfg := c.config().Render
	out := m.RenderOptions(dot.Options{Directed: cfg.Directed, Strict: cfg.Strict})
	if opts.setDirected {
		out.Directed = opts.directed
	}
	if opts.setStrict {
		out.Strict = opts.strict
	}
	return out
}

// runRender loads the manifest at input and writes it in the requested format.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	m, built, err := manifest.LoadFile(ctx, input)
	if err != nil {
		return err
	}
	text := dot.Render(built.Graph, c.dotOptions(m, opts))
	logger.Debugf("Built %s: %d entities", input, built.Count())

	var data []byte
	if opts.format == config.FormatDOT {
		data = []byte(text + "\n")
	} else {
		data, err = c.layout(ctx, text, opts)
		if err != nil {
			return err
		}
	}

	path := opts.output
	if path == "" {
		if opts.format == config.FormatDOT {
			path = stdoutPath
		} else {
			path = basePath(input) + "." + opts.format
		}
	}
	if err := c.writeOutput(path, data); err != nil {
		return err
	}
	if path != stdoutPath {
		prog.done("Generated " + path)
	}
	return nil
}

func (c *CLI) layout(ctx context.Context, text string, opts *renderOpts) ([]byte, error) {
	format, err := layout.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	engine, err := layout.ParseEngine(opts.engine)
	if err != nil {
		return nil, err
	}

	lc, err := c.newCache(ctx, opts.noCache)
	if err != nil {
		return nil, err
	}
	defer lc.Close()

	spinner := newSpinner(ctx, c.errOut, fmt.Sprintf("Laying out with %s", engine))
	spinner.Start()
	defer spinner.Stop()

	return layout.Render(ctx, text, layout.Options{
		Format:     format,
		Engine:     engine,
		Responsive: opts.responsive,
		Cache:      lc,
		TTL:        c.config().Cache.TTL.Duration,
	})
}

// basePath strips the manifest extension from input.
func basePath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input))
}

func (c *CLI) writeOutput(path string, data []byte) error {
	if path == stdoutPath {
		_, err := c.out.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
