package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwiz/pkg/errors"
	"github.com/matzehuels/graphwiz/pkg/graph"
	"github.com/matzehuels/graphwiz/pkg/manifest"
	"github.com/matzehuels/graphwiz/pkg/render/dot"
	"github.com/matzehuels/graphwiz/pkg/render/layout"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var graphviz bool

	cmd := &cobra.Command{
		Use:   "validate <manifest>...",
		Short: "Check manifests without rendering them",
		Long: `Validate decodes and builds each manifest, reporting unknown keys, invalid or
duplicate ids, unknown references and edges to empty clusters.

With --graphviz the generated DOT is also parsed by Graphviz.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(cmd.Context(), args, graphviz)
		},
	}
	cmd.Flags().BoolVar(&graphviz, "graphviz", false, "also parse the generated DOT with Graphviz")
	return cmd
}

func (c *CLI) runValidate(ctx context.Context, paths []string, graphviz bool) error {
	failed := 0
	for _, path := range paths {
		if err := c.validateOne(ctx, path, graphviz); err != nil {
			printError(c.out, "%s", path)
			printDetail(c.out, "%s", err)
			failed++
		}
	}
	if failed > 0 {
		return errors.New(errors.ErrCodeInvalidManifest, "%d of %d manifests invalid", failed, len(paths))
	}
	return nil
}

func (c *CLI) validateOne(ctx context.Context, path string, graphviz bool) error {
	m, built, err := manifest.LoadFile(ctx, path)
	if err != nil {
		return err
	}
	if graphviz {
		text := dot.Render(built.Graph, m.RenderOptions(dot.Options{Directed: c.config().Render.Directed}))
		if err := layout.Validate(text); err != nil {
			return fmt.Errorf("graphviz: %w", err)
		}
	}

	g := built.Graph
	printSuccess(c.out, "%s", path)
	printStats(c.out, []count{
		{g.Count(graph.KindNode), "node"},
		{g.Count(graph.KindEdge), "edge"},
		{g.Count(graph.KindCluster), "cluster"},
		{g.Count(graph.KindSubgraph), "subgraph"},
	})
	return nil
}
