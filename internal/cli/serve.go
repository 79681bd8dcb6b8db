package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphwiz/pkg/render/dot"
	"github.com/matzehuels/graphwiz/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	var noCache bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP render service",
		Long: `Serve accepts manifests on POST /v1/render and answers with DOT or an image.
See package server for the full route list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := c.config()
			if !cmd.Flags().Changed("addr") {
				addr = cfg.Server.Addr
			}

			lc, err := c.newCache(ctx, noCache)
			if err != nil {
				return err
			}
			defer lc.Close()

			s := server.New(
				server.WithCache(lc, cfg.Cache.TTL.Duration),
				server.WithDefaults(dot.Options{Directed: cfg.Render.Directed, Strict: cfg.Render.Strict}),
				server.WithMaxBodySize(cfg.Server.MaxBodySize),
				server.WithTimeout(cfg.Server.Timeout.Duration),
			)
			loggerFromContext(ctx).Infof("Listening on %s", addr)
			return s.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the layout cache")
	return cmd
}
