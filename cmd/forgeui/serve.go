package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/forgeui/internal/server"
)

type serveOptions struct {
	addr    string
	origins []string
}

func newServeCmd(root *rootFlags) *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generation API over HTTP",
		Long: `Start an HTTP server exposing the catalog and the generate and export
operations under /api for a browser-based builder.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, "info")
			if err != nil {
				return err
			}

			origins := opts.origins
			if len(origins) == 0 {
				origins = server.DefaultOrigins
			}
			srv := server.New(app.Exporter, app.Catalog, server.Options{Origins: origins, Log: app.Log})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app.Log.WithFields(map[string]any{"addr": opts.addr}).Info("serving forgeui api")
			if err := srv.Run(ctx, opts.addr); err != nil {
				return newCommandError("serve", opts.addr, err, "Choose a free port with --addr.")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringSliceVar(&opts.origins, "origin", nil, "Allowed CORS origin (repeatable)")

	return cmd
}
