package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/doodlesbykumbi/lockable-resources/pkg/config"
	"github.com/doodlesbykumbi/lockable-resources/pkg/server"
	"github.com/doodlesbykumbi/lockable-resources/pkg/server/endpoints"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a resources page session over HTTP",
	Long: `Serve a resources page session over HTTP.

Rows and permissions from --resources and --permissions (or the configured
resources_file and permissions_file) are loaded before the server starts.
Actions and note forms are forwarded to the configured url.

Example:
  lockctl serve --listen 127.0.0.1:8090`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to serve: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addSessionFlags(serveCmd)
	serveCmd.Flags().StringP("listen", "l", "", "listen address (default: listen_address)")
}

func serve(cmd *cobra.Command) error {
	cfg := config.Get()
	if err := cfg.Validate(); err != nil {
		return err
	}

	issuer := newIssuer(cfg)
	session, err := buildSession(context.Background(), cmd, cfg, newSubmitter(cfg, issuer), newFetcher(cfg, issuer))
	if err != nil {
		return err
	}

	listen := flagOr(cmd, "listen", cfg.ListenAddress)
	s := server.NewServer(session, listen)
	endpoints.RegisterAll(s)

	slog.Info("running session server", "address", listen, "url", cfg.URL)
	return s.Start()
}
