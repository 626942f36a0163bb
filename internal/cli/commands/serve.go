package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/leapstack-labs/docnav/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the navigation tree over HTTP",
		Long: `Start an HTTP server exposing the navigation tree.

Endpoints:
  GET /api/nav               Full tree
  GET /api/pages             Every href in pre-order
  GET /api/find?path=HREF    Entry and active trail (404 when absent)
  GET /api/active?path=HREF  Top-level hrefs and whether each is active
  GET /metrics               Prometheus metrics
  GET /__reload              Live-reload event stream (with --watch)

Every request rebuilds the tree from disk.`,
		Example: `  # Serve on the default address
  docnav serve

  # Serve on all interfaces and push reloads on content changes
  docnav serve --host 0.0.0.0 --port 9000 --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd)
		},
	}

	defaults := getConfig().GetServerConfig()
	cmd.Flags().String("host", defaults.Host, "Address to listen on")
	cmd.Flags().Int("port", defaults.Port, "Port to listen on")
	cmd.Flags().Bool("watch", defaults.Watch, "Watch the content directory and push live-reload events")

	return cmd
}

func runServe(cmd *cobra.Command) error {
	cmdCtx := NewCommandContext(cmd)

	builder, err := cmdCtx.Builder()
	if err != nil {
		return err
	}

	srvCfg := cmdCtx.Cfg.GetServerConfig()
	srv := server.New(server.Config{
		Builder:    builder,
		ContentDir: cmdCtx.Cfg.ContentDir,
		Host:       srvCfg.Host,
		Port:       srvCfg.Port,
		Watch:      srvCfg.Watch,
		Logger:     cmdCtx.Logger,
	})

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := cmdCtx.Renderer
	r.Success(fmt.Sprintf("Serving %s at http://%s", cmdCtx.Cfg.ContentDir, srv.Addr()))
	if srvCfg.Watch {
		r.Println(r.Muted("Watching for changes. Press Ctrl+C to stop."))
	} else {
		r.Println(r.Muted("Press Ctrl+C to stop."))
	}

	return srv.Serve(ctx)
}
