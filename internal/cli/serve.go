package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/rshade/carbontrace/internal/logging"
	"github.com/rshade/carbontrace/internal/observability"
)

// NewServeCmd creates the serve command, which exposes the catalog as
// Prometheus gauges.
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve emission metrics over HTTP",
		Long: `Serves /metrics (Prometheus), /healthz and /readyz until interrupted. The
catalog is observed once at startup.`,
		Example: `  carbontrace serve
  carbontrace serve --addr 127.0.0.1:9000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			app := appFrom(cmd)
			if addr == "" {
				addr = app.Config.Serve.Addr
			}
			if addr == "" {
				addr = observability.DefaultAddr
			}

			cat, err := app.Catalog(ctx)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector())
			metrics := observability.NewMetrics(reg, app.Config.Classification)
			metrics.Observe(cat)

			server := observability.NewServer(addr, reg, metrics, *logging.FromContext(ctx))
			bound, err := server.Listen()
			if err != nil {
				return err
			}
			cmd.Printf("Serving metrics on http://%s/metrics\n", bound)
			return server.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from serve.addr, then "+observability.DefaultAddr+")")
	return cmd
}
