package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/streamstats/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web dashboard",
	Long: `Start the web dashboard. Upload a ViewingActivity.csv or load the example
data to see the charts in the browser.

Examples:
  streamstats serve              # Start on the configured port (default 8080)
  streamstats serve --port 3000  # Start on port 3000`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from STREAMSTATS_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Create context that cancels on interrupt
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	svc, closeMetrics := newService(ctx)
	defer closeMetrics()

	opts := web.Options{
		Port:            cfg.Server.Port,
		MaxUploadBytes:  cfg.Server.MaxUploadBytes(),
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}
	if servePort != 0 {
		opts.Port = servePort
	}

	go func() {
		<-ctx.Done()
		log.Info().Msg("Shutting down...")
	}()

	server := web.NewServer(svc, opts)
	return server.Start(ctx)
}
