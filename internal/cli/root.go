package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/streamstats/internal/infrastructure/config"
	"github.com/emiliopalmerini/streamstats/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "streamstats",
	Short: "Netflix viewing history analytics",
	Long: `streamstats turns the ViewingActivity.csv of a Netflix data export into
per-profile charts: hours watched per month and per week, the share of
hours per weekday, and a monthly comparison across every profile.

Download your data from https://www.netflix.com/account/getmyinfo, unpack
the archive and find ViewingActivity.csv under CONTENT_INTERACTION.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

var (
	logLevel  string
	logPretty bool
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from STREAMSTATS_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&logPretty, "log-pretty", true, "Human readable log output instead of JSON")
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		loaded.Log.Level = logLevel
	}
	if cmd.Flags().Changed("log-pretty") {
		loaded.Log.Pretty = logPretty
	}
	if err := logger.Initialize(loaded.Log.Level, loaded.Log.Pretty); err != nil {
		return fmt.Errorf("invalid log level %q: %w", loaded.Log.Level, err)
	}
	cfg = loaded
	return nil
}
