// ABOUTME: Root Cobra command for oura CLI.
// ABOUTME: Loads configuration and builds the API client via PersistentPreRunE.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cloud.google.com/go/civil"
	"github.com/fatih/color"
	"github.com/harperreed/oura/internal/config"
	"github.com/harperreed/oura/internal/dates"
	"github.com/harperreed/oura/internal/logging"
	"github.com/harperreed/oura/internal/oura"
	"github.com/harperreed/oura/internal/report"
	"github.com/harperreed/oura/internal/summary"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagDebug   bool
	flagNoColor bool

	// clock is the source of "today"; tests replace it.
	clock dates.Clock = dates.SystemClock{}

	logger   *zap.Logger
	resolver *dates.Resolver
	svc      *summary.Service
)

// isOffline reports whether cmd or one of its parents below the root never
// touches the API. Completion scripts live under "completion".
func isOffline(cmd *cobra.Command) bool {
	for c := cmd; c != nil && c.HasParent(); c = c.Parent() {
		if offline[c.Name()] {
			return true
		}
	}
	return false
}

// offline commands never touch the API.
var offline = map[string]bool{
	"help":          true,
	"install-skill": true,
	"completion":    true,
	"version":       true,

	cobra.ShellCompRequestCmd:       true,
	cobra.ShellCompNoDescRequestCmd: true,
}

var rootCmd = &cobra.Command{
	Use:   "oura",
	Short: "Oura Ring scores from your terminal",
	Long: `Oura is a CLI for reading sleep, readiness, activity, and stress data
from the Oura API v2.

REPORTS:

  $ oura                      # Sleep, readiness, and activity scores for today
  $ oura scores yesterday     # Same, for yesterday
  $ oura sleep 2024-02-10     # Detailed sleep breakdown
  $ oura readiness            # Readiness score and contributors
  $ oura activity             # Steps, calories, movement
  $ oura hrv                  # Heart rate variability from sleep
  $ oura stress               # Daily stress summary
  $ oura trend -d 14          # Score trend for the last 14 days

Dates are YYYY-MM-DD, "today", or "yesterday" and default to today.

SCRIPTING:

  $ oura json daily_sleep yesterday     # Raw API response
  $ oura json sleep --format yaml       # Raw response as YAML
  $ oura export -d 30 -f yaml -o x.yml  # Window of scores and summaries

CONFIGURATION:

  OURA_TOKEN      Personal access token (required)
                  https://cloud.ouraring.com/personal-access-tokens
  OURA_API_URL    API base URL (default https://api.ouraring.com)
  OURA_TIMEOUT    Request timeout, e.g. 10s (default 30s)

  Variables may also be placed in a .env file in the working directory.

MCP INTEGRATION:

  Run 'oura mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagNoColor {
			color.NoColor = true
		}
		resolver = dates.NewResolver(clock)

		if isOffline(cmd) {
			return nil
		}

		var err error
		logger, err = logging.New(flagDebug)
		if err != nil {
			return err
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		opts := cfg.ClientOptions()
		opts.Logger = logger
		client, err := oura.New(opts)
		if err != nil {
			return fmt.Errorf("failed to initialize oura client: %w", err)
		}
		svc = summary.New(client)

		logger.Debug("client ready",
			zap.String("command", cmd.Name()),
			zap.String("base_url", cfg.BaseURL),
			zap.Duration("timeout", cfg.Timeout))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			_ = logger.Sync()
		}
		return nil
	},
	RunE: runScores,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log API requests to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored output")
}

// Execute runs the root command with a context cancelled on SIGINT/SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// resolveArg resolves an optional date argument.
func resolveArg(args []string) (civil.Date, error) {
	token := ""
	if len(args) > 0 {
		token = args[0]
	}
	return resolver.Resolve(token)
}

func newRenderer(cmd *cobra.Command) *report.Renderer {
	return report.New(cmd.OutOrStdout())
}
