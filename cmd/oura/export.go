// ABOUTME: CLI command for exporting a window of Oura data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/oura/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportDays   int
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export scores and daily summaries",
	Long: `Export the daily sleep, readiness, and activity summaries for the last
N days together with the joined score trend.

FORMATS:

  json       Full JSON export (default)
  yaml       YAML export (human-readable)
  markdown   Markdown score table (for notes and sharing)

OPTIONS:

  --days, -d     Number of days ending today (default 7)
  --format, -f   Output format
  --output, -o   Write to file instead of stdout

EXAMPLES:

  oura export                         # Last 7 days as JSON
  oura export -d 30 -f yaml           # Last 30 days as YAML
  oura export -f markdown -o week.md  # Save a Markdown table`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		if exportDays < 0 {
			return fmt.Errorf("days must not be negative: %d", exportDays)
		}

		window, err := svc.Window(cmd.Context(), resolver.TrailingWindow(exportDays))
		if err != nil {
			return err
		}

		data, err := export.Marshal(export.Build(window, time.Now()), format)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), color.GreenString("✓ Exported %d days to %s", window.Range.Len(), exportOutput))
			return nil
		}

		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	exportCmd.Flags().IntVarP(&exportDays, "days", "d", 7, "number of days to export")
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json, yaml, or markdown")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
