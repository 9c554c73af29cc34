// ABOUTME: CLI command for the multi-day score trend.
// ABOUTME: Joins sleep, readiness, and activity by day with an average row.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trendDays int

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Score trend over the last N days (default: 7)",
	Long: `Show sleep, readiness, and activity scores for each of the last N days,
ending today, followed by the average of each column. Days without a score
show as -- and are left out of that column's average.

EXAMPLES:

  oura trend                # Last 7 days
  oura trend -d 30          # Last 30 days`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if trendDays < 0 {
			return fmt.Errorf("days must not be negative: %d", trendDays)
		}

		table, err := svc.Trend(cmd.Context(), resolver.TrailingWindow(trendDays))
		if err != nil {
			return err
		}

		newRenderer(cmd).Trend(table)
		return nil
	},
}

func init() {
	trendCmd.Flags().IntVarP(&trendDays, "days", "d", 7, "number of days to show")
	rootCmd.AddCommand(trendCmd)
}
