// ABOUTME: CLI commands for sleep detail and HRV.
// ABOUTME: Both read the day's sleep periods and prefer the main long sleep.
package main

import (
	"github.com/spf13/cobra"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep [date]",
	Short: "Detailed sleep breakdown",
	Long: `Show the main sleep period for a day: total sleep, efficiency, stage
durations with their share of total sleep, heart rate, HRV, and bedtime.

When the ring has produced a sleep score but the detailed periods have not
synced yet, the score and its contributors are shown instead.

EXAMPLES:

  oura sleep                # Last night
  oura sleep 2024-02-10     # A specific night`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveArg(args)
		if err != nil {
			return err
		}

		detail, err := svc.Sleep(cmd.Context(), day)
		if err != nil {
			return err
		}

		newRenderer(cmd).Sleep(detail.Daily, detail.Periods)
		return nil
	},
}

var hrvCmd = &cobra.Command{
	Use:   "hrv [date]",
	Short: "Heart rate variability from sleep",
	Long: `Show average HRV, heart rate, lowest heart rate, and breathing rate
from the day's main sleep period.

EXAMPLES:

  oura hrv                  # Last night
  oura hrv yesterday        # The night before`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveArg(args)
		if err != nil {
			return err
		}

		detail, err := svc.HRV(cmd.Context(), day)
		if err != nil {
			return err
		}

		newRenderer(cmd).HRV(detail.Daily, detail.Periods)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sleepCmd)
	rootCmd.AddCommand(hrvCmd)
}
