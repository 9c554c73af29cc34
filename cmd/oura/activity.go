// ABOUTME: CLI command for the activity report.
// ABOUTME: Shows steps, calories, distance, and time per intensity.
package main

import (
	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity [date]",
	Short: "Activity summary (steps, calories, movement)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveArg(args)
		if err != nil {
			return err
		}

		rec, err := svc.Activity(cmd.Context(), day)
		if err != nil {
			return err
		}

		newRenderer(cmd).Activity(rec)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(activityCmd)
}
