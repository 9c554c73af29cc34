// ABOUTME: CLI command for the daily stress report.
// ABOUTME: Shows the day summary and time spent stressed and recovering.
package main

import (
	"github.com/spf13/cobra"
)

var stressCmd = &cobra.Command{
	Use:   "stress [date]",
	Short: "Daily stress summary",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveArg(args)
		if err != nil {
			return err
		}

		rec, err := svc.Stress(cmd.Context(), day)
		if err != nil {
			return err
		}

		newRenderer(cmd).Stress(rec)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(stressCmd)
}
