// ABOUTME: CLI command for the readiness report.
// ABOUTME: Shows score, temperature deviation, and contributors.
package main

import (
	"github.com/spf13/cobra"
)

var readinessCmd = &cobra.Command{
	Use:   "readiness [date]",
	Short: "Readiness score and contributors",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveArg(args)
		if err != nil {
			return err
		}

		rec, err := svc.Readiness(cmd.Context(), day)
		if err != nil {
			return err
		}

		newRenderer(cmd).Readiness(rec)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(readinessCmd)
}
