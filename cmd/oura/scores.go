// ABOUTME: CLI command for the headline daily scores.
// ABOUTME: Default command when oura is run without a subcommand.
package main

import (
	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [date]",
	Short: "Sleep, readiness, and activity scores (default)",
	Long: `Show the sleep, readiness, and activity scores for a day, followed by
readiness contributors and any notable body temperature deviation.

Scores are colored green at 85 and above, yellow from 70 to 84, and red
below 70. A score the ring has not computed yet shows as --.

EXAMPLES:

  oura scores               # Today
  oura scores yesterday     # Yesterday
  oura scores 2024-02-10    # A specific day`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	day, err := resolveArg(args)
	if err != nil {
		return err
	}

	scores, err := svc.Scores(cmd.Context(), day)
	if err != nil {
		return err
	}

	newRenderer(cmd).Scores(scores.Sleep, scores.Readiness, scores.Activity)
	return nil
}

func init() {
	rootCmd.AddCommand(scoresCmd)
}
