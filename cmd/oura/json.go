// ABOUTME: CLI command for raw API output.
// ABOUTME: Prints any usercollection endpoint as indented JSON or YAML.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harperreed/oura/internal/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var jsonFormat string

var jsonCmd = &cobra.Command{
	Use:   "json <endpoint> [date]",
	Short: "Raw JSON from any endpoint (for piping)",
	Long: `Print the unmodified API response for an endpoint and day.

The endpoint is any Oura usercollection name, for example daily_sleep,
sleep, daily_readiness, daily_activity, daily_stress, or heartrate.

EXAMPLES:

  oura json daily_sleep                     # Today's daily sleep
  oura json sleep yesterday | jq '.data'    # Pipe into jq
  oura json daily_activity --format yaml    # YAML instead of JSON`,
	Args:              cobra.RangeArgs(1, 2),
	ValidArgsFunction: completeEndpoints,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(jsonFormat)
		if format != "json" && format != "yaml" {
			return fmt.Errorf("unknown format: %s (use json or yaml)", jsonFormat)
		}

		day, err := resolveArg(args[1:])
		if err != nil {
			return err
		}

		if !models.IsValidMetricFamily(args[0]) {
			logger.Debug("passing through untyped endpoint", zap.String("endpoint", args[0]))
		}

		body, err := svc.Raw(cmd.Context(), args[0], day)
		if err != nil {
			return err
		}

		out, err := encodeRaw(body, format)
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(cmd.OutOrStdout(), out)
		return err
	},
}

// completeEndpoints suggests the typed families for the first argument.
func completeEndpoints(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, f := range models.AllMetricFamilies {
		if strings.HasPrefix(string(f), toComplete) {
			out = append(out, string(f)+"\t"+models.FamilyLabels[f])
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

func encodeRaw(body any, format string) (string, error) {
	if format == "yaml" {
		data, err := yaml.Marshal(plainNumbers(body))
		if err != nil {
			return "", fmt.Errorf("encode yaml: %w", err)
		}
		return string(data), nil
	}

	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode json: %w", err)
	}
	return string(data) + "\n", nil
}

// plainNumbers replaces json.Number values with int64 or float64 so YAML
// emits them as numbers rather than strings.
func plainNumbers(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = plainNumbers(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = plainNumbers(val)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}

func init() {
	jsonCmd.Flags().StringVarP(&jsonFormat, "format", "f", "json", "output format: json or yaml")
	rootCmd.AddCommand(jsonCmd)
}
