// ABOUTME: Export of a date window of Oura data.
// ABOUTME: Supports JSON, YAML, and Markdown output formats.
package export

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/harperreed/oura/internal/models"
	"github.com/harperreed/oura/internal/report"
	"github.com/harperreed/oura/internal/summary"
	"github.com/harperreed/oura/internal/trend"
	"gopkg.in/yaml.v3"
)

const (
	// Version is the export document format version.
	Version = "1.0"
	tool    = "oura"
)

// Format selects the serialization of an export.
type Format string

const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts json, yaml/yml, and markdown/md.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unknown format %q (use json, yaml, or markdown)", s)
	}
}

// Averages holds the truncated per-family mean over present days.
type Averages struct {
	Sleep     *int `json:"sleep" yaml:"sleep"`
	Readiness *int `json:"readiness" yaml:"readiness"`
	Activity  *int `json:"activity" yaml:"activity"`
}

// Document is the full export format.
type Document struct {
	Version        string                  `json:"version" yaml:"version"`
	ExportedAt     time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool           string                  `json:"tool" yaml:"tool"`
	Start          civil.Date              `json:"start" yaml:"start"`
	End            civil.Date              `json:"end" yaml:"end"`
	Days           int                     `json:"days" yaml:"days"`
	Trend          []trend.Row             `json:"trend" yaml:"trend"`
	Averages       Averages                `json:"averages" yaml:"averages"`
	DailySleep     []models.DailySleep     `json:"daily_sleep" yaml:"daily_sleep"`
	DailyReadiness []models.DailyReadiness `json:"daily_readiness" yaml:"daily_readiness"`
	DailyActivity  []models.DailyActivity  `json:"daily_activity" yaml:"daily_activity"`
}

// Build assembles a Document from a fetched window.
func Build(w *summary.Window, exportedAt time.Time) *Document {
	doc := &Document{
		Version:        Version,
		ExportedAt:     exportedAt.UTC(),
		Tool:           tool,
		Start:          w.Range.Start,
		End:            w.Range.End,
		Days:           w.Range.Len(),
		Trend:          w.Table.Rows,
		DailySleep:     w.Sleep,
		DailyReadiness: w.Readiness,
		DailyActivity:  w.Activity,
		Averages: Averages{
			Sleep:     w.Table.Sleep.Mean(),
			Readiness: w.Table.Readiness.Mean(),
			Activity:  w.Table.Activity.Mean(),
		},
	}
	if doc.Trend == nil {
		doc.Trend = []trend.Row{}
	}
	if doc.DailySleep == nil {
		doc.DailySleep = []models.DailySleep{}
	}
	if doc.DailyReadiness == nil {
		doc.DailyReadiness = []models.DailyReadiness{}
	}
	if doc.DailyActivity == nil {
		doc.DailyActivity = []models.DailyActivity{}
	}
	return doc
}

// Marshal serializes the document in the given format.
func Marshal(doc *Document, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(out, '\n'), nil
	case FormatYAML:
		out, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return out, nil
	case FormatMarkdown:
		return []byte(Markdown(doc)), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Markdown renders the trend table of a document.
func Markdown(doc *Document) string {
	var sb strings.Builder

	sb.WriteString("# Oura Scores\n\n")
	fmt.Fprintf(&sb, "*%s to %s (%d days)*\n\n", doc.Start, doc.End, doc.Days)

	sb.WriteString("| Date | Sleep | Readiness | Activity |\n")
	sb.WriteString("|------|-------|-----------|----------|\n")
	for _, row := range doc.Trend {
		fmt.Fprintf(&sb, "| %s | %s | %s | %s |\n",
			row.Day, cell(row.Sleep), cell(row.Readiness), cell(row.Activity))
	}
	fmt.Fprintf(&sb, "| **Average** | %s | %s | %s |\n",
		cell(doc.Averages.Sleep), cell(doc.Averages.Readiness), cell(doc.Averages.Activity))

	return sb.String()
}

func cell(score *int) string {
	if score == nil {
		return report.Placeholder
	}
	return strconv.Itoa(*score)
}
