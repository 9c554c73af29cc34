// ABOUTME: Tests for window export.
// ABOUTME: Covers document assembly and JSON, YAML, and Markdown output.
package export

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/harperreed/oura/internal/dates"
	"github.com/harperreed/oura/internal/models"
	"github.com/harperreed/oura/internal/summary"
	"github.com/harperreed/oura/internal/trend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func intPtr(i int) *int { return &i }

var exportedAt = time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

func sampleWindow(t *testing.T) *summary.Window {
	t.Helper()

	var contributors models.Contributors
	require.NoError(t, json.Unmarshal([]byte(`{"total_sleep": 90, "deep_sleep": 70}`), &contributors))

	r := dates.Range{
		Start: civil.Date{Year: 2024, Month: 2, Day: 9},
		End:   civil.Date{Year: 2024, Month: 2, Day: 10},
	}
	sleep := []models.DailySleep{{Day: "2024-02-10", Score: intPtr(80), Contributors: contributors}}
	return &summary.Window{
		Range: r,
		Sleep: sleep,
		Table: trend.Join(r.Days(), sleep, nil, nil),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"yaml", FormatYAML},
		{"yml", FormatYAML},
		{"markdown", FormatMarkdown},
		{" md ", FormatMarkdown},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestBuild(t *testing.T) {
	doc := Build(sampleWindow(t), exportedAt)

	assert.Equal(t, Version, doc.Version)
	assert.Equal(t, "oura", doc.Tool)
	assert.Equal(t, 2, doc.Days)
	assert.Len(t, doc.Trend, 2)
	require.NotNil(t, doc.Averages.Sleep)
	assert.Equal(t, 80, *doc.Averages.Sleep)
	assert.Nil(t, doc.Averages.Readiness)
	assert.NotNil(t, doc.DailyReadiness)
	assert.Empty(t, doc.DailyReadiness)
}

func TestMarshalJSON(t *testing.T) {
	out, err := Marshal(Build(sampleWindow(t), exportedAt), FormatJSON)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(out, &parsed))

	assert.Equal(t, "1.0", parsed["version"])
	assert.Equal(t, "2024-02-09", parsed["start"])
	assert.Equal(t, "2024-02-10", parsed["end"])
	assert.Equal(t, "2024-02-10T12:00:00Z", parsed["exported_at"])
	assert.Equal(t, []any{}, parsed["daily_activity"])

	rows := parsed["trend"].([]any)
	require.Len(t, rows, 2)
	first := rows[0].(map[string]any)
	assert.Equal(t, "2024-02-09", first["day"])
	assert.Nil(t, first["sleep"])

	// contributors keep payload order
	assert.Contains(t, string(out), `"total_sleep": 90,`)
	assert.Less(t, strings.Index(string(out), "total_sleep"), strings.Index(string(out), "deep_sleep"))
}

func TestMarshalYAML(t *testing.T) {
	out, err := Marshal(Build(sampleWindow(t), exportedAt), FormatYAML)
	require.NoError(t, err)

	var parsed struct {
		Version string `yaml:"version"`
		Tool    string `yaml:"tool"`
		Start   string `yaml:"start"`
		Days    int    `yaml:"days"`
		Trend   []struct {
			Day   string `yaml:"day"`
			Sleep *int   `yaml:"sleep"`
		} `yaml:"trend"`
		Averages struct {
			Sleep *int `yaml:"sleep"`
		} `yaml:"averages"`
	}
	require.NoError(t, yaml.Unmarshal(out, &parsed))

	assert.Equal(t, "1.0", parsed.Version)
	assert.Equal(t, "oura", parsed.Tool)
	assert.Equal(t, "2024-02-09", parsed.Start)
	assert.Equal(t, 2, parsed.Days)
	require.Len(t, parsed.Trend, 2)
	assert.Nil(t, parsed.Trend[0].Sleep)
	require.NotNil(t, parsed.Trend[1].Sleep)
	assert.Equal(t, 80, *parsed.Trend[1].Sleep)
	require.NotNil(t, parsed.Averages.Sleep)
	assert.Equal(t, 80, *parsed.Averages.Sleep)

	text := string(out)
	assert.Less(t, strings.Index(text, "total_sleep"), strings.Index(text, "deep_sleep"))
}

func TestMarkdown(t *testing.T) {
	out, err := Marshal(Build(sampleWindow(t), exportedAt), FormatMarkdown)
	require.NoError(t, err)

	want := "# Oura Scores\n\n" +
		"*2024-02-09 to 2024-02-10 (2 days)*\n\n" +
		"| Date | Sleep | Readiness | Activity |\n" +
		"|------|-------|-----------|----------|\n" +
		"| 2024-02-09 | -- | -- | -- |\n" +
		"| 2024-02-10 | 80 | -- | -- |\n" +
		"| **Average** | 80 | -- | -- |\n"
	assert.Equal(t, want, string(out))
}

func TestMarkdownEmptyWindow(t *testing.T) {
	today := civil.Date{Year: 2024, Month: 2, Day: 10}
	r := dates.NewResolver(dates.FixedClock(today)).TrailingWindow(0)
	w := &summary.Window{Range: r, Table: trend.Join(r.Days(), nil, nil, nil)}

	md := Markdown(Build(w, exportedAt))
	assert.Contains(t, md, "(0 days)")
	assert.Contains(t, md, "| **Average** | -- | -- | -- |\n")
	assert.NotContains(t, md, "| 2024-")
}

func TestMarshalUnknownFormat(t *testing.T) {
	_, err := Marshal(Build(sampleWindow(t), exportedAt), Format("xml"))
	assert.Error(t, err)
}
