// ABOUTME: Value formatting helpers for terminal reports.
// ABOUTME: Durations, percents, contributor keys, distances, and clock times.
package report

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
)

// Placeholder is shown wherever a value has not been computed yet.
const Placeholder = "--"

// FormatDuration renders whole seconds as "7h 05m", or "42m" under an hour.
// Zero and negative values render as "0m".
func FormatDuration(seconds int) string {
	if seconds <= 0 {
		return "0m"
	}
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %02dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}

// FormatPercent renders part/total as a rounded integer percent.
func FormatPercent(part, total int) string {
	if total == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", int(math.Round(float64(part)/float64(total)*100)))
}

// upperTokens are rendered fully upper-cased in contributor names.
var upperTokens = map[string]bool{
	"hrv":  true,
	"hr":   true,
	"spo2": true,
}

// PrettifyKey turns "hrv_balance" into "HRV Balance".
func PrettifyKey(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if upperTokens[p] {
			parts[i] = strings.ToUpper(p)
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		if size == 0 {
			continue
		}
		parts[i] = string(unicode.ToUpper(r)) + p[size:]
	}
	return strings.Join(parts, " ")
}

// FormatNumber groups thousands: 12345 -> "12,345".
func FormatNumber(n int) string {
	return humanize.Comma(int64(n))
}

// FormatDistance converts meters to kilometers at one decimal.
func FormatDistance(meters int) string {
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}

// FormatTemperature shows a signed deviation at one decimal.
func FormatTemperature(delta float64) string {
	return fmt.Sprintf("%+.1f°C", delta)
}

// FormatBPM rounds a heart rate to the nearest beat.
func FormatBPM(bpm float64) string {
	return fmt.Sprintf("%d bpm", int(math.Round(bpm)))
}

// FormatBreath shows breaths per minute at one decimal.
func FormatBreath(rpm float64) string {
	return fmt.Sprintf("%.1f rpm", rpm)
}

// FormatClock extracts "23:15" from an ISO-8601 timestamp, keeping the
// timestamp's own offset. Unparseable input is returned unchanged.
func FormatClock(iso string) string {
	if t, err := time.Parse(time.RFC3339, iso); err == nil {
		return t.Format("15:04")
	}
	if i := strings.IndexByte(iso, 'T'); i >= 0 && len(iso)-(i+1) >= 5 {
		return iso[i+1 : i+6]
	}
	return iso
}
