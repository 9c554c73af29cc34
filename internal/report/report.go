// ABOUTME: Terminal report rendering for daily summaries and trends.
// ABOUTME: Missing data renders as placeholders, never as an error.
package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/harperreed/oura/internal/dates"
	"github.com/harperreed/oura/internal/models"
	"github.com/harperreed/oura/internal/trend"
)

// Label widths per report, including the trailing colon.
const (
	sleepLabelWidth       = 13
	readinessLabelWidth   = 17
	activityLabelWidth    = 16
	stressLabelWidth      = 16
	contributorLabelWidth = 24

	trendDateWidth      = 12
	trendSleepWidth     = 7
	trendReadinessWidth = 11
	trendActivityWidth  = 10
)

// temperatureNotable is the smallest deviation shown on the scores view.
const temperatureNotable = 0.5

// Renderer writes reports to w. It never modifies the records it reads.
type Renderer struct {
	w       io.Writer
	palette Palette
}

// New returns a Renderer using the default palette.
func New(w io.Writer) *Renderer {
	return &Renderer{w: w, palette: NewPalette()}
}

// NewWithPalette returns a Renderer using the given colours.
func NewWithPalette(w io.Writer, p Palette) *Renderer {
	return &Renderer{w: w, palette: p}
}

func (r *Renderer) line(format string, args ...any) {
	fmt.Fprintf(r.w, "  "+format+"\n", args...)
}

func (r *Renderer) blank() {
	fmt.Fprintln(r.w)
}

func (r *Renderer) field(width int, label, value string) {
	r.line("%-*s%s", width, label+":", value)
}

func (r *Renderer) note(text string) {
	r.line("%s", r.palette.Faint.Sprint(text))
}

// Contributors prints one line per integer-valued contributor in payload
// order. Null values are skipped.
func (r *Renderer) Contributors(c models.Contributors) {
	for _, item := range c {
		if item.Value == nil {
			continue
		}
		r.line("%-*s%s", contributorLabelWidth, PrettifyKey(item.Key), r.palette.Score(*item.Value))
	}
}

// Scores prints the three headline scores plus readiness contributors and
// a notable temperature deviation.
func (r *Renderer) Scores(sleep *models.DailySleep, readiness *models.DailyReadiness, activity *models.DailyActivity) {
	var s, rd, a *int
	if sleep != nil {
		s = sleep.Score
	}
	if readiness != nil {
		rd = readiness.Score
	}
	if activity != nil {
		a = activity.Score
	}

	r.line("Sleep %s  Readiness %s  Activity %s",
		r.palette.OptionalScore(s),
		r.palette.OptionalScore(rd),
		r.palette.OptionalScore(a))

	if readiness == nil {
		return
	}

	if readiness.Contributors != nil {
		r.blank()
		r.note("Readiness contributors:")
		r.Contributors(readiness.Contributors)
	}

	if t := readiness.TemperatureDeviation; t != nil && math.Abs(*t) >= temperatureNotable {
		r.field(readinessLabelWidth, "Temp Deviation", FormatTemperature(*t))
	}
}

// Sleep prints the detailed breakdown of the main sleep period. With no
// periods it falls back to the daily score and contributors.
func (r *Renderer) Sleep(daily *models.DailySleep, periods []models.SleepPeriod) {
	period := models.MainSleep(periods)
	if period == nil {
		r.sleepFallback(daily)
		return
	}

	if daily != nil && daily.Score != nil {
		r.field(sleepLabelWidth, "Sleep Score", r.palette.Score(*daily.Score))
	}

	total := 0
	if period.TotalSleepDuration != nil {
		total = *period.TotalSleepDuration
	}
	r.field(sleepLabelWidth, "Total Sleep", FormatDuration(total))

	if v := period.TimeInBed; v != nil {
		r.field(sleepLabelWidth, "Time in Bed", FormatDuration(*v))
	}
	if v := period.Efficiency; v != nil {
		r.field(sleepLabelWidth, "Efficiency", fmt.Sprintf("%d%%", *v))
	}
	if v := period.Latency; v != nil {
		r.field(sleepLabelWidth, "Latency", FormatDuration(*v))
	}

	stages := []struct {
		label string
		value *int
	}{
		{"Deep", period.DeepSleepDuration},
		{"REM", period.RemSleepDuration},
		{"Light", period.LightSleepDuration},
	}
	for _, st := range stages {
		if st.value == nil {
			continue
		}
		r.field(sleepLabelWidth, st.label,
			fmt.Sprintf("%s (%s)", FormatDuration(*st.value), FormatPercent(*st.value, total)))
	}
	if v := period.AwakeTime; v != nil {
		r.field(sleepLabelWidth, "Awake", FormatDuration(*v))
	}

	if v := period.AverageHRV; v != nil {
		r.field(sleepLabelWidth, "Avg HRV", fmt.Sprintf("%d ms", *v))
	}
	if v := period.AverageHeartRate; v != nil {
		r.field(sleepLabelWidth, "Avg HR", FormatBPM(*v))
	}
	if v := period.LowestHeartRate; v != nil {
		r.field(sleepLabelWidth, "Lowest HR", fmt.Sprintf("%d bpm", *v))
	}

	if period.BedtimeStart != nil && period.BedtimeEnd != nil {
		r.field(sleepLabelWidth, "Bedtime",
			fmt.Sprintf("%s → %s", FormatClock(*period.BedtimeStart), FormatClock(*period.BedtimeEnd)))
	}
}

func (r *Renderer) sleepFallback(daily *models.DailySleep) {
	if daily == nil {
		r.line("No sleep data")
		return
	}
	if daily.Score != nil {
		r.field(sleepLabelWidth, "Sleep Score", r.palette.Score(*daily.Score))
	}
	r.Contributors(daily.Contributors)
	r.note("(detailed breakdown not yet synced)")
}

// Readiness prints the readiness score, temperature, and contributors.
func (r *Renderer) Readiness(rec *models.DailyReadiness) {
	if rec == nil {
		r.line("No readiness data")
		return
	}

	if rec.Score != nil {
		r.field(readinessLabelWidth, "Readiness Score", r.palette.Score(*rec.Score))
	}
	if t := rec.TemperatureDeviation; t != nil {
		r.field(readinessLabelWidth, "Temp Deviation", FormatTemperature(*t))
	}
	if t := rec.TemperatureTrendDeviation; t != nil {
		r.field(readinessLabelWidth, "Temp Trend", FormatTemperature(*t))
	}
	r.Contributors(rec.Contributors)
}

// Activity prints steps, calories, distance, and time per intensity.
func (r *Renderer) Activity(rec *models.DailyActivity) {
	if rec == nil {
		r.line("No activity data")
		return
	}

	if rec.Score != nil {
		r.field(activityLabelWidth, "Activity Score", r.palette.Score(*rec.Score))
	}
	if v := rec.Steps; v != nil {
		r.field(activityLabelWidth, "Steps", FormatNumber(*v))
	}
	if v := rec.TotalCalories; v != nil {
		active := 0
		if rec.ActiveCalories != nil {
			active = *rec.ActiveCalories
		}
		r.field(activityLabelWidth, "Calories",
			fmt.Sprintf("%s (active: %s)", FormatNumber(*v), FormatNumber(active)))
	}
	if v := rec.TargetCalories; v != nil {
		r.field(activityLabelWidth, "Target Cal", FormatNumber(*v))
	}
	if v := rec.EquivalentWalkingDistance; v != nil {
		r.field(activityLabelWidth, "Walking Dist", FormatDistance(*v))
	}

	times := []struct {
		label string
		value *int
	}{
		{"High Activity", rec.HighActivityTime},
		{"Med Activity", rec.MediumActivityTime},
		{"Low Activity", rec.LowActivityTime},
		{"Sedentary", rec.SedentaryTime},
	}
	for _, tm := range times {
		if tm.value != nil {
			r.field(activityLabelWidth, tm.label, FormatDuration(*tm.value))
		}
	}
}

// HRV prints heart-rate variability and related vitals from the main
// sleep period.
func (r *Renderer) HRV(daily *models.DailySleep, periods []models.SleepPeriod) {
	period := models.MainSleep(periods)
	if period == nil {
		switch {
		case daily == nil:
			r.line("No sleep data for HRV")
		case daily.Score != nil:
			r.field(sleepLabelWidth, "Sleep Score",
				r.palette.Score(*daily.Score)+" "+r.palette.Faint.Sprint("(HRV requires detailed sync)"))
		}
		return
	}

	r.note("HRV (from sleep)")

	hrv := Placeholder
	if period.AverageHRV != nil {
		hrv = fmt.Sprintf("%d ms", *period.AverageHRV)
	}
	r.field(sleepLabelWidth, "Avg HRV", hrv)

	if v := period.AverageHeartRate; v != nil {
		r.field(sleepLabelWidth, "Avg HR", FormatBPM(*v))
	}
	if v := period.LowestHeartRate; v != nil {
		r.field(sleepLabelWidth, "Lowest HR", fmt.Sprintf("%d bpm", *v))
	}
	if v := period.AverageBreath; v != nil {
		r.field(sleepLabelWidth, "Avg Breath", FormatBreath(*v))
	}
}

// Stress prints the day summary and high-stress/high-recovery time.
func (r *Renderer) Stress(rec *models.DailyStress) {
	if rec == nil {
		r.line("No stress data")
		return
	}

	if rec.DaySummary != nil {
		summary := *rec.DaySummary
		if tier, ok := StressTier(summary); ok {
			summary = r.palette.Tier(tier).Sprint(summary)
		}
		r.field(stressLabelWidth, "Stress Summary", summary)
	}
	if v := rec.StressHigh; v != nil {
		r.field(stressLabelWidth, "Stress High", FormatDuration(*v))
	}
	if v := rec.RecoveryHigh; v != nil {
		r.field(stressLabelWidth, "Recovery High", FormatDuration(*v))
	}
}

// Trend prints one row per day followed by the average row.
func (r *Renderer) Trend(table trend.Table) {
	header := fmt.Sprintf("%-*s%*s%*s%*s",
		trendDateWidth, "Date",
		trendSleepWidth, "Sleep",
		trendReadinessWidth, "Readiness",
		trendActivityWidth, "Activity")
	r.line("%s", r.palette.Faint.Sprint(header))

	for _, row := range table.Rows {
		r.trendRow(dates.Label(row.Day), false, row.Sleep, row.Readiness, row.Activity)
	}
	r.trendRow("Average", true, table.Sleep.Mean(), table.Readiness.Mean(), table.Activity.Mean())
}

func (r *Renderer) trendRow(label string, faint bool, sleep, readiness, activity *int) {
	padded := label
	if len(padded) < trendDateWidth {
		padded += strings.Repeat(" ", trendDateWidth-len(padded))
	}
	if faint {
		padded = r.palette.Faint.Sprint(padded)
	}
	r.line("%s%s%s%s",
		padded,
		r.palette.ScoreCell(sleep, trendSleepWidth),
		r.palette.ScoreCell(readiness, trendReadinessWidth),
		r.palette.ScoreCell(activity, trendActivityWidth))
}
