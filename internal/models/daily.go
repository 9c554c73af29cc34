// ABOUTME: Daily summary records for sleep, readiness, activity, and stress.
// ABOUTME: All biometric fields are optional; absence is nil, never zero.
package models

// DailySleep is one day of the daily_sleep collection.
type DailySleep struct {
	Day          string       `json:"day" yaml:"day"`
	Score        *int         `json:"score" yaml:"score"`
	Contributors Contributors `json:"contributors,omitempty" yaml:"contributors,omitempty"`
}

// DailyReadiness is one day of the daily_readiness collection.
type DailyReadiness struct {
	Day                       string       `json:"day" yaml:"day"`
	Score                     *int         `json:"score" yaml:"score"`
	TemperatureDeviation      *float64     `json:"temperature_deviation" yaml:"temperature_deviation,omitempty"`
	TemperatureTrendDeviation *float64     `json:"temperature_trend_deviation" yaml:"temperature_trend_deviation,omitempty"`
	Contributors              Contributors `json:"contributors,omitempty" yaml:"contributors,omitempty"`
}

// DailyActivity is one day of the daily_activity collection.
// Times are seconds; distance is meters.
type DailyActivity struct {
	Day                       string       `json:"day" yaml:"day"`
	Score                     *int         `json:"score" yaml:"score"`
	ActiveCalories            *int         `json:"active_calories" yaml:"active_calories,omitempty"`
	TotalCalories             *int         `json:"total_calories" yaml:"total_calories,omitempty"`
	TargetCalories            *int         `json:"target_calories" yaml:"target_calories,omitempty"`
	Steps                     *int         `json:"steps" yaml:"steps,omitempty"`
	EquivalentWalkingDistance *int         `json:"equivalent_walking_distance" yaml:"equivalent_walking_distance,omitempty"`
	HighActivityTime          *int         `json:"high_activity_time" yaml:"high_activity_time,omitempty"`
	MediumActivityTime        *int         `json:"medium_activity_time" yaml:"medium_activity_time,omitempty"`
	LowActivityTime           *int         `json:"low_activity_time" yaml:"low_activity_time,omitempty"`
	SedentaryTime             *int         `json:"sedentary_time" yaml:"sedentary_time,omitempty"`
	Contributors              Contributors `json:"contributors,omitempty" yaml:"contributors,omitempty"`
}

// DailyStress is one day of the daily_stress collection.
type DailyStress struct {
	Day          string  `json:"day" yaml:"day"`
	DaySummary   *string `json:"day_summary" yaml:"day_summary,omitempty"`
	StressHigh   *int    `json:"stress_high" yaml:"stress_high,omitempty"`
	RecoveryHigh *int    `json:"recovery_high" yaml:"recovery_high,omitempty"`
}

// Dated is implemented by every record keyed by calendar day.
type Dated interface {
	GetDay() string
}

func (d DailySleep) GetDay() string     { return d.Day }
func (d DailyReadiness) GetDay() string { return d.Day }
func (d DailyActivity) GetDay() string  { return d.Day }
func (d DailyStress) GetDay() string    { return d.Day }
func (s SleepPeriod) GetDay() string    { return s.Day }

// ForDay returns the first record whose day matches, or nil.
// Collections may hold extra days, so callers look records up by key.
func ForDay[T Dated](records []T, day string) *T {
	for i := range records {
		if records[i].GetDay() == day {
			return &records[i]
		}
	}
	return nil
}

// FilterDay returns every record for the given day, in collection order.
func FilterDay[T Dated](records []T, day string) []T {
	var out []T
	for _, r := range records {
		if r.GetDay() == day {
			out = append(out, r)
		}
	}
	return out
}
