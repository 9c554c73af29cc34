// ABOUTME: SleepPeriod record for individual sleep episodes.
// ABOUTME: A day may have several periods; long_sleep marks the main one.
package models

// SleepTypeLong marks the primary overnight sleep.
const SleepTypeLong = "long_sleep"

// SleepPeriod is one entry of the sleep collection. Durations are seconds.
type SleepPeriod struct {
	Day                string   `json:"day" yaml:"day"`
	Type               *string  `json:"type" yaml:"type,omitempty"`
	BedtimeStart       *string  `json:"bedtime_start" yaml:"bedtime_start,omitempty"`
	BedtimeEnd         *string  `json:"bedtime_end" yaml:"bedtime_end,omitempty"`
	TotalSleepDuration *int     `json:"total_sleep_duration" yaml:"total_sleep_duration,omitempty"`
	TimeInBed          *int     `json:"time_in_bed" yaml:"time_in_bed,omitempty"`
	Efficiency         *int     `json:"efficiency" yaml:"efficiency,omitempty"`
	Latency            *int     `json:"latency" yaml:"latency,omitempty"`
	DeepSleepDuration  *int     `json:"deep_sleep_duration" yaml:"deep_sleep_duration,omitempty"`
	LightSleepDuration *int     `json:"light_sleep_duration" yaml:"light_sleep_duration,omitempty"`
	RemSleepDuration   *int     `json:"rem_sleep_duration" yaml:"rem_sleep_duration,omitempty"`
	AwakeTime          *int     `json:"awake_time" yaml:"awake_time,omitempty"`
	RestlessPeriods    *int     `json:"restless_periods" yaml:"restless_periods,omitempty"`
	AverageBreath      *float64 `json:"average_breath" yaml:"average_breath,omitempty"`
	AverageHeartRate   *float64 `json:"average_heart_rate" yaml:"average_heart_rate,omitempty"`
	AverageHRV         *int     `json:"average_hrv" yaml:"average_hrv,omitempty"`
	LowestHeartRate    *int     `json:"lowest_heart_rate" yaml:"lowest_heart_rate,omitempty"`
}

// IsLongSleep reports whether the period is tagged as the main sleep.
func (s SleepPeriod) IsLongSleep() bool {
	return s.Type != nil && *s.Type == SleepTypeLong
}

// MainSleep picks the long_sleep period, falling back to the first one.
// Returns nil when there are no periods.
func MainSleep(periods []SleepPeriod) *SleepPeriod {
	for i := range periods {
		if periods[i].IsLongSleep() {
			return &periods[i]
		}
	}
	if len(periods) > 0 {
		return &periods[0]
	}
	return nil
}
