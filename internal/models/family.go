// ABOUTME: MetricFamily enum for Oura usercollection endpoints.
// ABOUTME: Covers daily sleep, readiness, activity, stress and sleep periods.
package models

// MetricFamily names one of the usercollection endpoints.
type MetricFamily string

const (
	FamilyDailySleep     MetricFamily = "daily_sleep"
	FamilyDailyReadiness MetricFamily = "daily_readiness"
	FamilyDailyActivity  MetricFamily = "daily_activity"
	FamilyDailyStress    MetricFamily = "daily_stress"
	FamilySleep          MetricFamily = "sleep"
)

// AllMetricFamilies returns every family this tool knows how to decode.
var AllMetricFamilies = []MetricFamily{
	FamilyDailySleep,
	FamilyDailyReadiness,
	FamilyDailyActivity,
	FamilyDailyStress,
	FamilySleep,
}

// FamilyLabels maps families to short human labels.
var FamilyLabels = map[MetricFamily]string{
	FamilyDailySleep:     "Sleep",
	FamilyDailyReadiness: "Readiness",
	FamilyDailyActivity:  "Activity",
	FamilyDailyStress:    "Stress",
	FamilySleep:          "Sleep periods",
}

// IsValidMetricFamily checks if a string is a known metric family.
func IsValidMetricFamily(s string) bool {
	for _, f := range AllMetricFamilies {
		if string(f) == s {
			return true
		}
	}
	return false
}
