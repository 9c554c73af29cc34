// ABOUTME: Joins per-day score series into trend rows keyed by calendar day.
// ABOUTME: Tracks per-family running averages over present values only.
package trend

import (
	"cloud.google.com/go/civil"
	"github.com/harperreed/oura/internal/dates"
	"github.com/harperreed/oura/internal/models"
)

// Row holds one day's scores. A nil score means the family had no value
// for that day.
type Row struct {
	Day       civil.Date `json:"day" yaml:"day"`
	Sleep     *int       `json:"sleep" yaml:"sleep"`
	Readiness *int       `json:"readiness" yaml:"readiness"`
	Activity  *int       `json:"activity" yaml:"activity"`
}

// Average accumulates present scores for one family.
type Average struct {
	Sum   int `json:"sum" yaml:"sum"`
	Count int `json:"count" yaml:"count"`
}

// Add folds a score into the average; nil is ignored.
func (a *Average) Add(score *int) {
	if score == nil {
		return
	}
	a.Sum += *score
	a.Count++
}

// Mean returns the integer-truncated mean, or nil when nothing was added.
func (a Average) Mean() *int {
	if a.Count == 0 {
		return nil
	}
	m := a.Sum / a.Count
	return &m
}

// Table is the joined result: one row per requested day plus averages.
type Table struct {
	Rows      []Row   `json:"rows" yaml:"rows"`
	Sleep     Average `json:"sleep_average" yaml:"sleep_average"`
	Readiness Average `json:"readiness_average" yaml:"readiness_average"`
	Activity  Average `json:"activity_average" yaml:"activity_average"`
}

// Join aligns the three series against days, in the order given. Days not
// present in a series yield a nil score for that family. Records outside
// the requested days are ignored.
func Join(days []civil.Date, sleep []models.DailySleep, readiness []models.DailyReadiness, activity []models.DailyActivity) Table {
	sleepByDay := scoresByDay(sleep, func(r models.DailySleep) *int { return r.Score })
	readinessByDay := scoresByDay(readiness, func(r models.DailyReadiness) *int { return r.Score })
	activityByDay := scoresByDay(activity, func(r models.DailyActivity) *int { return r.Score })

	table := Table{Rows: make([]Row, 0, len(days))}
	for _, d := range days {
		key := dates.Format(d)
		row := Row{
			Day:       d,
			Sleep:     sleepByDay[key],
			Readiness: readinessByDay[key],
			Activity:  activityByDay[key],
		}
		table.Sleep.Add(row.Sleep)
		table.Readiness.Add(row.Readiness)
		table.Activity.Add(row.Activity)
		table.Rows = append(table.Rows, row)
	}
	return table
}

// scoresByDay indexes a series by day. The first record for a day wins.
func scoresByDay[T models.Dated](records []T, score func(T) *int) map[string]*int {
	out := make(map[string]*int, len(records))
	for _, r := range records {
		if _, seen := out[r.GetDay()]; seen {
			continue
		}
		out[r.GetDay()] = score(r)
	}
	return out
}
