// ABOUTME: Loads the records each report needs, one request at a time.
// ABOUTME: Re-keys every response by calendar day so padded ranges never leak extra days.
package summary

import (
	"context"
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/harperreed/oura/internal/dates"
	"github.com/harperreed/oura/internal/models"
	"github.com/harperreed/oura/internal/trend"
)

// Source fetches records for an inclusive range. *oura.Client implements it.
type Source interface {
	DailySleep(ctx context.Context, r dates.Range) ([]models.DailySleep, error)
	DailyReadiness(ctx context.Context, r dates.Range) ([]models.DailyReadiness, error)
	DailyActivity(ctx context.Context, r dates.Range) ([]models.DailyActivity, error)
	DailyStress(ctx context.Context, r dates.Range) ([]models.DailyStress, error)
	Sleep(ctx context.Context, r dates.Range) ([]models.SleepPeriod, error)
	Raw(ctx context.Context, endpoint string, day civil.Date) (any, error)
}

// Scores is the headline view for one day.
type Scores struct {
	Day       civil.Date             `json:"day" yaml:"day"`
	Sleep     *models.DailySleep     `json:"sleep" yaml:"sleep"`
	Readiness *models.DailyReadiness `json:"readiness" yaml:"readiness"`
	Activity  *models.DailyActivity  `json:"activity" yaml:"activity"`
}

// SleepDetail pairs the daily sleep summary with that day's sleep periods.
type SleepDetail struct {
	Day     civil.Date           `json:"day" yaml:"day"`
	Daily   *models.DailySleep   `json:"daily" yaml:"daily"`
	Periods []models.SleepPeriod `json:"periods" yaml:"periods"`
}

// Main returns the period reports should describe.
func (d *SleepDetail) Main() *models.SleepPeriod {
	return models.MainSleep(d.Periods)
}

// Window holds every daily summary for a range plus the joined trend.
type Window struct {
	Range     dates.Range             `json:"-" yaml:"-"`
	Sleep     []models.DailySleep     `json:"daily_sleep" yaml:"daily_sleep"`
	Readiness []models.DailyReadiness `json:"daily_readiness" yaml:"daily_readiness"`
	Activity  []models.DailyActivity  `json:"daily_activity" yaml:"daily_activity"`
	Table     trend.Table             `json:"trend" yaml:"trend"`
}

// Service runs the fetch sequence for each report.
type Service struct {
	src Source
}

// New returns a Service reading from src.
func New(src Source) *Service {
	return &Service{src: src}
}

// Scores fetches daily sleep, readiness, and activity for day, in that order.
func (s *Service) Scores(ctx context.Context, day civil.Date) (*Scores, error) {
	r := dates.Single(day)

	sleep, err := s.src.DailySleep(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("fetch daily sleep: %w", err)
	}
	readiness, err := s.src.DailyReadiness(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("fetch daily readiness: %w", err)
	}
	activity, err := s.src.DailyActivity(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("fetch daily activity: %w", err)
	}

	key := dates.Format(day)
	return &Scores{
		Day:       day,
		Sleep:     models.ForDay(sleep, key),
		Readiness: models.ForDay(readiness, key),
		Activity:  models.ForDay(activity, key),
	}, nil
}

// Sleep fetches sleep periods and then the daily sleep summary for day.
func (s *Service) Sleep(ctx context.Context, day civil.Date) (*SleepDetail, error) {
	r := dates.Single(day)

	periods, err := s.src.Sleep(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("fetch sleep periods: %w", err)
	}
	daily, err := s.src.DailySleep(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("fetch daily sleep: %w", err)
	}

	key := dates.Format(day)
	return &SleepDetail{
		Day:     day,
		Daily:   models.ForDay(daily, key),
		Periods: models.FilterDay(periods, key),
	}, nil
}

// HRV fetches sleep periods for day. The daily summary is only requested
// when no period exists, to explain why HRV is missing.
func (s *Service) HRV(ctx context.Context, day civil.Date) (*SleepDetail, error) {
	r := dates.Single(day)
	key := dates.Format(day)

	periods, err := s.src.Sleep(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("fetch sleep periods: %w", err)
	}
	detail := &SleepDetail{Day: day, Periods: models.FilterDay(periods, key)}
	if len(detail.Periods) > 0 {
		return detail, nil
	}

	daily, err := s.src.DailySleep(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("fetch daily sleep: %w", err)
	}
	detail.Daily = models.ForDay(daily, key)
	return detail, nil
}

// Readiness returns the readiness summary for day, or nil when absent.
func (s *Service) Readiness(ctx context.Context, day civil.Date) (*models.DailyReadiness, error) {
	recs, err := s.src.DailyReadiness(ctx, dates.Single(day))
	if err != nil {
		return nil, fmt.Errorf("fetch daily readiness: %w", err)
	}
	return models.ForDay(recs, dates.Format(day)), nil
}

// Activity returns the activity summary for day, or nil when absent.
func (s *Service) Activity(ctx context.Context, day civil.Date) (*models.DailyActivity, error) {
	recs, err := s.src.DailyActivity(ctx, dates.Single(day))
	if err != nil {
		return nil, fmt.Errorf("fetch daily activity: %w", err)
	}
	return models.ForDay(recs, dates.Format(day)), nil
}

// Stress returns the stress summary for day, or nil when absent.
func (s *Service) Stress(ctx context.Context, day civil.Date) (*models.DailyStress, error) {
	recs, err := s.src.DailyStress(ctx, dates.Single(day))
	if err != nil {
		return nil, fmt.Errorf("fetch daily stress: %w", err)
	}
	return models.ForDay(recs, dates.Format(day)), nil
}

// Window fetches the three daily score families for r and joins them. An
// empty range makes no requests.
func (s *Service) Window(ctx context.Context, r dates.Range) (*Window, error) {
	w := &Window{Range: r}
	days := r.Days()
	if r.Empty() {
		w.Table = trend.Join(days, nil, nil, nil)
		return w, nil
	}

	sleep, err := s.src.DailySleep(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("fetch daily sleep: %w", err)
	}
	readiness, err := s.src.DailyReadiness(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("fetch daily readiness: %w", err)
	}
	activity, err := s.src.DailyActivity(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("fetch daily activity: %w", err)
	}

	w.Sleep = inRange(sleep, r)
	w.Readiness = inRange(readiness, r)
	w.Activity = inRange(activity, r)
	w.Table = trend.Join(days, w.Sleep, w.Readiness, w.Activity)
	return w, nil
}

// Trend returns the joined score table for r.
func (s *Service) Trend(ctx context.Context, r dates.Range) (trend.Table, error) {
	w, err := s.Window(ctx, r)
	if err != nil {
		return trend.Table{}, err
	}
	return w.Table, nil
}

// Raw passes through to the source unchanged.
func (s *Service) Raw(ctx context.Context, endpoint string, day civil.Date) (any, error) {
	return s.src.Raw(ctx, endpoint, day)
}

// inRange drops records whose day is outside r or unparseable.
func inRange[T models.Dated](records []T, r dates.Range) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		d, err := civil.ParseDate(rec.GetDay())
		if err != nil || !r.Contains(d) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
