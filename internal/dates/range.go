// ABOUTME: Inclusive calendar date range.
// ABOUTME: A range whose end precedes its start is empty, not an error.
package dates

import "cloud.google.com/go/civil"

// Range is an inclusive pair of calendar days. Start <= End is the caller's
// responsibility; a reversed range simply holds no days.
type Range struct {
	Start civil.Date
	End   civil.Date
}

// Single returns the one-day range [d, d].
func Single(d civil.Date) Range {
	return Range{Start: d, End: d}
}

// Empty reports whether the range holds no days.
func (r Range) Empty() bool {
	return r.End.Before(r.Start)
}

// Len returns the number of days in the range.
func (r Range) Len() int {
	if r.Empty() {
		return 0
	}
	return r.End.DaysSince(r.Start) + 1
}

// Days lists every day in the range in ascending order.
func (r Range) Days() []civil.Date {
	n := r.Len()
	days := make([]civil.Date, 0, n)
	for i := 0; i < n; i++ {
		days = append(days, r.Start.AddDays(i))
	}
	return days
}

// Contains reports whether d falls inside the range.
func (r Range) Contains(d civil.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r Range) String() string {
	return r.Start.String() + ".." + r.End.String()
}
