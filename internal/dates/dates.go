// ABOUTME: Date token resolution and inclusive date ranges.
// ABOUTME: Turns "today", "yesterday" or YYYY-MM-DD into a calendar date.
package dates

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Layout is the only literal date format accepted on the command line and
// sent to the API.
const Layout = "2006-01-02"

// ErrInvalidDate is returned when a date token is not today, yesterday, or
// a YYYY-MM-DD date.
var ErrInvalidDate = errors.New("invalid date")

// Clock supplies the current local calendar date.
type Clock interface {
	Today() civil.Date
}

// SystemClock reads the machine's local wall clock.
type SystemClock struct{}

// Today returns the local current date.
func (SystemClock) Today() civil.Date {
	return civil.DateOf(time.Now())
}

// FixedClock always reports the same day. Useful in tests and for
// reproducible exports.
type FixedClock civil.Date

// Today returns the fixed date.
func (c FixedClock) Today() civil.Date {
	return civil.Date(c)
}

// Resolver turns user supplied tokens into calendar dates.
type Resolver struct {
	Clock Clock
}

// NewResolver returns a Resolver reading the given clock, or the system
// clock when nil.
func NewResolver(clock Clock) *Resolver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Resolver{Clock: clock}
}

// Today returns the resolver's current date.
func (r *Resolver) Today() civil.Date {
	return r.Clock.Today()
}

// Resolve maps an empty token or "today" to today, "yesterday" to the day
// before, and anything else to a strictly parsed YYYY-MM-DD date.
func (r *Resolver) Resolve(token string) (civil.Date, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "", "today":
		return r.Clock.Today(), nil
	case "yesterday":
		return r.Clock.Today().AddDays(-1), nil
	}
	return Parse(token)
}

// Parse parses a strict YYYY-MM-DD date.
func Parse(s string) (civil.Date, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return civil.Date{}, fmt.Errorf("%w: %q (use YYYY-MM-DD, today, or yesterday)", ErrInvalidDate, s)
	}
	return civil.DateOf(t), nil
}

// TrailingWindow returns the inclusive range of n days ending today.
// n <= 0 yields an empty range.
func (r *Resolver) TrailingWindow(n int) Range {
	today := r.Clock.Today()
	if n <= 0 {
		return Range{Start: today.AddDays(1), End: today}
	}
	return Range{Start: today.AddDays(-(n - 1)), End: today}
}

// NextDay returns the calendar day after d.
func NextDay(d civil.Date) civil.Date {
	return d.AddDays(1)
}

// Format renders d as YYYY-MM-DD.
func Format(d civil.Date) string {
	return d.String()
}

// Label renders d as "Mon Feb 10" for table rows.
func Label(d civil.Date) string {
	return d.In(time.UTC).Format("Mon Jan 02")
}
