// Package daterange resolves the static report periods (Today, Last Week and
// so on) into inclusive calendar day ranges
package daterange

import (
	"time"

	perr "hourglass/internal/platform/errors"
)

// StaticID names a predefined period
type StaticID int

const (
	Today StaticID = iota + 1
	ThisWeek
	ThisMonth
	ThisYear
	Yesterday
	LastWeek
	LastMonth
	LastYear
)

var descriptions = map[StaticID]string{
	Today:     "Today",
	ThisWeek:  "This Week",
	ThisMonth: "This Month",
	ThisYear:  "This Year",
	Yesterday: "Yesterday",
	LastWeek:  "Last Week",
	LastMonth: "Last Month",
	LastYear:  "Last Year",
}

// Description is the caption shown in dropdowns
func (id StaticID) Description() string { return descriptions[id] }

// Valid reports whether id is one of the known periods
func (id StaticID) Valid() bool {
	_, ok := descriptions[id]
	return ok
}

// All lists the periods in id order
func All() []StaticID {
	return []StaticID{Today, ThisWeek, ThisMonth, ThisYear, Yesterday, LastWeek, LastMonth, LastYear}
}

// Range is an inclusive span of calendar days, each at midnight UTC
type Range struct {
	From time.Time
	To   time.Time
}

// Contains reports whether day falls inside r
func (r Range) Contains(day time.Time) bool {
	d := Day(day)
	return !d.Before(r.From) && !d.After(r.To)
}

// Day truncates t to its calendar date at midnight UTC, keeping the date as
// seen in t's own location
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TodayIn returns the calendar day of now as seen from loc
func TodayIn(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Day(now.In(loc))
}

// Resolve turns a static id into a range relative to today. Weeks begin on
// weekStart.
func Resolve(id StaticID, today time.Time, weekStart time.Weekday) (Range, error) {
	today = Day(today)
	switch id {
	case Today:
		return Range{today, today}, nil
	case Yesterday:
		y := today.AddDate(0, 0, -1)
		return Range{y, y}, nil
	case ThisWeek:
		from := weekOf(today, weekStart)
		return Range{from, from.AddDate(0, 0, 6)}, nil
	case LastWeek:
		from := weekOf(today, weekStart).AddDate(0, 0, -7)
		return Range{from, from.AddDate(0, 0, 6)}, nil
	case ThisMonth:
		return month(today), nil
	case LastMonth:
		return month(time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)), nil
	case ThisYear:
		return year(today.Year()), nil
	case LastYear:
		return year(today.Year() - 1), nil
	}
	return Range{}, perr.InvalidArgf("unknown static date id %d", int(id))
}

// Parse builds a range from two YYYY-MM-DD strings
func Parse(from, to string) (Range, error) {
	f, err := time.Parse(time.DateOnly, from)
	if err != nil {
		return Range{}, perr.InvalidArgf("date from %q: expected YYYY-MM-DD", from)
	}
	t, err := time.Parse(time.DateOnly, to)
	if err != nil {
		return Range{}, perr.InvalidArgf("date to %q: expected YYYY-MM-DD", to)
	}
	if t.Before(f) {
		return Range{}, perr.InvalidArgf("date to %s is before date from %s", to, from)
	}
	return Range{f, t}, nil
}

func weekOf(day time.Time, start time.Weekday) time.Time {
	back := (int(day.Weekday()) - int(start) + 7) % 7
	return day.AddDate(0, 0, -back)
}

func month(day time.Time) Range {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Range{first, first.AddDate(0, 1, -1)}
}

func year(y int) Range {
	return Range{
		time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
}
