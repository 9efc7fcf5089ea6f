package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	YearMonthLayout = "2006-01"
)

// Clock returns the current instant. Services take a Clock so "today" can be pinned in tests.
type Clock func() time.Time

// SystemClock is the wall clock.
func SystemClock() time.Time {
	return time.Now()
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// Date truncates t to its calendar day and returns it as UTC midnight.
// All date columns are stored in this form.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today is the current calendar day in loc.
func Today(clock Clock, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Date(clock().In(loc))
}

func FirstOfMonth(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths moves the first day of d's month by n months. Working from day 1 keeps
// time.Date normalisation from spilling into the following month.
func AddMonths(d time.Time, n int) time.Time {
	return time.Date(d.Year(), d.Month()+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
}

func LastOfMonth(d time.Time) time.Time {
	return AddMonths(d, 1).AddDate(0, 0, -1)
}

func DaysIn(year int, month time.Month) int {
	return LastOfMonth(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)).Day()
}

// MonthRange returns [start, end) for the given month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, AddMonths(start, 1)
}

// ValidWindow is the availability booking window: the first day of the current month
// through the last day of the month three months ahead, inclusive.
func ValidWindow(today time.Time) (time.Time, time.Time) {
	start := FirstOfMonth(today)
	return start, LastOfMonth(AddMonths(start, 3))
}

// RetentionCutoff is day 1 of the month two months before today's month.
func RetentionCutoff(today time.Time) time.Time {
	return AddMonths(FirstOfMonth(today), -2)
}

func FormatDate(d time.Time) string {
	return d.Format(DateLayout)
}

// ParseDate accepts YYYY-MM-DD only.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return Date(t), nil
}

// ParseYearMonthDate accepts YYYY-MM (pinned to day 1) or YYYY-MM-DD.
func ParseYearMonthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) == len(YearMonthLayout) {
		t, err := time.Parse(YearMonthLayout, s)
		if err != nil {
			return time.Time{}, err
		}
		return Date(t), nil
	}
	return ParseDate(s)
}

// ParseOptionalDate returns nil for a blank string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := ParseYearMonthDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ResolveYearMonth reads year/month query values, defaulting each to today's.
func ResolveYearMonth(yearStr, monthStr string, today time.Time) (int, time.Month, error) {
	year := today.Year()
	month := today.Month()

	if s := strings.TrimSpace(yearStr); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil || y < 1 || y > 9999 {
			return 0, 0, fmt.Errorf("invalid year %q", yearStr)
		}
		year = y
	}
	if s := strings.TrimSpace(monthStr); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, fmt.Errorf("invalid month %q", monthStr)
		}
		month = time.Month(m)
	}
	return year, month, nil
}

// Within reports whether start <= d <= end.
func Within(d, start, end time.Time) bool {
	return !d.Before(start) && !d.After(end)
}

// Zone pairs a clock with the location that defines the local day.
type Zone struct {
	Clock    Clock
	Location *time.Location
}

// NewZone falls back to the system clock and UTC for nil arguments.
func NewZone(clock Clock, loc *time.Location) Zone {
	if clock == nil {
		clock = SystemClock
	}
	if loc == nil {
		loc = time.UTC
	}
	return Zone{Clock: clock, Location: loc}
}

// Now is the current instant in the zone's location.
func (z Zone) Now() time.Time {
	return z.Clock().In(z.Location)
}

func (z Zone) Today() time.Time {
	return Today(z.Clock, z.Location)
}
