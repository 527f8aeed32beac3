package policy

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the yyyy-MM-dd layout used in prompts and on the wire.
const DateLayout = "2006-01-02"

// Day truncates t to its calendar date at UTC midnight, keeping the
// year/month/day as seen in t's own location.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a yyyy-MM-dd string into a calendar date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

// FormatDate renders a calendar date as yyyy-MM-dd.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysBetween returns end minus start in whole calendar days. A same-day span
// is zero.
func DaysBetween(start, end time.Time) int {
	return int(Day(end).Sub(Day(start)).Hours() / 24)
}

// MonthWindow returns the first and last calendar day of the month containing t.
func MonthWindow(t time.Time) (time.Time, time.Time) {
	first := Date(t.Year(), t.Month(), 1)
	return first, first.AddDate(0, 1, -1)
}

// YearWindow returns January 1st and December 31st of t's year.
func YearWindow(t time.Time) (time.Time, time.Time) {
	return Date(t.Year(), time.January, 1), Date(t.Year(), time.December, 31)
}
