package slot

import (
	"errors"
	"time"
)

// DateLayout is the ISO 8601 calendar-date form accepted on every query.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// Weekdays lists the canonical English weekday names in schedule order.
// Templates are keyed by these names.
var Weekdays = []string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// ParseDate parses an ISO date string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// WeekdayOf maps an ISO date to its English weekday name. The mapping comes
// from the time package's proleptic Gregorian calendar and does not depend on
// locale or call time.
func WeekdayOf(date string) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}

// IsWeekday reports whether name is one of the seven canonical names.
func IsWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// WeekdayIndex returns the schedule ordering of a weekday name, Monday first.
// Unknown names sort last.
func WeekdayIndex(name string) int {
	for i, d := range Weekdays {
		if d == name {
			return i
		}
	}
	return len(Weekdays)
}
