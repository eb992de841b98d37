package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/cyra/internal/constants"
)

// ParseDate parses a date string in the standard format (YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(constants.DateFormat, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", dateStr, err)
	}
	return t, nil
}

// IsValidDate reports whether dateStr is a well-formed YYYY-MM-DD date.
func IsValidDate(dateStr string) bool {
	_, err := ParseDate(dateStr)
	return err == nil
}

// AddDays returns the date string n calendar days after dateStr.
// It assumes dateStr is well-formed; garbage in returns garbage out, so
// callers validate first.
func AddDays(dateStr string, n int) string {
	t, err := ParseDate(dateStr)
	if err != nil {
		return dateStr
	}
	return t.AddDate(0, 0, n).Format(constants.DateFormat)
}

// DaysBetween returns the whole calendar days from a to b (positive when b
// is after a). Both must be well-formed date strings.
func DaysBetween(a, b string) int {
	ta, errA := ParseDate(a)
	tb, errB := ParseDate(b)
	if errA != nil || errB != nil {
		return 0
	}
	return int(tb.Sub(ta).Hours() / 24)
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// TodayInTimezone returns today's date string (YYYY-MM-DD) in the given
// timezone, so "today" follows the user's configured zone rather than the
// system clock's.
func TodayInTimezone(timezone string) (string, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc).Format(constants.DateFormat), nil
}

// Today returns today's date string in the system local timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}
