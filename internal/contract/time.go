package contract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateFormat is the calendar-date representation used on flags and in output.
const DateFormat = "2006-01-02"

// relativeTimeRe captures "N [units] ago", e.g. "2 years ago", "6 months ago".
var relativeTimeRe = regexp.MustCompile(`^(\d+)\s+(year|month|week|day)s?\s+ago$`)

// ParseDateInput converts a user-supplied date string into a time.Time.
// It accepts calendar dates ("1970-01-01"), full RFC3339 timestamps, and
// relative formats like "5 years ago".
func ParseDateInput(s string, now time.Time) (time.Time, error) {
	trimmed := strings.TrimSpace(s)

	if t, err := time.Parse(DateFormat, trimmed); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, trimmed); err == nil {
		return t, nil
	}

	matches := relativeTimeRe.FindStringSubmatch(strings.ToLower(trimmed))
	if len(matches) == 0 {
		return time.Time{}, fmt.Errorf("invalid date format for %q. Expected YYYY-MM-DD, RFC3339 or 'N [units] ago'", s)
	}

	value, _ := strconv.Atoi(matches[1])
	switch matches[2] {
	case "year":
		return now.AddDate(-value, 0, 0), nil
	case "month":
		return now.AddDate(0, -value, 0), nil
	case "week":
		return now.AddDate(0, 0, -7*value), nil
	case "day":
		return now.AddDate(0, 0, -value), nil
	default:
		// Should be caught by the regex, but good for safety
		return time.Time{}, fmt.Errorf("unsupported time unit: %s", matches[2])
	}
}

// MonthKey truncates a date to the first day of its month in UTC.
// FRED observations are monthly; joining on the month key tolerates sources
// that stamp observations mid-month.
func MonthKey(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), 1, 0, 0, 0, 0, time.UTC)
}
