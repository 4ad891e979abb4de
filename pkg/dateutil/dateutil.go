package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the layout used for plain calendar dates
const DateLayout = "2006-01-02"

// Date returns midnight UTC of the given calendar date.
// Out-of-range month/day values are normalized the same way time.Date does.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CivilDate strips time-of-day and zone from date, keeping the calendar date
// as read in date's own location. The result is midnight UTC.
func CivilDate(date time.Time) time.Time {
	year, month, day := date.Date()
	return Date(year, month, day)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// FormatDate formats date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		DateLayout,
		"02.01.2006",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
		time.RFC3339,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %q", dateStr)
}
