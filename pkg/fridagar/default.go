package fridagar

import (
	"sync"
	"time"
)

var (
	defaultCalendar     *Calendar
	defaultCalendarOnce sync.Once
)

// Default returns the shared Calendar used by the package-level functions.
// It uses the system clock and no logging.
func Default() *Calendar {
	defaultCalendarOnce.Do(func() {
		defaultCalendar = New()
	})
	return defaultCalendar
}

// AllDays lists holidays and special days using the default Calendar
func AllDays(opts ...QueryOption) []Day {
	return Default().AllDays(opts...)
}

// Holidays lists public holidays using the default Calendar
func Holidays(opts ...QueryOption) []Day {
	return Default().Holidays(opts...)
}

// OtherDays lists special days using the default Calendar
func OtherDays(opts ...QueryOption) []Day {
	return Default().OtherDays(opts...)
}

// AllDaysKeyed lists days by key using the default Calendar
func AllDaysKeyed(opts ...QueryOption) map[Key]Day {
	return Default().AllDaysKeyed(opts...)
}

// IsSpecialDay looks date up using the default Calendar
func IsSpecialDay(date time.Time) (*Day, error) {
	return Default().IsSpecialDay(date)
}

// IsHoliday looks date up using the default Calendar
func IsHoliday(date time.Time) (*Day, error) {
	return Default().IsHoliday(date)
}

// WorkdaysFromDate counts working days using the default Calendar
func WorkdaysFromDate(offset int, opts ...WorkdayOption) time.Time {
	return Default().WorkdaysFromDate(offset, opts...)
}
