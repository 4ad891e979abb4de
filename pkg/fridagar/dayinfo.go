package fridagar

import (
	"fmt"
	"time"

	"github.com/username/fridagar/pkg/dateutil"
)

// Working hours of a regular and a shortened (half-day holiday) workday
const (
	FullDayHours = 8
	HalfDayHours = 4
)

// DayType represents the type of day
type DayType int

const (
	DayTypeWorkday DayType = iota + 1
	DayTypeWeekend
	DayTypeHoliday
	DayTypeShortened
)

func (t DayType) String() string {
	switch t {
	case DayTypeWorkday:
		return "workday"
	case DayTypeWeekend:
		return "weekend"
	case DayTypeHoliday:
		return "holiday"
	case DayTypeShortened:
		return "shortened"
	default:
		return fmt.Sprintf("DayType(%d)", int(t))
	}
}

// DayInfo represents information about a specific day
type DayInfo struct {
	Date         time.Time
	Type         DayType
	WorkingHours int
	IsWorkday    bool
	Note         string
	Special      *Day // holiday or special day on this date, if any
}

// MonthInfo represents calendar information for a month
type MonthInfo struct {
	Year         int
	Month        time.Month
	WorkingHours int // Total working hours in the month
	WorkDays     int
	Weekends     int
	Holidays     int
	Days         []DayInfo
}

// WorkCalendar is the interface for checking working days
type WorkCalendar interface {
	// IsWorkday checks if the given date is a working day
	IsWorkday(date time.Time) (bool, int, error)

	// GetMonthInfo returns calendar info for the entire month
	GetMonthInfo(year int, month time.Month) (*MonthInfo, error)

	// GetDayInfo returns detailed info for a specific day
	GetDayInfo(date time.Time) (*DayInfo, error)
}

var _ WorkCalendar = (*Calendar)(nil)

// IsWorkday checks if the given date is a working day and returns its
// working hours. Half-day holidays are shortened workdays.
func (c *Calendar) IsWorkday(date time.Time) (bool, int, error) {
	dayInfo, err := c.GetDayInfo(date)
	if err != nil {
		return false, 0, err
	}

	return dayInfo.IsWorkday, dayInfo.WorkingHours, nil
}

// GetDayInfo returns detailed info for a specific day
func (c *Calendar) GetDayInfo(date time.Time) (*DayInfo, error) {
	special, err := c.IsSpecialDay(date)
	if err != nil {
		return nil, err
	}

	info := classify(dateutil.CivilDate(date), special)
	return &info, nil
}

// GetMonthInfo returns calendar info for the entire month
func (c *Calendar) GetMonthInfo(year int, month time.Month) (*MonthInfo, error) {
	if month < time.January || month > time.December {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonth, int(month))
	}

	specials := c.AllDays(Year(year), Month(int(month)))
	daysInMonth := dateutil.DaysInMonth(year, month)

	monthInfo := &MonthInfo{
		Year:  year,
		Month: month,
		Days:  make([]DayInfo, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		date := dateutil.Date(year, month, day)

		var special *Day
		for i := range specials {
			if dateutil.IsSameDay(specials[i].Date, date) {
				special = &specials[i]
				break
			}
		}

		info := classify(date, special)
		switch {
		case info.IsWorkday:
			monthInfo.WorkDays++
		case info.Type == DayTypeWeekend:
			monthInfo.Weekends++
		case info.Type == DayTypeHoliday:
			monthInfo.Holidays++
		}
		monthInfo.WorkingHours += info.WorkingHours
		monthInfo.Days = append(monthInfo.Days, info)
	}

	return monthInfo, nil
}

func classify(date time.Time, special *Day) DayInfo {
	info := DayInfo{Date: date, Special: special}
	if special != nil {
		info.Note = special.Description
	}

	switch {
	case !dateutil.IsWeekday(date):
		info.Type = DayTypeWeekend
	case special != nil && special.Holiday && special.HalfDay:
		info.Type = DayTypeShortened
		info.WorkingHours = HalfDayHours
		info.IsWorkday = true
	case special != nil && special.Holiday:
		info.Type = DayTypeHoliday
	default:
		info.Type = DayTypeWorkday
		info.WorkingHours = FullDayHours
		info.IsWorkday = true
	}

	return info
}
