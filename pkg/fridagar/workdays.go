package fridagar

import (
	"time"

	"go.uber.org/zap"

	"github.com/username/fridagar/pkg/dateutil"
)

// WorkdayOption configures WorkdaysFromDate
type WorkdayOption func(*workdayQuery)

type workdayQuery struct {
	from            time.Time
	includeHalfDays bool
}

// From sets the reference date to count from. Defaults to today.
func From(date time.Time) WorkdayOption {
	return func(q *workdayQuery) {
		q.from = date
	}
}

// IncludeHalfDays counts half-day holidays (Christmas Eve, New Year's Eve)
// as workdays. By default they are skipped like full holidays.
func IncludeHalfDays(include bool) WorkdayOption {
	return func(q *workdayQuery) {
		q.includeHalfDays = include
	}
}

// WorkdaysFromDate returns the date that lies offset working days after
// (or, for a negative offset, before) the reference date. Weekends and
// public holidays are not counted. An offset of 0 returns the reference
// date itself.
func (c *Calendar) WorkdaysFromDate(offset int, opts ...WorkdayOption) time.Time {
	var q workdayQuery
	for _, opt := range opts {
		opt(&q)
	}

	date := c.today()
	if !q.from.IsZero() {
		date = dateutil.CivilDate(q.from)
	}

	if offset == 0 {
		return date
	}

	step := 1
	remaining := offset
	if offset < 0 {
		step = -1
		remaining = -offset
	}

	start := date
	holidaysByYear := make(map[int]map[int]Day) // year → day of year → holiday
	for remaining > 0 {
		date = date.AddDate(0, 0, step)
		if dateutil.IsWeekend(date) {
			continue
		}

		holidays, ok := holidaysByYear[date.Year()]
		if !ok {
			holidays = c.holidayIndex(date.Year())
			holidaysByYear[date.Year()] = holidays
		}

		if h, ok := holidays[date.YearDay()]; ok && !(q.includeHalfDays && h.HalfDay) {
			continue
		}
		remaining--
	}

	c.logger.Debug("Workdays counted",
		zap.Int("offset", offset),
		zap.Time("from", start),
		zap.Time("result", date),
		zap.Int("years_visited", len(holidaysByYear)))

	return date
}

func (c *Calendar) holidayIndex(year int) map[int]Day {
	holidays := c.calc.Holidays(year)

	index := make(map[int]Day, len(holidays))
	for _, h := range holidays {
		index[h.Date.YearDay()] = h
	}
	return index
}
