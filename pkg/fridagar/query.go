package fridagar

import (
	"time"

	"go.uber.org/zap"

	"github.com/username/fridagar/pkg/dateutil"
)

// QueryOption narrows a day listing
type QueryOption func(*query)

type query struct {
	year     int
	hasYear  bool
	month    int
	hasMonth bool
}

// Year selects the year to list. Without it the clock's current year is used.
func Year(year int) QueryOption {
	return func(q *query) {
		q.year = year
		q.hasYear = true
	}
}

// Month narrows the listing to a 1-based month (January is 1).
// A month outside 1-12 matches nothing.
func Month(month int) QueryOption {
	return func(q *query) {
		q.month = month
		q.hasMonth = true
	}
}

func (c *Calendar) resolve(opts []QueryOption) query {
	var q query
	for _, opt := range opts {
		opt(&q)
	}
	if !q.hasYear {
		q.year = c.clock.Now().Year()
	}
	return q
}

// AllDays returns every holiday and special day of the selected year,
// ordered by date. Each call returns fresh copies.
func (c *Calendar) AllDays(opts ...QueryOption) []Day {
	q := c.resolve(opts)
	days := c.calc.Year(q.year)

	if !q.hasMonth {
		return days
	}

	filtered := make([]Day, 0, 4)
	for _, d := range days {
		if int(d.Date.Month()) == q.month {
			filtered = append(filtered, d)
		}
	}

	c.logger.Debug("Days filtered by month",
		zap.Int("year", q.year),
		zap.Int("month", q.month),
		zap.Int("days", len(filtered)))

	return filtered
}

// Holidays returns only the public holidays of the selected year
func (c *Calendar) Holidays(opts ...QueryOption) []Day {
	return filterDays(c.AllDays(opts...), true)
}

// OtherDays returns only the special days (regular workdays) of the
// selected year
func (c *Calendar) OtherDays(opts ...QueryOption) []Day {
	return filterDays(c.AllDays(opts...), false)
}

func filterDays(days []Day, holiday bool) []Day {
	filtered := days[:0]
	for _, d := range days {
		if d.Holiday == holiday {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// AllDaysKeyed returns the days of the selected year indexed by key
func (c *Calendar) AllDaysKeyed(opts ...QueryOption) map[Key]Day {
	days := c.AllDays(opts...)

	keyed := make(map[Key]Day, len(days))
	for _, d := range days {
		keyed[d.Key] = d
	}
	return keyed
}

// IsSpecialDay returns the holiday or special day falling on date's
// calendar date, or nil if there is none.
func (c *Calendar) IsSpecialDay(date time.Time) (*Day, error) {
	if date.IsZero() {
		return nil, ErrMissingDate
	}

	day := dateutil.CivilDate(date)
	for _, d := range c.calc.Year(day.Year()) {
		if d.Date.Equal(day) {
			found := d
			return &found, nil
		}
	}

	return nil, nil
}

// IsHoliday returns the public holiday falling on date's calendar date,
// or nil if there is none.
func (c *Calendar) IsHoliday(date time.Time) (*Day, error) {
	d, err := c.IsSpecialDay(date)
	if err != nil || d == nil || !d.Holiday {
		return nil, err
	}
	return d, nil
}
