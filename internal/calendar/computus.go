package calendar

import (
	"sync"
	"time"

	"github.com/username/fridagar/pkg/dateutil"
)

const dayMs = 24 * 3600 * 1000

// One tropical year (365d 5h 47m 56.5s) in milliseconds.
const solsticeIntervalMs = (56.5 + 47*60 + 5*3600 + 365*86400) * 1000

var (
	summerSolsticeBase = time.Date(2016, time.June, 20, 22, 34, 0, 0, time.UTC)
	winterSolsticeBase = time.Date(2016, time.December, 21, 10, 44, 0, 0, time.UTC)
)

// floorDiv and floorMod keep the calendar formulas valid for negative years.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}

// easterSunday resolves Easter Sunday with the anonymous Gregorian
// computus (Meeus/Jones/Butcher).
func easterSunday(year int) time.Time {
	a := floorMod(year, 19)
	b := floorDiv(year, 100)
	c := floorMod(year, 100)
	d := floorDiv(b, 4)
	e := floorMod(b, 4)
	f := floorDiv(b+8, 25)
	g := floorDiv(b-f+1, 3)
	h := floorMod(19*a+b-d-g+15, 30)
	i := floorDiv(c, 4)
	k := floorMod(c, 4)
	l := floorMod(32+2*e+2*i-h-k, 7)
	m := floorDiv(a+11*h+22*l, 451)
	month := floorDiv(h+l-7*m+114, 31)
	day := floorMod(h+l-7*m+114, 31) + 1

	return dateutil.Date(year, time.Month(month), day)
}

// nextWeekday finds the first date on or after year-month-day that falls on
// the target weekday.
func nextWeekday(year int, month time.Month, day int, target time.Weekday) time.Time {
	anchor := dateutil.Date(year, month, day)
	return anchor.AddDate(0, 0, floorMod(int(target)-int(anchor.Weekday())+7, 7))
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var rimspillirMemo sync.Map // year → int

// rimspillir returns 1 if year is a "rímspilliár", 0 otherwise.
// A rímspilliár is followed by a leap year and begins right after a year
// that ended on a Saturday.
func rimspillir(year int) int {
	if v, ok := rimspillirMemo.Load(year); ok {
		return v.(int)
	}

	r := 0
	if isLeapYear(year+1) && dateutil.Date(year-1, time.December, 31).Weekday() == time.Saturday {
		r = 1
	}
	rimspillirMemo.Store(year, r)
	return r
}

// solstice approximates the summer or winter solstice of year by stepping
// whole tropical years from a 2016 reference instant. The offset is applied
// as whole days plus a millisecond remainder so it never overflows a
// time.Duration.
func solstice(year int, winter bool) time.Time {
	base := summerSolsticeBase
	if winter {
		base = winterSolsticeBase
	}

	n := year - 2016
	interval := int64(solsticeIntervalMs)
	wholeDays := interval / dayMs
	remainderMs := interval % dayMs

	extra := int64(n) * remainderMs
	extraDays := floorDiv64(extra, dayMs)
	extraMs := extra - extraDays*dayMs

	t := base.AddDate(0, 0, n*int(wholeDays)+int(extraDays)).
		Add(time.Duration(extraMs) * time.Millisecond)

	return dateutil.CivilDate(t)
}

func floorDiv64(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
