package fridagar

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/username/fridagar/pkg/dateutil"
)

func newTestCalendar(t *testing.T, now time.Time) *Calendar {
	t.Helper()
	return New(
		WithClock(clockwork.NewFakeClockAt(now)),
		WithLogger(zap.NewNop()),
	)
}

func keysOf(days []Day) []Key {
	keys := make([]Key, 0, len(days))
	for _, d := range days {
		keys = append(keys, d.Key)
	}
	return keys
}

func TestAllDays_DefaultsToCurrentYear(t *testing.T) {
	cal := newTestCalendar(t, time.Date(2024, 5, 15, 9, 30, 0, 0, time.UTC))

	days := cal.AllDays()
	require.Len(t, days, len(Keys()))
	assert.Equal(t, dateutil.Date(2024, time.January, 1), days[0].Date)
	assert.Equal(t, NewYearsDay, days[0].Key)
	assert.Equal(t, NewYearsEve, days[len(days)-1].Key)

	for _, d := range days {
		assert.Equal(t, 2024, d.Date.Year(), "day %s", d.Key)
	}
}

func TestAllDays_ExplicitYear(t *testing.T) {
	cal := newTestCalendar(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	keyed := cal.AllDaysKeyed(Year(2023))
	require.Len(t, keyed, len(Keys()))
	assert.Equal(t, dateutil.Date(2023, time.April, 9), keyed[EasterSunday].Date)
	assert.Equal(t, dateutil.Date(2023, time.December, 22), keyed[WinterSolstice].Date)
}

func TestAllDays_MonthFilter(t *testing.T) {
	cal := newTestCalendar(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	december := cal.AllDays(Year(2024), Month(12))
	assert.Equal(t, []Key{
		SovereigntyDay,
		WinterSolstice,
		StThorlaksMass,
		ChristmasEve,
		ChristmasDay,
		BoxingDay,
		NewYearsEve,
	}, keysOf(december))

	for _, month := range []int{0, 13, -1} {
		assert.Empty(t, cal.AllDays(Year(2024), Month(month)), "month %d", month)
	}
}

func TestHolidaysAndOtherDays_Partition(t *testing.T) {
	cal := newTestCalendar(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	for _, year := range []int{1900, 2023, 2024, 2107} {
		holidays := cal.Holidays(Year(year))
		others := cal.OtherDays(Year(year))

		assert.Len(t, holidays, len(HolidayKeys()), "year %d", year)
		assert.Len(t, others, len(SpecialDayKeys()), "year %d", year)
		assert.ElementsMatch(t, HolidayKeys(), keysOf(holidays), "year %d", year)
		assert.ElementsMatch(t, SpecialDayKeys(), keysOf(others), "year %d", year)

		for _, d := range holidays {
			assert.True(t, d.Holiday)
		}
		for _, d := range others {
			assert.False(t, d.Holiday)
			assert.False(t, d.HalfDay)
		}
	}
}

func TestAllDays_ReturnsCopies(t *testing.T) {
	cal := newTestCalendar(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	first := cal.AllDays(Year(2024))
	first[0].Description = "changed"
	first[0].Date = first[0].Date.AddDate(0, 0, 3)

	keyed := cal.AllDaysKeyed(Year(2024))
	delete(keyed, NewYearsDay)

	second := cal.AllDays(Year(2024))
	assert.Equal(t, "Nýársdagur", second[0].Description)
	assert.Equal(t, dateutil.Date(2024, time.January, 1), second[0].Date)
	assert.Len(t, cal.AllDaysKeyed(Year(2024)), len(Keys()))
}

func TestIsSpecialDay(t *testing.T) {
	cal := newTestCalendar(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name    string
		date    time.Time
		wantKey Key
		holiday bool
	}{
		{
			name:    "winter solstice is special",
			date:    dateutil.Date(2023, time.December, 22),
			wantKey: WinterSolstice,
		},
		{
			name:    "christmas day",
			date:    dateutil.Date(2023, time.December, 25),
			wantKey: ChristmasDay,
			holiday: true,
		},
		{
			name:    "time of day ignored",
			date:    time.Date(2023, time.December, 31, 23, 59, 59, 0, time.UTC),
			wantKey: NewYearsEve,
			holiday: true,
		},
		{
			name:    "civil date in own location",
			date:    time.Date(2024, time.December, 25, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			wantKey: ChristmasDay,
			holiday: true,
		},
		{
			name: "ordinary day",
			date: dateutil.Date(2023, time.December, 27),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := cal.IsSpecialDay(tt.date)
			require.NoError(t, err)

			if tt.wantKey == "" {
				assert.Nil(t, day)
				return
			}
			require.NotNil(t, day)
			assert.Equal(t, tt.wantKey, day.Key)
			assert.Equal(t, tt.holiday, day.Holiday)
			assert.Equal(t, dateutil.CivilDate(tt.date), day.Date)
		})
	}
}

func TestIsHoliday(t *testing.T) {
	cal := newTestCalendar(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	day, err := cal.IsHoliday(dateutil.Date(2023, time.December, 22))
	require.NoError(t, err)
	assert.Nil(t, day, "solstice is not a holiday")

	day, err = cal.IsHoliday(dateutil.Date(2023, time.December, 25))
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, ChristmasDay, day.Key)
	assert.False(t, day.HalfDay)

	day, err = cal.IsHoliday(dateutil.Date(2023, time.December, 31))
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, NewYearsEve, day.Key)
	assert.True(t, day.HalfDay)
}

func TestLookups_MissingDate(t *testing.T) {
	cal := newTestCalendar(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	_, err := cal.IsSpecialDay(time.Time{})
	assert.ErrorIs(t, err, ErrMissingDate)

	_, err = cal.IsHoliday(time.Time{})
	assert.ErrorIs(t, err, ErrMissingDate)

	_, err = cal.GetDayInfo(time.Time{})
	assert.ErrorIs(t, err, ErrMissingDate)

	ok, hours, err := cal.IsWorkday(time.Time{})
	assert.ErrorIs(t, err, ErrMissingDate)
	assert.False(t, ok)
	assert.Zero(t, hours)
}

func TestKeys(t *testing.T) {
	assert.Len(t, HolidayKeys(), 16)
	assert.Len(t, SpecialDayKeys(), 15)
	assert.Equal(t, append(HolidayKeys(), SpecialDayKeys()...), Keys())

	keys := Keys()
	keys[0] = "changed"
	assert.Equal(t, NewYearsDay, Keys()[0])
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())

	day, err := IsHoliday(dateutil.Date(2024, time.June, 17))
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, NationalDay, day.Key)

	assert.Len(t, AllDays(Year(2024)), len(Keys()))
	assert.Len(t, Holidays(Year(2024)), len(HolidayKeys()))
	assert.Len(t, OtherDays(Year(2024)), len(SpecialDayKeys()))
	assert.Len(t, AllDaysKeyed(Year(2024)), len(Keys()))

	day, err = IsSpecialDay(dateutil.Date(2024, time.October, 31))
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, Halloween, day.Key)

	got := WorkdaysFromDate(1, From(dateutil.Date(2023, time.December, 29)))
	assert.Equal(t, dateutil.Date(2024, time.January, 2), got)
}
