package fridagar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/username/fridagar/pkg/dateutil"
)

func TestGetDayInfo(t *testing.T) {
	cal := newTestCalendar(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name      string
		date      time.Time
		wantType  DayType
		wantHours int
		wantNote  string
		wantKey   Key
	}{
		{
			name:      "regular workday",
			date:      dateutil.Date(2024, time.December, 20),
			wantType:  DayTypeWorkday,
			wantHours: FullDayHours,
		},
		{
			name:      "special day is still a workday",
			date:      dateutil.Date(2024, time.December, 23),
			wantType:  DayTypeWorkday,
			wantHours: FullDayHours,
			wantNote:  "Þorláksmessa",
			wantKey:   StThorlaksMass,
		},
		{
			name:     "weekend",
			date:     dateutil.Date(2024, time.December, 22),
			wantType: DayTypeWeekend,
		},
		{
			name:      "half-day holiday",
			date:      dateutil.Date(2024, time.December, 24),
			wantType:  DayTypeShortened,
			wantHours: HalfDayHours,
			wantNote:  "Aðfangadagur",
			wantKey:   ChristmasEve,
		},
		{
			name:     "holiday",
			date:     dateutil.Date(2024, time.December, 25),
			wantType: DayTypeHoliday,
			wantNote: "Jóladagur",
			wantKey:  ChristmasDay,
		},
		{
			name:     "holiday on a weekend",
			date:     dateutil.Date(2023, time.June, 17),
			wantType: DayTypeWeekend,
			wantNote: "Þjóðhátíðardagurinn",
			wantKey:  NationalDay,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := cal.GetDayInfo(tt.date)
			require.NoError(t, err)

			assert.Equal(t, tt.date, info.Date)
			assert.Equal(t, tt.wantType, info.Type, "got %s", info.Type)
			assert.Equal(t, tt.wantHours, info.WorkingHours)
			assert.Equal(t, tt.wantHours > 0, info.IsWorkday)
			assert.Equal(t, tt.wantNote, info.Note)

			if tt.wantKey == "" {
				assert.Nil(t, info.Special)
			} else {
				require.NotNil(t, info.Special)
				assert.Equal(t, tt.wantKey, info.Special.Key)
			}

			ok, hours, err := cal.IsWorkday(tt.date)
			require.NoError(t, err)
			assert.Equal(t, info.IsWorkday, ok)
			assert.Equal(t, info.WorkingHours, hours)
		})
	}
}

func TestGetMonthInfo(t *testing.T) {
	cal := newTestCalendar(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	tests := []struct {
		name         string
		year         int
		month        time.Month
		wantWorkDays int
		wantWeekends int
		wantHolidays int
		wantHours    int
	}{
		{
			name:         "december 2023, eves on sundays",
			year:         2023,
			month:        time.December,
			wantWorkDays: 19,
			wantWeekends: 10,
			wantHolidays: 2,
			wantHours:    19 * FullDayHours,
		},
		{
			name:         "december 2024, eves on tuesdays",
			year:         2024,
			month:        time.December,
			wantWorkDays: 20,
			wantWeekends: 9,
			wantHolidays: 2,
			wantHours:    18*FullDayHours + 2*HalfDayHours,
		},
		{
			name:         "february 2024, leap year",
			year:         2024,
			month:        time.February,
			wantWorkDays: 21,
			wantWeekends: 8,
			wantHours:    21 * FullDayHours,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := cal.GetMonthInfo(tt.year, tt.month)
			require.NoError(t, err)

			assert.Equal(t, tt.year, info.Year)
			assert.Equal(t, tt.month, info.Month)
			assert.Len(t, info.Days, dateutil.DaysInMonth(tt.year, tt.month))
			assert.Equal(t, tt.wantWorkDays, info.WorkDays)
			assert.Equal(t, tt.wantWeekends, info.Weekends)
			assert.Equal(t, tt.wantHolidays, info.Holidays)
			assert.Equal(t, tt.wantHours, info.WorkingHours)

			for i, day := range info.Days {
				assert.Equal(t, dateutil.Date(tt.year, tt.month, i+1), day.Date)
			}
		})
	}
}

func TestGetMonthInfo_InvalidMonth(t *testing.T) {
	cal := newTestCalendar(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC))

	for _, month := range []time.Month{0, 13} {
		info, err := cal.GetMonthInfo(2024, month)
		assert.ErrorIs(t, err, ErrInvalidMonth)
		assert.Nil(t, info)
	}
}

func TestDayType_String(t *testing.T) {
	assert.Equal(t, "workday", DayTypeWorkday.String())
	assert.Equal(t, "weekend", DayTypeWeekend.String())
	assert.Equal(t, "holiday", DayTypeHoliday.String())
	assert.Equal(t, "shortened", DayTypeShortened.String())
	assert.Equal(t, "DayType(0)", DayType(0).String())
}
