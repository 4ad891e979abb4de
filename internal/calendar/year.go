package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/username/fridagar/pkg/dateutil"
)

// computeYear derives every holiday and special day of year, sorted by date
// with holidays ahead of special days on the same date.
func computeYear(year int) []Day {
	easter := easterSunday(year)
	fromEaster := func(days int) time.Time {
		return easter.AddDate(0, 0, days)
	}
	fixed := func(month time.Month, day int) time.Time {
		return dateutil.Date(year, month, day)
	}

	husbandsDay := nextWeekday(year, time.January, 19+rimspillir(year-1), time.Friday)
	whitSunday := fromEaster(49)

	// Seamen's Day moves a week when Whit Sunday takes the first Sunday of June
	seamensAnchor := 1
	if whitSunday.Month() == time.June && whitSunday.Day() < 8 {
		seamensAnchor = 8
	}

	days := []Day{
		holiday(fixed(time.January, 1), KeyNewYearsDay, "Nýársdagur"),
		special(fixed(time.January, 6), KeyEpiphany, "Þrettándinn"),
		special(husbandsDay, KeyHusbandsDay, "Bóndadagur"),
		special(fromEaster(-48), KeyBunDay, "Bolludagur"),
		special(fromEaster(-47), KeyBurstingDay, "Sprengidagur"),
		special(fromEaster(-46), KeyAshWednesday, "Öskudagur"),
		special(fixed(time.February, 14), KeyValentinesDay, "Valentínusardagur"),
		special(husbandsDay.AddDate(0, 0, 30), KeyWomensDay, "Konudagur"),
		holiday(fromEaster(-3), KeyMaundyThursday, "Skírdagur"),
		holiday(fromEaster(-2), KeyGoodFriday, "Föstudagurinn langi"),
		holiday(easter, KeyEasterSunday, "Páskadagur"),
		holiday(fromEaster(1), KeyEasterMonday, "Annar í páskum"),
		holiday(nextWeekday(year, time.April, 19, time.Thursday), KeyFirstDayOfSummer, "Sumardagurinn fyrsti"),
		holiday(fixed(time.May, 1), KeyLabourDay, "Verkalýðsdagurinn"),
		holiday(fromEaster(39), KeyAscensionDay, "Uppstigningardagur"),
		holiday(whitSunday, KeyWhitSunday, "Hvítasunnudagur"),
		holiday(fromEaster(50), KeyWhitMonday, "Annar í Hvítasunnu"),
		special(nextWeekday(year, time.June, seamensAnchor, time.Sunday), KeySeamensDay, "Sjómannadagurinn"),
		holiday(fixed(time.June, 17), KeyNationalDay, "Þjóðhátíðardagurinn"),
		special(solstice(year, false), KeySummerSolstice, "Sumarsólstöður"),
		special(fixed(time.June, 24), KeyMidsummer, "Jónsmessa"),
		holiday(nextWeekday(year, time.August, 1, time.Monday), KeyCommerceDay, "Frídagur verslunarmanna"),
		special(nextWeekday(year, time.October, 21+rimspillir(year), time.Saturday), KeyFirstDayOfWinter, "Fyrsti vetrardagur"),
		special(fixed(time.October, 31), KeyHalloween, "Hrekkjavaka"),
		special(fixed(time.December, 1), KeySovereigntyDay, "Fullveldisdagurinn"),
		special(solstice(year, true), KeyWinterSolstice, "Vetrarsólstöður"),
		special(fixed(time.December, 23), KeyStThorlaksMass, "Þorláksmessa"),
		halfDayHoliday(fixed(time.December, 24), KeyChristmasEve, "Aðfangadagur"),
		holiday(fixed(time.December, 25), KeyChristmasDay, "Jóladagur"),
		holiday(fixed(time.December, 26), KeyBoxingDay, "Annar í Jólum"),
		halfDayHoliday(fixed(time.December, 31), KeyNewYearsEve, "Gamlársdagur"),
	}

	sortDays(days)
	mustCoverKeys(days)

	return days
}

// sortDays orders by date; on the same date holidays come first so that
// simple lookups find the holiday record.
func sortDays(days []Day) {
	sort.SliceStable(days, func(i, j int) bool {
		if !days[i].Date.Equal(days[j].Date) {
			return days[i].Date.Before(days[j].Date)
		}
		return days[i].Holiday && !days[j].Holiday
	})
}

// mustCoverKeys panics unless days holds every key exactly once and each
// key sits on the matching side of the holiday/special split.
func mustCoverKeys(days []Day) {
	if err := checkKeys(days); err != nil {
		panic(err)
	}
}

func checkKeys(days []Day) error {
	seen := make(map[Key]int, len(days))
	for _, d := range days {
		seen[d.Key]++
		if d.Key.IsHolidayKey() != d.Holiday {
			return fmt.Errorf("day %q has holiday=%v", d.Key, d.Holiday)
		}
		if d.HalfDay && !d.Holiday {
			return fmt.Errorf("special day %q marked as half-day", d.Key)
		}
	}

	for _, k := range Keys() {
		if seen[k] != 1 {
			return fmt.Errorf("key %q produced %d times", k, seen[k])
		}
	}
	if len(seen) != len(Keys()) {
		return fmt.Errorf("unexpected keys: %d distinct keys, want %d", len(seen), len(Keys()))
	}

	return nil
}
