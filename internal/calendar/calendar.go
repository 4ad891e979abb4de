// Package calendar derives the Icelandic public holidays and commonly
// celebrated special days for any year.
package calendar

import "time"

// Key is a stable identifier of a holiday or special day.
// Holiday keys and special-day keys are disjoint.
type Key string

// Holiday keys
const (
	KeyNewYearsDay      Key = "nyars"
	KeyMaundyThursday   Key = "skir"
	KeyGoodFriday       Key = "foslangi"
	KeyEasterSunday     Key = "paska"
	KeyEasterMonday     Key = "paska2"
	KeyFirstDayOfSummer Key = "sumar1"
	KeyAscensionDay     Key = "uppst"
	KeyLabourDay        Key = "mai1"
	KeyWhitSunday       Key = "hvitas"
	KeyWhitMonday       Key = "hvitas2"
	KeyNationalDay      Key = "jun17"
	KeyCommerceDay      Key = "verslm"
	KeyChristmasEve     Key = "adfanga"
	KeyChristmasDay     Key = "jola"
	KeyBoxingDay        Key = "jola2"
	KeyNewYearsEve      Key = "gamlars"
)

// Special-day keys
const (
	KeyEpiphany         Key = "þrettand"
	KeyHusbandsDay      Key = "bonda"
	KeyBunDay           Key = "bollu"
	KeyBurstingDay      Key = "sprengi"
	KeyAshWednesday     Key = "osku"
	KeyValentinesDay    Key = "valent"
	KeyWomensDay        Key = "konu"
	KeySeamensDay       Key = "sjomanna"
	KeySummerSolstice   Key = "sumsolst"
	KeyMidsummer        Key = "jonsm"
	KeyFirstDayOfWinter Key = "vetur1"
	KeyHalloween        Key = "hrekkja"
	KeySovereigntyDay   Key = "fullv"
	KeyWinterSolstice   Key = "vetsolst"
	KeyStThorlaksMass   Key = "thorl"
)

var holidayKeys = []Key{
	KeyNewYearsDay,
	KeyMaundyThursday,
	KeyGoodFriday,
	KeyEasterSunday,
	KeyEasterMonday,
	KeyFirstDayOfSummer,
	KeyAscensionDay,
	KeyLabourDay,
	KeyWhitSunday,
	KeyWhitMonday,
	KeyNationalDay,
	KeyCommerceDay,
	KeyChristmasEve,
	KeyChristmasDay,
	KeyBoxingDay,
	KeyNewYearsEve,
}

var specialDayKeys = []Key{
	KeyEpiphany,
	KeyHusbandsDay,
	KeyBunDay,
	KeyBurstingDay,
	KeyAshWednesday,
	KeyValentinesDay,
	KeyWomensDay,
	KeySeamensDay,
	KeySummerSolstice,
	KeyMidsummer,
	KeyFirstDayOfWinter,
	KeyHalloween,
	KeySovereigntyDay,
	KeyWinterSolstice,
	KeyStThorlaksMass,
}

// HolidayKeys returns the keys of all public holidays
func HolidayKeys() []Key {
	return append([]Key(nil), holidayKeys...)
}

// SpecialDayKeys returns the keys of all special (non-holiday) days
func SpecialDayKeys() []Key {
	return append([]Key(nil), specialDayKeys...)
}

// Keys returns every key of the enumeration, holidays first
func Keys() []Key {
	keys := make([]Key, 0, len(holidayKeys)+len(specialDayKeys))
	keys = append(keys, holidayKeys...)
	return append(keys, specialDayKeys...)
}

// IsHolidayKey reports whether k identifies a public holiday
func (k Key) IsHolidayKey() bool {
	for _, hk := range holidayKeys {
		if hk == k {
			return true
		}
	}
	return false
}

// Day describes a public holiday or a special day.
//
// Day is a plain value: copying it yields an independent record.
type Day struct {
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Key         Key       `json:"key"`
	Holiday     bool      `json:"holiday"`
	HalfDay     bool      `json:"halfDay,omitempty"`
}

func holiday(date time.Time, key Key, description string) Day {
	return Day{Date: date, Description: description, Key: key, Holiday: true}
}

// halfDayHoliday is the only way to produce a Day with HalfDay set.
func halfDayHoliday(date time.Time, key Key, description string) Day {
	d := holiday(date, key, description)
	d.HalfDay = true
	return d
}

func special(date time.Time, key Key, description string) Day {
	return Day{Date: date, Description: description, Key: key}
}
