// Package fridagar answers questions about Icelandic public holidays
// ("frídagar") and commonly celebrated special days: which days fall in a
// year or month, whether a date is a holiday, and which date lies a given
// number of working days away.
//
// All dates returned are calendar dates at midnight UTC. Dates passed in are
// reduced to the calendar date they show in their own location.
package fridagar

import (
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/username/fridagar/internal/calendar"
	"github.com/username/fridagar/pkg/dateutil"
)

// Day is a public holiday or a special day
type Day = calendar.Day

// Key identifies a holiday or special day
type Key = calendar.Key

// Holiday keys
const (
	NewYearsDay      = calendar.KeyNewYearsDay
	MaundyThursday   = calendar.KeyMaundyThursday
	GoodFriday       = calendar.KeyGoodFriday
	EasterSunday     = calendar.KeyEasterSunday
	EasterMonday     = calendar.KeyEasterMonday
	FirstDayOfSummer = calendar.KeyFirstDayOfSummer
	AscensionDay     = calendar.KeyAscensionDay
	LabourDay        = calendar.KeyLabourDay
	WhitSunday       = calendar.KeyWhitSunday
	WhitMonday       = calendar.KeyWhitMonday
	NationalDay      = calendar.KeyNationalDay
	CommerceDay      = calendar.KeyCommerceDay
	ChristmasEve     = calendar.KeyChristmasEve
	ChristmasDay     = calendar.KeyChristmasDay
	BoxingDay        = calendar.KeyBoxingDay
	NewYearsEve      = calendar.KeyNewYearsEve
)

// Special-day keys
const (
	Epiphany         = calendar.KeyEpiphany
	HusbandsDay      = calendar.KeyHusbandsDay
	BunDay           = calendar.KeyBunDay
	BurstingDay      = calendar.KeyBurstingDay
	AshWednesday     = calendar.KeyAshWednesday
	ValentinesDay    = calendar.KeyValentinesDay
	WomensDay        = calendar.KeyWomensDay
	SeamensDay       = calendar.KeySeamensDay
	SummerSolstice   = calendar.KeySummerSolstice
	Midsummer        = calendar.KeyMidsummer
	FirstDayOfWinter = calendar.KeyFirstDayOfWinter
	Halloween        = calendar.KeyHalloween
	SovereigntyDay   = calendar.KeySovereigntyDay
	WinterSolstice   = calendar.KeyWinterSolstice
	StThorlaksMass   = calendar.KeyStThorlaksMass
)

var (
	// ErrMissingDate is returned by date lookups given the zero time.Time
	ErrMissingDate = errors.New("date is required")

	// ErrInvalidMonth is returned when a month outside 1-12 is used where a
	// real month is required
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// Keys returns every holiday and special-day key
func Keys() []Key { return calendar.Keys() }

// HolidayKeys returns the keys of the public holidays
func HolidayKeys() []Key { return calendar.HolidayKeys() }

// SpecialDayKeys returns the keys of the special days
func SpecialDayKeys() []Key { return calendar.SpecialDayKeys() }

// Calendar is the entry point for holiday queries.
// It is safe for concurrent use.
type Calendar struct {
	calc   *calendar.Calculator
	clock  clockwork.Clock
	logger *zap.Logger
}

// Option configures a Calendar
type Option func(*options)

type options struct {
	clock    clockwork.Clock
	logger   *zap.Logger
	cacheTTL time.Duration
}

// WithClock sets the clock that supplies "today" and the current year when
// a query leaves them out. It also drives cache expiry.
func WithClock(clock clockwork.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithCacheTTL sets how long a computed year is kept in memory.
// A zero or negative TTL disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *options) {
		o.cacheTTL = ttl
	}
}

// New creates a new Calendar
func New(opts ...Option) *Calendar {
	o := options{
		clock:    clockwork.NewRealClock(),
		logger:   zap.NewNop(),
		cacheTTL: calendar.DefaultCacheTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Calendar{
		calc: calendar.NewCalculator(
			calendar.WithClock(o.clock),
			calendar.WithCacheTTL(o.cacheTTL),
			calendar.WithLogger(o.logger.Named("calculator")),
		),
		clock:  o.clock,
		logger: o.logger,
	}
}

// today returns the clock's current calendar date
func (c *Calendar) today() time.Time {
	return dateutil.CivilDate(c.clock.Now())
}
