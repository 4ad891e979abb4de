package calendar

import (
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// DefaultCacheTTL is how long a computed year stays cached by default
const DefaultCacheTTL = 500 * time.Millisecond

// Calculator computes the holidays and special days of a year and caches
// the result for a short while. It is safe for concurrent use.
type Calculator struct {
	cache  *yearCache
	logger *zap.Logger
}

// Option configures a Calculator
type Option func(*calculatorOptions)

type calculatorOptions struct {
	clock    clockwork.Clock
	cacheTTL time.Duration
	logger   *zap.Logger
}

// WithClock sets the clock used to expire cached years
func WithClock(clock clockwork.Clock) Option {
	return func(o *calculatorOptions) {
		o.clock = clock
	}
}

// WithCacheTTL sets how long a computed year stays cached.
// A zero or negative TTL disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *calculatorOptions) {
		o.cacheTTL = ttl
	}
}

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(o *calculatorOptions) {
		o.logger = logger
	}
}

// NewCalculator creates a new Calculator
func NewCalculator(opts ...Option) *Calculator {
	o := calculatorOptions{
		clock:    clockwork.NewRealClock(),
		cacheTTL: DefaultCacheTTL,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Calculator{
		cache:  newYearCache(o.clock, o.cacheTTL),
		logger: o.logger,
	}
}

// Year returns every holiday and special day of year sorted by date.
// Any integer year is accepted. The returned slice is a fresh copy.
func (c *Calculator) Year(year int) []Day {
	days, hit := c.cache.get(year, c.compute)
	if hit {
		c.logger.Debug("Using cached year", zap.Int("year", year))
	}

	return append([]Day(nil), days...)
}

// Holidays returns only the public holidays of year
func (c *Calculator) Holidays(year int) []Day {
	all := c.Year(year)
	holidays := all[:0]
	for _, d := range all {
		if d.Holiday {
			holidays = append(holidays, d)
		}
	}
	return holidays
}

func (c *Calculator) compute(year int) []Day {
	start := time.Now()
	days := computeYear(year)

	c.logger.Debug("Year computed",
		zap.Int("year", year),
		zap.Int("days", len(days)),
		zap.Duration("took", time.Since(start)))

	return days
}

// Sweep drops expired years from the cache
func (c *Calculator) Sweep() {
	if n := c.cache.sweep(); n > 0 {
		c.logger.Debug("Expired years evicted", zap.Int("count", n))
	}
}

// CachedYears returns the number of years currently held in the cache
func (c *Calculator) CachedYears() int {
	return c.cache.len()
}

// ClearCache clears the cache
func (c *Calculator) ClearCache() {
	c.cache.clear()
	c.logger.Debug("Year cache cleared")
}
