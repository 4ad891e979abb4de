package calendar

import (
	"strconv"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"
)

// yearCache memoizes computed years for a short TTL.
// Entries are immutable once stored; expired entries are dropped on access
// and swept on every insert.
type yearCache struct {
	clock   clockwork.Clock
	ttl     time.Duration
	cache   map[int]*cachedYear
	cacheMu sync.RWMutex
	group   singleflight.Group
}

type cachedYear struct {
	days       []Day
	computedAt time.Time
}

func newYearCache(clock clockwork.Clock, ttl time.Duration) *yearCache {
	return &yearCache{
		clock: clock,
		ttl:   ttl,
		cache: make(map[int]*cachedYear),
	}
}

// get returns the cached days of year, computing and storing them on a miss.
// The returned slice is shared and must not be modified.
func (c *yearCache) get(year int, compute func(int) []Day) (days []Day, hit bool) {
	if c.ttl <= 0 {
		return compute(year), false
	}

	c.cacheMu.RLock()
	if cached, ok := c.cache[year]; ok {
		if c.clock.Since(cached.computedAt) < c.ttl {
			c.cacheMu.RUnlock()
			return cached.days, true
		}
	}
	c.cacheMu.RUnlock()

	v, _, _ := c.group.Do(strconv.Itoa(year), func() (interface{}, error) {
		computed := compute(year)

		c.cacheMu.Lock()
		c.evictExpiredLocked()
		c.cache[year] = &cachedYear{
			days:       computed,
			computedAt: c.clock.Now(),
		}
		c.cacheMu.Unlock()

		return computed, nil
	})

	return v.([]Day), false
}

func (c *yearCache) evictExpiredLocked() int {
	evicted := 0
	for year, cached := range c.cache {
		if c.clock.Since(cached.computedAt) >= c.ttl {
			delete(c.cache, year)
			evicted++
		}
	}
	return evicted
}

// sweep drops every expired entry and reports how many were removed
func (c *yearCache) sweep() int {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	return c.evictExpiredLocked()
}

func (c *yearCache) len() int {
	c.cacheMu.RLock()
	defer c.cacheMu.RUnlock()

	return len(c.cache)
}

func (c *yearCache) clear() {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()

	c.cache = make(map[int]*cachedYear)
}
