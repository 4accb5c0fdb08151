package league

import (
	"sync"
	"time"

	"Pindexa/internal/ports"
)

// DefaultTTL is how long an upstream answer stays fresh.
const DefaultTTL = time.Hour

type entry struct {
	value    any
	storedAt time.Time
}

// Cache keeps one timestamped value per key and reports entries older than
// the TTL as missing. Expired entries are only replaced, never evicted.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     ports.Clock
	entries map[string]entry
}

// NewCache creates a cache; a non-positive ttl selects DefaultTTL.
func NewCache(ttl time.Duration, now ports.Clock) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if now == nil {
		now = time.Now
	}
	return &Cache{ttl: ttl, now: now, entries: make(map[string]entry)}
}

// Get returns the value stored under key while it is younger than the TTL.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) >= c.ttl {
		return nil, false
	}
	return e.value, true
}

// Set stores value under key stamped with the current time.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
}
