// journal/cache.go
package journal

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// queryCache holds recent query results keyed by their normalized
// (limit, filters) form. Entries expire after ttl; every ledger mutation
// flushes the whole cache rather than invalidating per key.
type queryCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry

	hits   uint64
	misses uint64
}

type cacheEntry struct {
	records []TradeRecord
	stored  time.Time
}

func newQueryCache(ttl time.Duration, now func() time.Time) *queryCache {
	return &queryCache{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]cacheEntry),
	}
}

// cacheKey normalizes a query so that equal queries share an entry
// regardless of filter map iteration order.
func cacheKey(limit uint, filters map[string]string) string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "limit=%d", limit)
	for _, k := range keys {
		fmt.Fprintf(&b, "&%s=%s", k, filters[k])
	}
	return b.String()
}

func (c *queryCache) get(key string) ([]TradeRecord, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || c.now().Sub(e.stored) >= c.ttl {
		c.mu.Lock()
		c.misses++
		c.mu.Unlock()
		return nil, false
	}

	c.mu.Lock()
	c.hits++
	c.mu.Unlock()

	// Hand out a fresh slice header; records themselves are immutable.
	out := make([]TradeRecord, len(e.records))
	copy(out, e.records)
	return out, true
}

func (c *queryCache) put(key string, records []TradeRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{records: records, stored: c.now()}
}

// flush drops every entry. Called on every Add and Delete so a reader can
// never observe a result staler than a write it could have seen.
func (c *queryCache) flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func (c *queryCache) stats() (hits, misses uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits, c.misses
}
