package scoring

import (
	"container/list"
	"sync"
	"time"

	"github.com/nadavyigal/new-ResumeBuilder-ai--sub006/internal/types"
)

// Quick-win cache bounds. Entries expire after the TTL; once capacity is
// exceeded the oldest entry is evicted.
const (
	quickWinTTL      = 30 * time.Minute
	quickWinCapacity = 100
)

// quickWinCache is a small TTL cache for generated quick wins. Reads and
// writes are safe under concurrent access; slightly stale hits are fine.
type quickWinCache struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	order   *list.List // keys in insertion order, oldest first
	ttl     time.Duration
	cap     int
	now     func() time.Time
}

type cacheEntry struct {
	wins     []types.QuickWin
	storedAt time.Time
	elem     *list.Element
}

func newQuickWinCache(ttl time.Duration, capacity int) *quickWinCache {
	return &quickWinCache{
		entries: make(map[string]*cacheEntry),
		order:   list.New(),
		ttl:     ttl,
		cap:     capacity,
		now:     time.Now,
	}
}

func (c *quickWinCache) get(key string) ([]types.QuickWin, bool) {
	// Copy the entry's fields before releasing the lock; put mutates
	// entries in place, so nothing may be read unlocked.
	c.mu.RLock()
	entry, ok := c.entries[key]
	var wins []types.QuickWin
	var storedAt time.Time
	if ok {
		wins = entry.wins
		storedAt = entry.storedAt
	}
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().Sub(storedAt) > c.ttl {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have
		// refreshed the entry.
		if current, still := c.entries[key]; still && c.now().Sub(current.storedAt) > c.ttl {
			c.order.Remove(current.elem)
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return wins, true
}

func (c *quickWinCache) put(key string, wins []types.QuickWin) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.entries[key]; ok {
		existing.wins = wins
		existing.storedAt = c.now()
		c.order.MoveToBack(existing.elem)
		return
	}

	for len(c.entries) >= c.cap {
		oldest := c.order.Front()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(string))
	}

	elem := c.order.PushBack(key)
	c.entries[key] = &cacheEntry{wins: wins, storedAt: c.now(), elem: elem}
}
