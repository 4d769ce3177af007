package movegen

import (
	"sync"

	"github.com/cardspan/kspider/game"
	"github.com/cardspan/kspider/move"
	"github.com/cespare/xxhash/v2"
)

// Cache memoizes the tableau-to-tableau groups (§4.3 groups 3 and 6),
// keyed by the face-up layout of every column alone. Which moves are
// legal follows from that layout, but the order of group 3 also depends
// on face-down lengths; a hit returns the order computed for the first
// position seen with that layout. It is owned
// by one Solver and lives for the whole search; it is never shared
// across solves. The search goroutine is the only writer, but the
// solver's diagnostics goroutine reads HitRatio/Len concurrently, so
// access is mutex-guarded the same way cache.Set guards its LRU state.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64]cacheEntry
	hits    uint64
	misses  uint64
}

type cacheEntry struct {
	revealing    []move.Move
	nonRevealing []move.Move
}

// NewCache returns an empty per-solver tableau-to-tableau move cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]cacheEntry)}
}

func (c *Cache) get(g *game.Game) (cacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[c.key(g)]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return e, ok
}

func (c *Cache) put(g *game.Game, revealing, nonRevealing []move.Move) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[c.key(g)] = cacheEntry{revealing: revealing, nonRevealing: nonRevealing}
}

func (c *Cache) key(g *game.Game) uint64 {
	return xxhash.Sum64String(g.TableauSignature())
}

// HitRatio reports the running cache hit ratio, for the diagnostic stream
// (§4.5 "enumerator-cache hit ratio"). Returns 0 if the cache has never
// been queried.
func (c *Cache) HitRatio() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}

// Len reports the number of distinct face-up layouts currently cached.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
