package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"bar-trivia-service/internal/domain"
	"bar-trivia-service/internal/questions"
	"golang.org/x/sync/singleflight"
)

// StaticCatalog serves question pools from an in-memory map (the embedded
// curated bank, or fixtures in tests).
type StaticCatalog struct {
	pools map[string][]questions.Record
}

func NewStaticCatalog(pools map[string][]questions.Record) *StaticCatalog {
	return &StaticCatalog{pools: pools}
}

// Load returns the pool for genre; the mixed sentinel pools every genre.
func (c *StaticCatalog) Load(_ context.Context, genre string) ([]questions.Record, error) {
	if genre == domain.GenreMixed || genre == "" {
		var all []questions.Record
		for _, pool := range c.pools {
			all = append(all, pool...)
		}
		return all, nil
	}
	return c.pools[genre], nil
}

// CatalogCache caches per-genre pools with TTL to avoid repeated backing
// store hits.
type CatalogCache struct {
	loader questions.Catalog
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand

	mu    sync.RWMutex
	cache map[string]cachedPool
}

type cachedPool struct {
	records   []questions.Record
	expiresAt time.Time
}

func NewCatalogCache(loader questions.Catalog, ttl time.Duration) *CatalogCache {
	return &CatalogCache{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedPool),
	}
}

func (c *CatalogCache) Load(ctx context.Context, genre string) ([]questions.Record, error) {
	now := c.clock()

	c.mu.RLock()
	if entry, ok := c.cache[genre]; ok && entry.expiresAt.After(now) {
		c.mu.RUnlock()
		return entry.records, nil
	}
	c.mu.RUnlock()

	result, err, _ := c.sf.Do(genre, func() (interface{}, error) {
		now := c.clock()
		c.mu.RLock()
		if entry, ok := c.cache[genre]; ok && entry.expiresAt.After(now) {
			c.mu.RUnlock()
			return entry.records, nil
		}
		c.mu.RUnlock()

		records, err := c.loader.Load(ctx, genre)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cache[genre] = cachedPool{
			records:   records,
			expiresAt: now.Add(c.ttlWithJitter()),
		}
		c.mu.Unlock()
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]questions.Record), nil
}

func (c *CatalogCache) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
