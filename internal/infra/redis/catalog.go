package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"bar-trivia-service/internal/questions"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// Catalog caches per-genre question pools in Redis and falls back to a
// loader on cache miss. Pools are stored as: SET trivia:catalog:{genre} with
// the JSON-encoded record slice.
type Catalog struct {
	client *redis.Client
	loader questions.Catalog
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

func NewCatalog(client *redis.Client, loader questions.Catalog, ttl time.Duration) *Catalog {
	return &Catalog{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (c *Catalog) Load(ctx context.Context, genre string) ([]questions.Record, error) {
	key := c.key(genre)

	if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var records []questions.Record
		if err := json.Unmarshal(raw, &records); err == nil {
			return records, nil
		}
	}

	result, err, _ := c.sf.Do(genre, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
			var records []questions.Record
			if err := json.Unmarshal(raw, &records); err == nil {
				return records, nil
			}
		}

		records, err := c.loader.Load(ctx, genre)
		if err != nil {
			return nil, err
		}

		if raw, err := json.Marshal(records); err == nil {
			_ = c.client.Set(ctx, key, raw, c.ttlWithJitter()).Err()
		}
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return result.([]questions.Record), nil
}

func (c *Catalog) key(genre string) string {
	return "trivia:catalog:" + genre
}

func (c *Catalog) ttlWithJitter() time.Duration {
	if c.ttl <= 0 {
		return 0
	}
	jitterMax := int64(c.ttl) / 10
	return c.ttl + time.Duration(c.rnd.Int63n(jitterMax+1))
}
