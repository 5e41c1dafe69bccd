package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"bar-trivia-service/internal/questions"
)

type countingCatalog struct {
	loads int64
	pools map[string][]questions.Record
}

func (c *countingCatalog) Load(_ context.Context, genre string) ([]questions.Record, error) {
	atomic.AddInt64(&c.loads, 1)
	return c.pools[genre], nil
}

func testPools() map[string][]questions.Record {
	return map[string][]questions.Record{
		"science": {{Text: "q1", Options: []string{"a", "b"}, CorrectAnswer: "a", Topic: "Science"}},
		"history": {{Text: "q2", Options: []string{"a", "b"}, CorrectAnswer: "b", Topic: "History"}},
	}
}

func TestStaticCatalogMixedPoolsEverything(t *testing.T) {
	catalog := NewStaticCatalog(testPools())

	mixed, err := catalog.Load(context.Background(), "mixed")
	if err != nil || len(mixed) != 2 {
		t.Fatalf("expected 2 pooled records, got %d err=%v", len(mixed), err)
	}
	science, err := catalog.Load(context.Background(), "science")
	if err != nil || len(science) != 1 || science[0].Text != "q1" {
		t.Fatalf("unexpected science pool %+v err=%v", science, err)
	}
	if unknown, _ := catalog.Load(context.Background(), "opera"); len(unknown) != 0 {
		t.Fatalf("expected empty pool for unknown genre, got %+v", unknown)
	}
}

func TestCatalogCacheServesWithinTTL(t *testing.T) {
	backing := &countingCatalog{pools: testPools()}
	cache := NewCatalogCache(backing, time.Minute)

	for i := 0; i < 5; i++ {
		if _, err := cache.Load(context.Background(), "science"); err != nil {
			t.Fatalf("load %d failed: %v", i, err)
		}
	}
	if n := atomic.LoadInt64(&backing.loads); n != 1 {
		t.Fatalf("expected a single backing load, got %d", n)
	}
}

func TestCatalogCacheExpires(t *testing.T) {
	backing := &countingCatalog{pools: testPools()}
	cache := NewCatalogCache(backing, time.Minute)

	current := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	cache.clock = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	cache.Load(context.Background(), "science")
	mu.Lock()
	// past the TTL plus the 10% jitter ceiling
	current = current.Add(2 * time.Minute)
	mu.Unlock()
	cache.Load(context.Background(), "science")

	if n := atomic.LoadInt64(&backing.loads); n != 2 {
		t.Fatalf("expected reload after expiry, got %d loads", n)
	}
}

func TestCatalogCacheIsolatesGenres(t *testing.T) {
	backing := &countingCatalog{pools: testPools()}
	cache := NewCatalogCache(backing, time.Minute)

	cache.Load(context.Background(), "science")
	cache.Load(context.Background(), "history")
	if n := atomic.LoadInt64(&backing.loads); n != 2 {
		t.Fatalf("expected one backing load per genre, got %d", n)
	}
}
