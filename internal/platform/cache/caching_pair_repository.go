// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/redis/go-redis/v9"

	"lpclass_backend/internal/feature/pairs/domain/entity"
	"lpclass_backend/internal/feature/pairs/usecase"
)

// DefaultTTL matches the 60s revalidation window of the page.
const DefaultTTL = 60 * time.Second

// Recorder receives cache hit/miss events.
type Recorder interface {
	ObserveCache(cache, result string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCache(string, string) {}

// CachingPairRepository decorates a PairRepository with Redis caching.
// When Redis is not configured it falls back to an in-process ristretto cache,
// and when neither is configured every call goes to the inner repository.
type CachingPairRepository struct {
	inner     usecase.PairRepository
	rdb       *redis.Client
	local     *ristretto.Cache
	ttl       time.Duration
	namespace string
	recorder  Recorder
}

var _ usecase.PairRepository = (*CachingPairRepository)(nil)

// NewCachingPairRepository decorates a PairRepository with caching.
// If ttl is 0, it defaults to DefaultTTL. If namespace is empty, it uses "pairs".
func NewCachingPairRepository(rdb *redis.Client, local *ristretto.Cache, ttl time.Duration, inner usecase.PairRepository, namespace string) *CachingPairRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "pairs"
	}
	return &CachingPairRepository{
		inner:     inner,
		rdb:       rdb,
		local:     local,
		ttl:       ttl,
		namespace: namespace,
		recorder:  nopRecorder{},
	}
}

// WithRecorder sets where hit/miss events are reported and returns c.
func (c *CachingPairRepository) WithRecorder(r Recorder) *CachingPairRepository {
	if r != nil {
		c.recorder = r
	}
	return c
}

// Backend reports which cache is active: "redis", "memory" or "none".
func (c *CachingPairRepository) Backend() string {
	switch {
	case c.rdb != nil:
		return "redis"
	case c.local != nil:
		return "memory"
	default:
		return "none"
	}
}

// ListPairs returns cached pairs for chain, fetching from the inner repository on a miss.
// Errors are never cached.
func (c *CachingPairRepository) ListPairs(ctx context.Context, chain string) ([]entity.Pair, error) {
	switch {
	case c.rdb != nil:
		return c.listRedis(ctx, chain)
	case c.local != nil:
		return c.listLocal(ctx, chain)
	default:
		return c.inner.ListPairs(ctx, chain)
	}
}

func (c *CachingPairRepository) listRedis(ctx context.Context, chain string) ([]entity.Pair, error) {
	key := c.cacheKey(chain)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Pair
		if err := json.Unmarshal(b, &out); err == nil {
			c.recorder.ObserveCache("redis", "hit")
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}
	c.recorder.ObserveCache("redis", "miss")

	// 2) Fallback to upstream
	out, err := c.inner.ListPairs(ctx, chain)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return out, nil
}

func (c *CachingPairRepository) listLocal(ctx context.Context, chain string) ([]entity.Pair, error) {
	key := c.cacheKey(chain)

	if v, ok := c.local.Get(key); ok {
		if out, ok := v.([]entity.Pair); ok {
			c.recorder.ObserveCache("memory", "hit")
			return out, nil
		}
		c.local.Del(key)
	}
	c.recorder.ObserveCache("memory", "miss")

	out, err := c.inner.ListPairs(ctx, chain)
	if err != nil {
		return nil, err
	}
	c.local.SetWithTTL(key, out, int64(len(out))+1, c.ttl)
	return out, nil
}

// cacheKey generates a cache key for a chain.
func (c *CachingPairRepository) cacheKey(chain string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(chain))
}

// NewLocalCache creates the in-process cache used when Redis is unavailable.
// Cost is counted in pairs.
func NewLocalCache() (*ristretto.Cache, error) {
	return ristretto.NewCache(&ristretto.Config{
		NumCounters: 1_000,
		MaxCost:     10_000,
		BufferItems: 64,
	})
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
