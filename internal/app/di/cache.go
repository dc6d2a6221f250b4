package di

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"lpclass_backend/internal/feature/pairs/usecase"
	"lpclass_backend/internal/platform/cache"
	"lpclass_backend/internal/platform/metrics"
)

// NewPairRepository wraps inner with a cache.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to an in-process cache, or no cache if that cannot be created.
func NewPairRepository(rdb *redis.Client, ttl time.Duration, inner usecase.PairRepository, m *metrics.Registry) *cache.CachingPairRepository {
	var repo *cache.CachingPairRepository
	if rdb != nil {
		repo = cache.NewCachingPairRepository(rdb, nil, ttl, inner, "pairs")
	} else {
		local, err := cache.NewLocalCache()
		if err != nil {
			slog.Warn("in-process cache unavailable, running without cache", "error", err)
		}
		repo = cache.NewCachingPairRepository(nil, local, ttl, inner, "pairs")
	}
	if m != nil {
		repo.WithRecorder(m)
	}
	return repo
}
