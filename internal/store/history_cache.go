package store

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/i474232898/india-weather-history/internal/weather"
)

// HistoryMemoryCache keeps resolution results in process memory with a TTL.
type HistoryMemoryCache struct {
	cache *cache.Cache
}

// NewHistoryMemoryCache creates a cache whose entries expire after ttl.
func NewHistoryMemoryCache(ttl time.Duration) *HistoryMemoryCache {
	return &HistoryMemoryCache{
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *HistoryMemoryCache) Get(_ context.Context, key string) (weather.ResolutionResult, bool, error) {
	v, found := c.cache.Get(key)
	if !found {
		return weather.ResolutionResult{}, false, nil
	}
	result, ok := v.(weather.ResolutionResult)
	if !ok {
		c.cache.Delete(key)
		return weather.ResolutionResult{}, false, nil
	}
	return result, true, nil
}

func (c *HistoryMemoryCache) Put(_ context.Context, key string, result weather.ResolutionResult) error {
	c.cache.Set(key, result, cache.DefaultExpiration)
	return nil
}

// ItemCount reports the number of cached entries, including expired ones
// not yet cleaned up.
func (c *HistoryMemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}

// TieredHistoryCache reads through a fast cache into a durable one and
// backfills the fast cache on a durable hit. Writes go to both.
type TieredHistoryCache struct {
	fast    weather.HistoryCache
	durable weather.HistoryCache
	logger  *zap.SugaredLogger
}

func NewTieredHistoryCache(fast, durable weather.HistoryCache, logger *zap.SugaredLogger) *TieredHistoryCache {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &TieredHistoryCache{fast: fast, durable: durable, logger: logger}
}

func (t *TieredHistoryCache) Get(ctx context.Context, key string) (weather.ResolutionResult, bool, error) {
	if result, ok, err := t.fast.Get(ctx, key); err == nil && ok {
		return result, true, nil
	}

	result, ok, err := t.durable.Get(ctx, key)
	if err != nil || !ok {
		return weather.ResolutionResult{}, false, err
	}
	if err := t.fast.Put(ctx, key, result); err != nil {
		t.logger.Warnw("history cache backfill failed", "key", key, "error", err)
	}
	return result, true, nil
}

// Put writes to both layers. A durable failure is returned after the fast
// layer has been updated.
func (t *TieredHistoryCache) Put(ctx context.Context, key string, result weather.ResolutionResult) error {
	if err := t.fast.Put(ctx, key, result); err != nil {
		t.logger.Warnw("history memory cache write failed", "key", key, "error", err)
	}
	return t.durable.Put(ctx, key, result)
}
