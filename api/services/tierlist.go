package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"legendstats/api/cache"
	"legendstats/api/dto"
	"legendstats/api/repositories"
	"legendstats/pkg/tierlist"
)

// Cache durations of the tier list, layered hottest to coldest.
const (
	tierlistMemoryTtl   = 15 * time.Minute
	tierlistRedisTtl    = time.Hour
	tierlistDatabaseTtl = 6 * time.Hour

	// The winrate aggregate is rebuilt daily by the scheduler.
	winrateAggregateMaxAge = 48 * time.Hour
)

// ErrInvalidBracket is returned for a rank outside the accepted list.
var ErrInvalidBracket = errors.New("invalid rank bracket")

// Tierlist service with it's layered caches and analytics source.
type TierlistService struct {
	memCache  *cache.MemCache
	redis     RedisCache
	blobs     repositories.BlobCacheRepository
	analytics AnalyticsClient
}

// TierlistServiceDeps is the dependency list for the tierlist service.
type TierlistServiceDeps struct {
	MemCache  *cache.MemCache
	Redis     RedisCache
	Blobs     repositories.BlobCacheRepository
	Analytics AnalyticsClient
}

// NewTierlistService creates a tierlist service.
func NewTierlistService(deps *TierlistServiceDeps) *TierlistService {
	return &TierlistService{
		memCache:  deps.MemCache,
		redis:     deps.Redis,
		blobs:     deps.Blobs,
		analytics: deps.Analytics,
	}
}

// GetTierlist returns the synthesized tier list for a rank bracket.
// Caches are checked memory first, then Redis, then Postgres, and only
// then is the list recomputed from the analytics source.
func (ts *TierlistService) GetTierlist(ctx context.Context, bracket string) (*dto.Tierlist, error) {
	if !tierlist.IsValidBracket(bracket) {
		return nil, ErrInvalidBracket
	}

	key := repositories.TierlistKeyPrefix + bracket

	if mem := ts.memCache.Get(key); mem != nil {
		return mem.(*dto.Tierlist), nil
	}

	if cached := ts.getFromRedis(ctx, key); cached != nil {
		ts.memCache.Set(key, cached, tierlistMemoryTtl)
		return cached, nil
	}

	if cached := ts.getFromDatabase(key); cached != nil {
		ts.populateCaches(key, cached, false)
		return cached, nil
	}

	entries, err := ts.analytics.GetEntries(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.Tierlist{
		Bracket: bracket,
		Entries: tierlist.Synthesize(entries, ts.loadAggregate(), bracket),
	}

	ts.populateCaches(key, result, true)

	return result, nil
}

// loadAggregate reads the sampled win/loss counts built by the scheduler.
// A missing or stale aggregate just means no win rate override.
func (ts *TierlistService) loadAggregate() tierlist.Aggregate {
	data, err := ts.blobs.GetKey(repositories.WinrateAggregateKey, winrateAggregateMaxAge)
	if err != nil || data == nil {
		return nil
	}

	var aggregate tierlist.Aggregate
	if err := json.Unmarshal(data, &aggregate); err != nil {
		return nil
	}
	return aggregate
}

func (ts *TierlistService) getFromRedis(ctx context.Context, key string) *dto.Tierlist {
	redisCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()

	cached, err := ts.redis.Get(redisCtx, key)
	if err != nil || cached == "" {
		return nil
	}

	var result dto.Tierlist
	if err := json.Unmarshal([]byte(cached), &result); err != nil {
		return nil
	}
	return &result
}

func (ts *TierlistService) getFromDatabase(key string) *dto.Tierlist {
	data, err := ts.blobs.GetKey(key, tierlistDatabaseTtl)
	if err != nil || data == nil {
		return nil
	}

	var result dto.Tierlist
	if err := json.Unmarshal(data, &result); err != nil {
		return nil
	}
	return &result
}

// populateCaches sets the faster caches, and on a fresh compute also the
// database fallback. The writes are best effort.
func (ts *TierlistService) populateCaches(key string, result *dto.Tierlist, fresh bool) {
	ts.memCache.Set(key, result, tierlistMemoryTtl)

	payload, err := json.Marshal(result)
	if err != nil {
		return
	}

	runAsync("tierlist-redis-write", func(ctx context.Context) error {
		return ts.redis.Set(ctx, key, string(payload), tierlistRedisTtl)
	})
	if fresh {
		runAsync("tierlist-database-write", func(ctx context.Context) error {
			return ts.blobs.SetKey(key, payload)
		})
	}
}
