package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"legendstats/api/cache"
	"legendstats/api/dto"
	"legendstats/api/repositories"
	"legendstats/api/services/testutil"
	"legendstats/pkg/tierlist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func tierlistAnalyticsFixture() []tierlist.AnalyticsEntry {
	return []tierlist.AnalyticsEntry{
		{ChampionId: "Aatrox", ChampionName: "Aatrox", Role: tierlist.RoleTop, PickRate: 8.3},
		{ChampionId: "Darius", ChampionName: "Darius", Role: tierlist.RoleTop, PickRate: 6.1},
		{ChampionId: "MonkeyKing", ChampionName: "Wukong", Role: tierlist.RoleJungle, PickRate: 5.5},
	}
}

func setupTierlistService(t *testing.T) (*TierlistService, *testutil.MockRedis, *testutil.MockBlobCacheRepository, *testutil.MockAnalyticsClient, *cache.MemCache) {
	t.Helper()

	mockRedis := new(testutil.MockRedis)
	mockBlobs := new(testutil.MockBlobCacheRepository)
	mockAnalytics := new(testutil.MockAnalyticsClient)
	memCache := cache.NewMemCache()
	t.Cleanup(memCache.Close)

	service := NewTierlistService(&TierlistServiceDeps{
		MemCache:  memCache,
		Redis:     mockRedis,
		Blobs:     mockBlobs,
		Analytics: mockAnalytics,
	})
	return service, mockRedis, mockBlobs, mockAnalytics, memCache
}

func TestGetTierlistInvalidBracket(t *testing.T) {
	service, _, _, _, _ := setupTierlistService(t)

	result, err := service.GetTierlist(context.Background(), "wood")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrInvalidBracket)
}

func TestGetTierlistFromMemCache(t *testing.T) {
	service, mockRedis, mockBlobs, mockAnalytics, memCache := setupTierlistService(t)

	expected := &dto.Tierlist{Bracket: "all"}
	memCache.Set(repositories.TierlistKeyPrefix+"all", expected, time.Minute)

	result, err := service.GetTierlist(context.Background(), "all")
	require.NoError(t, err)
	assert.Same(t, expected, result)

	testutil.VerifyAllMocks(t, mockRedis, mockBlobs, mockAnalytics)
}

func TestGetTierlistFromRedis(t *testing.T) {
	service, mockRedis, mockBlobs, mockAnalytics, _ := setupTierlistService(t)

	cached := &dto.Tierlist{
		Bracket: "all",
		Entries: []tierlist.Entry{{ChampionId: "Aatrox", Role: tierlist.RoleTop, Tier: tierlist.TierS}},
	}
	payload, _ := json.Marshal(cached)
	mockRedis.On("Get", mock.Anything, repositories.TierlistKeyPrefix+"all").Return(string(payload), nil)

	result, err := service.GetTierlist(context.Background(), "all")
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Aatrox", result.Entries[0].ChampionId)

	testutil.VerifyAllMocks(t, mockRedis, mockBlobs, mockAnalytics)
}

func TestGetTierlistFreshCompute(t *testing.T) {
	service, mockRedis, mockBlobs, mockAnalytics, _ := setupTierlistService(t)

	key := repositories.TierlistKeyPrefix + "all"
	mockRedis.On("Get", mock.Anything, key).Return("", errors.New("redis: nil"))
	mockRedis.On("Set", mock.Anything, key, mock.Anything, tierlistRedisTtl).Return(nil).Maybe()
	mockBlobs.On("GetKey", key, tierlistDatabaseTtl).Return(nil, nil)
	mockBlobs.On("GetKey", repositories.WinrateAggregateKey, winrateAggregateMaxAge).
		Return([]byte(`{"Aatrox":{"top":{"wins":30,"losses":20}}}`), nil)
	mockBlobs.On("SetKey", key, mock.Anything).Return(nil).Maybe()
	mockAnalytics.On("GetEntries", mock.Anything).Return(tierlistAnalyticsFixture(), nil)

	result, err := service.GetTierlist(context.Background(), "all")
	require.NoError(t, err)
	assert.Equal(t, "all", result.Bracket)
	require.Len(t, result.Entries, 3)

	// The sampled aggregate overrides the Aatrox win rate.
	for _, entry := range result.Entries {
		if entry.ChampionId == "Aatrox" {
			assert.Equal(t, 60.0, entry.WinRate)
			assert.Equal(t, 50, entry.Games)
		}
		assert.Equal(t, tierlist.SourceMeasured, entry.Source)
	}
}

func TestGetTierlistSimulatedBracket(t *testing.T) {
	service, mockRedis, mockBlobs, mockAnalytics, _ := setupTierlistService(t)

	key := repositories.TierlistKeyPrefix + "gold"
	mockRedis.On("Get", mock.Anything, key).Return("", errors.New("redis: nil"))
	mockRedis.On("Set", mock.Anything, key, mock.Anything, tierlistRedisTtl).Return(nil).Maybe()
	mockBlobs.On("GetKey", key, tierlistDatabaseTtl).Return(nil, nil)
	mockBlobs.On("GetKey", repositories.WinrateAggregateKey, winrateAggregateMaxAge).Return(nil, nil)
	mockBlobs.On("SetKey", key, mock.Anything).Return(nil).Maybe()
	mockAnalytics.On("GetEntries", mock.Anything).Return(tierlistAnalyticsFixture(), nil)

	result, err := service.GetTierlist(context.Background(), "gold")
	require.NoError(t, err)
	for _, entry := range result.Entries {
		assert.Equal(t, tierlist.SourceSimulated, entry.Source)
		assert.GreaterOrEqual(t, entry.WinRate, 44.0)
		assert.LessOrEqual(t, entry.WinRate, 56.0)
	}
}

func TestGetTierlistAnalyticsError(t *testing.T) {
	service, mockRedis, mockBlobs, mockAnalytics, _ := setupTierlistService(t)

	key := repositories.TierlistKeyPrefix + "all"
	mockRedis.On("Get", mock.Anything, key).Return("", errors.New("redis: nil"))
	mockBlobs.On("GetKey", key, tierlistDatabaseTtl).Return(nil, nil)
	mockBlobs.On("GetKey", repositories.WinrateAggregateKey, winrateAggregateMaxAge).Return(nil, nil).Maybe()
	mockAnalytics.On("GetEntries", mock.Anything).Return([]tierlist.AnalyticsEntry(nil), errors.New("analytics down"))

	result, err := service.GetTierlist(context.Background(), "all")
	assert.Nil(t, result)
	assert.Error(t, err)
}
