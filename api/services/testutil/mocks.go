package testutil

import (
	"context"
	"testing"
	"time"

	leaguefetcher "legendstats/fetcher/data/league"
	matchfetcher "legendstats/fetcher/data/match"
	playerfetcher "legendstats/fetcher/data/player"
	spectatorfetcher "legendstats/fetcher/data/spectator"
	inttestutil "legendstats/internal/testutil"
	"legendstats/pkg/database/models"
	"legendstats/pkg/regions"
	"legendstats/pkg/tierlist"

	"github.com/stretchr/testify/mock"
)

// Re-exported so service tests only need one testutil import.
const DatabaseError = inttestutil.DatabaseError

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Upstream client mock.
// ============================================================================

type MockRiotClient struct {
	mock.Mock
}

func (m *MockRiotClient) GetAccountByRiotId(ctx context.Context, platform regions.Platform, gameName string, tagLine string) (*playerfetcher.Account, error) {
	args := m.Called(ctx, platform, gameName, tagLine)
	return args.Get(0).(*playerfetcher.Account), args.Error(1)
}

func (m *MockRiotClient) GetSummonerByPuuid(ctx context.Context, platform regions.Platform, puuid string) (*playerfetcher.Summoner, error) {
	args := m.Called(ctx, platform, puuid)
	return args.Get(0).(*playerfetcher.Summoner), args.Error(1)
}

func (m *MockRiotClient) GetLeagueEntries(ctx context.Context, platform regions.Platform, puuid string) ([]leaguefetcher.LeagueEntry, error) {
	args := m.Called(ctx, platform, puuid)
	return args.Get(0).([]leaguefetcher.LeagueEntry), args.Error(1)
}

func (m *MockRiotClient) GetChallengerLeague(ctx context.Context, platform regions.Platform, queue string, onDemand bool) (*leaguefetcher.HighEloLeague, error) {
	args := m.Called(ctx, platform, queue, onDemand)
	return args.Get(0).(*leaguefetcher.HighEloLeague), args.Error(1)
}

func (m *MockRiotClient) GetGrandmasterLeague(ctx context.Context, platform regions.Platform, queue string, onDemand bool) (*leaguefetcher.HighEloLeague, error) {
	args := m.Called(ctx, platform, queue, onDemand)
	return args.Get(0).(*leaguefetcher.HighEloLeague), args.Error(1)
}

func (m *MockRiotClient) GetMasterLeague(ctx context.Context, platform regions.Platform, queue string, onDemand bool) (*leaguefetcher.HighEloLeague, error) {
	args := m.Called(ctx, platform, queue, onDemand)
	return args.Get(0).(*leaguefetcher.HighEloLeague), args.Error(1)
}

func (m *MockRiotClient) GetMatchIds(ctx context.Context, platform regions.Platform, puuid string, opts matchfetcher.MatchListOptions, onDemand bool) ([]string, error) {
	args := m.Called(ctx, platform, puuid, opts, onDemand)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockRiotClient) GetMatchData(ctx context.Context, platform regions.Platform, matchId string, onDemand bool) (*matchfetcher.MatchData, error) {
	args := m.Called(ctx, platform, matchId, onDemand)
	return args.Get(0).(*matchfetcher.MatchData), args.Error(1)
}

func (m *MockRiotClient) GetLiveGame(ctx context.Context, platform regions.Platform, puuid string) (*spectatorfetcher.CurrentGameInfo, error) {
	args := m.Called(ctx, platform, puuid)
	return args.Get(0).(*spectatorfetcher.CurrentGameInfo), args.Error(1)
}

// ============================================================================
// Repository mocks.
// ============================================================================

type MockSnapshotRepository struct {
	mock.Mock
}

func (m *MockSnapshotRepository) Create(snapshot *models.RankSnapshot) error {
	args := m.Called(snapshot)
	return args.Error(0)
}

func (m *MockSnapshotRepository) ListByPlayer(puuid string, region regions.Platform) ([]models.RankSnapshot, error) {
	args := m.Called(puuid, region)
	return args.Get(0).([]models.RankSnapshot), args.Error(1)
}

type MockSummonerRepository struct {
	mock.Mock
}

func (m *MockSummonerRepository) Upsert(summoner *models.SummonerIndex) error {
	args := m.Called(summoner)
	return args.Error(0)
}

func (m *MockSummonerRepository) SearchByRiotId(query string) ([]models.SummonerIndex, error) {
	args := m.Called(query)
	return args.Get(0).([]models.SummonerIndex), args.Error(1)
}

type MockMatchCacheRepository struct {
	mock.Mock
}

func (m *MockMatchCacheRepository) GetMatch(matchId string) ([]byte, error) {
	args := m.Called(matchId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockMatchCacheRepository) SetMatch(matchId string, region regions.Platform, data []byte) error {
	args := m.Called(matchId, region, data)
	return args.Error(0)
}

type MockBlobCacheRepository struct {
	mock.Mock
}

func (m *MockBlobCacheRepository) GetKey(key string, maxAge time.Duration) ([]byte, error) {
	args := m.Called(key, maxAge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBlobCacheRepository) SetKey(key string, data []byte) error {
	args := m.Called(key, data)
	return args.Error(0)
}

type MockPatchNoteRepository struct {
	mock.Mock
}

func (m *MockPatchNoteRepository) List(limit int) ([]models.PatchNote, error) {
	args := m.Called(limit)
	return args.Get(0).([]models.PatchNote), args.Error(1)
}

func (m *MockPatchNoteRepository) GetByVersion(version string) (*models.PatchNote, error) {
	args := m.Called(version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PatchNote), args.Error(1)
}

// ============================================================================
// Analytics, assets and cache mocks.
// ============================================================================

type MockAnalyticsClient struct {
	mock.Mock
}

func (m *MockAnalyticsClient) GetEntries(ctx context.Context) ([]tierlist.AnalyticsEntry, error) {
	args := m.Called(ctx)
	return args.Get(0).([]tierlist.AnalyticsEntry), args.Error(1)
}

type MockAssetsClient struct {
	mock.Mock
}

func (m *MockAssetsClient) GetLatestVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockAssetsClient) GetChampionNames(ctx context.Context) (map[int]string, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[int]string), args.Error(1)
}

type MockRedis struct {
	mock.Mock
}

func (m *MockRedis) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedis) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
