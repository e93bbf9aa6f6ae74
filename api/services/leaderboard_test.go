package services

import (
	"context"
	"errors"
	"testing"

	"legendstats/api/cache"
	"legendstats/api/services/testutil"
	leaguefetcher "legendstats/fetcher/data/league"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupLeaderboardService(t *testing.T) (*LeaderboardService, *testutil.MockRiotClient) {
	t.Helper()

	mockRiot := new(testutil.MockRiotClient)
	memCache := cache.NewMemCache()
	t.Cleanup(memCache.Close)

	service := NewLeaderboardService(&LeaderboardServiceDeps{
		Riot:     mockRiot,
		MemCache: memCache,
	})
	return service, mockRiot
}

func highEloFixture(tier string, points ...int) *leaguefetcher.HighEloLeague {
	league := &leaguefetcher.HighEloLeague{Tier: tier}
	for i, lp := range points {
		league.Entries = append(league.Entries, leaguefetcher.LeagueEntry{
			Puuid:        tier + "-player",
			LeaguePoints: lp,
			Wins:         200 + i,
			Losses:       150,
		})
	}
	return league
}

func TestGetLeaderboard(t *testing.T) {
	service, mockRiot := setupLeaderboardService(t)

	queue := "RANKED_SOLO_5x5"
	mockRiot.On("GetChallengerLeague", mock.Anything, testPlatform, queue, true).
		Return(highEloFixture("CHALLENGER", 1200, 950), nil)
	mockRiot.On("GetGrandmasterLeague", mock.Anything, testPlatform, queue, true).
		Return(highEloFixture("GRANDMASTER", 700), nil)
	mockRiot.On("GetMasterLeague", mock.Anything, testPlatform, queue, true).
		Return(highEloFixture("MASTER", 300, 250), nil)

	board, err := service.GetLeaderboard(context.Background(), testPlatform, queue)
	require.NoError(t, err)
	require.Len(t, board.Entries, 5)

	// Tier dominates, LP breaks ties inside it.
	assert.Equal(t, "CHALLENGER", board.Entries[0].Tier)
	assert.Equal(t, 1200, board.Entries[0].LeaguePoints)
	assert.Equal(t, "Desafiante", board.Entries[0].TierName)
	assert.Equal(t, "GRANDMASTER", board.Entries[2].Tier)
	assert.Equal(t, "MASTER", board.Entries[4].Tier)
	for i, entry := range board.Entries {
		assert.Equal(t, i+1, entry.Position)
	}

	// The second request is served from memory.
	board2, err := service.GetLeaderboard(context.Background(), testPlatform, queue)
	require.NoError(t, err)
	assert.Same(t, board, board2)
	mockRiot.AssertNumberOfCalls(t, "GetChallengerLeague", 1)
}

func TestGetLeaderboardUpstreamError(t *testing.T) {
	service, mockRiot := setupLeaderboardService(t)

	queue := "RANKED_SOLO_5x5"
	mockRiot.On("GetChallengerLeague", mock.Anything, testPlatform, queue, true).
		Return((*leaguefetcher.HighEloLeague)(nil), errors.New("API returned status code 503"))
	mockRiot.On("GetGrandmasterLeague", mock.Anything, testPlatform, queue, true).
		Return(highEloFixture("GRANDMASTER", 700), nil).Maybe()
	mockRiot.On("GetMasterLeague", mock.Anything, testPlatform, queue, true).
		Return(highEloFixture("MASTER", 300), nil).Maybe()

	board, err := service.GetLeaderboard(context.Background(), testPlatform, queue)
	assert.Nil(t, board)
	assert.Error(t, err)
}
