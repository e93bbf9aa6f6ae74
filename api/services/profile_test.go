package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"legendstats/api/services/testutil"
	leaguefetcher "legendstats/fetcher/data/league"
	playerfetcher "legendstats/fetcher/data/player"
	"legendstats/pkg/database/models"
	"legendstats/pkg/messages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func stringPtr(s string) *string { return &s }

func setupProfileService() (*ProfileService, *testutil.MockRiotClient, *testutil.MockSnapshotRepository, *testutil.MockSummonerRepository) {
	mockRiot := new(testutil.MockRiotClient)
	mockSnapshots := new(testutil.MockSnapshotRepository)
	mockSummoners := new(testutil.MockSummonerRepository)

	service := NewProfileService(&ProfileServiceDeps{
		Riot:      mockRiot,
		Snapshots: mockSnapshots,
		Summoners: mockSummoners,
	})
	return service, mockRiot, mockSnapshots, mockSummoners
}

func TestGetProfile(t *testing.T) {
	service, mockRiot, mockSnapshots, mockSummoners := setupProfileService()

	account := &playerfetcher.Account{Puuid: testPuuid, GameName: "ElMago", TagLine: "LAN"}
	mockRiot.On("GetAccountByRiotId", mock.Anything, testPlatform, "ElMago", "LAN").Return(account, nil)
	mockRiot.On("GetSummonerByPuuid", mock.Anything, testPlatform, testPuuid).
		Return(&playerfetcher.Summoner{Puuid: testPuuid, ProfileIconId: 4567, SummonerLevel: 312}, nil)
	mockRiot.On("GetLeagueEntries", mock.Anything, testPlatform, testPuuid).Return([]leaguefetcher.LeagueEntry{
		{
			QueueType: stringPtr("RANKED_SOLO_5x5"), Tier: stringPtr("GOLD"), Rank: stringPtr("II"),
			LeaguePoints: 40, Wins: 100, Losses: 95, Puuid: testPuuid,
		},
		{
			QueueType: stringPtr("RANKED_FLEX_SR"), Tier: stringPtr("MASTER"),
			LeaguePoints: 120, Wins: 60, Losses: 40, Puuid: testPuuid,
		},
	}, nil)

	snapshotDone := make(chan *models.RankSnapshot, 2)
	mockSnapshots.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		snapshotDone <- args.Get(0).(*models.RankSnapshot)
	}).Return(nil)
	indexDone := make(chan *models.SummonerIndex, 1)
	mockSummoners.On("Upsert", mock.Anything).Run(func(args mock.Arguments) {
		indexDone <- args.Get(0).(*models.SummonerIndex)
	}).Return(nil)

	profile, err := service.GetProfile(context.Background(), testPlatform, "ElMago", "LAN")
	require.NoError(t, err)

	assert.Equal(t, testPuuid, profile.Puuid)
	assert.Equal(t, "ElMago", profile.GameName)
	assert.Equal(t, 312, profile.SummonerLevel)
	require.Len(t, profile.Ranks, 2)

	solo := profile.Ranks[0]
	assert.Equal(t, "GOLD", solo.Tier)
	assert.Equal(t, "Oro", solo.TierName)
	assert.Equal(t, "II", solo.Division)
	assert.InDelta(t, 51.3, solo.WinRate, 0.01)

	// Apex queues default the missing division to I.
	flex := profile.Ranks[1]
	assert.Equal(t, "I", flex.Division)

	// The observations arrive asynchronously.
	for i := 0; i < 2; i++ {
		select {
		case snapshot := <-snapshotDone:
			assert.Equal(t, testPuuid, snapshot.Puuid)
			assert.Equal(t, testPlatform, snapshot.Region)
		case <-time.After(2 * time.Second):
			t.Fatal("snapshot append never ran")
		}
	}
	select {
	case index := <-indexDone:
		assert.Equal(t, "ElMago#LAN", index.RiotId)
		assert.Equal(t, 4567, index.ProfileIcon)
	case <-time.After(2 * time.Second):
		t.Fatal("summoner index upsert never ran")
	}
}

func TestGetProfileUnknownPlayer(t *testing.T) {
	service, mockRiot, _, _ := setupProfileService()

	mockRiot.On("GetAccountByRiotId", mock.Anything, testPlatform, "Nadie", "LAN").
		Return((*playerfetcher.Account)(nil), errors.New(messages.CouldNotFindPlayer))

	profile, err := service.GetProfile(context.Background(), testPlatform, "Nadie", "LAN")
	assert.Nil(t, profile)
	assert.EqualError(t, err, messages.CouldNotFindPlayer)
}

func TestGetProfileSnapshotFailureDoesNotFailRequest(t *testing.T) {
	service, mockRiot, mockSnapshots, mockSummoners := setupProfileService()

	account := &playerfetcher.Account{Puuid: testPuuid, GameName: "ElMago", TagLine: "LAN"}
	mockRiot.On("GetAccountByRiotId", mock.Anything, testPlatform, "ElMago", "LAN").Return(account, nil)
	mockRiot.On("GetSummonerByPuuid", mock.Anything, testPlatform, testPuuid).
		Return(&playerfetcher.Summoner{Puuid: testPuuid}, nil)
	mockRiot.On("GetLeagueEntries", mock.Anything, testPlatform, testPuuid).Return([]leaguefetcher.LeagueEntry{
		{QueueType: stringPtr("RANKED_SOLO_5x5"), Tier: stringPtr("SILVER"), Rank: stringPtr("IV"), Puuid: testPuuid},
	}, nil)

	mockSnapshots.On("Create", mock.Anything).Return(errors.New(testutil.DatabaseError)).Maybe()
	mockSummoners.On("Upsert", mock.Anything).Return(errors.New(testutil.DatabaseError)).Maybe()

	profile, err := service.GetProfile(context.Background(), testPlatform, "ElMago", "LAN")
	require.NoError(t, err)
	assert.Len(t, profile.Ranks, 1)
}
