package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"legendstats/api/filters"
	"legendstats/api/services/testutil"
	leaguefetcher "legendstats/fetcher/data/league"
	matchfetcher "legendstats/fetcher/data/match"
	"legendstats/pkg/database/models"
	"legendstats/pkg/regions"
	"legendstats/pkg/score"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testPuuid = "test-puuid"

var testPlatform = regions.Platform("la1")

// rankedMatchFixture builds a full 10 player ranked match won by the
// team of the tracked player.
func rankedMatchFixture(matchId string, endTimestamp int64, win bool) *matchfetcher.MatchData {
	match := &matchfetcher.MatchData{
		Metadata: matchfetcher.MatchMetadata{MatchId: matchId},
		Info: matchfetcher.MatchInfo{
			GameCreation:     endTimestamp - 1800_000,
			GameDuration:     1800,
			GameEndTimestamp: endTimestamp,
			QueueId:          420,
			Teams: []matchfetcher.MatchTeam{
				{TeamId: 100, Win: win},
				{TeamId: 200, Win: !win},
			},
		},
	}

	for team := 0; team < 2; team++ {
		for i := 0; i < 5; i++ {
			p := matchfetcher.MatchParticipant{
				Puuid:                       fmt.Sprintf("player-%d-%d", team, i),
				TeamId:                      100 + team*100,
				Win:                         (team == 0) == win,
				ChampionId:                  10*team + i,
				Kills:                       i + 1,
				Deaths:                      3,
				Assists:                     5,
				GoldEarned:                  9000 + 300*i,
				TotalDamageDealtToChampions: 15000 + 1000*i,
				VisionScore:                 20,
				TotalMinionsKilled:          150,
				TimePlayed:                  1800,
			}
			if team == 0 && i == 0 {
				p.Puuid = testPuuid
			}
			match.Info.Participants = append(match.Info.Participants, p)
		}
	}
	return match
}

func setupMatchService() (*MatchService, *testutil.MockRiotClient, *testutil.MockMatchCacheRepository, *testutil.MockSnapshotRepository) {
	mockRiot := new(testutil.MockRiotClient)
	mockCache := new(testutil.MockMatchCacheRepository)
	mockSnapshots := new(testutil.MockSnapshotRepository)

	service := NewMatchService(&MatchServiceDeps{
		Riot:       mockRiot,
		MatchCache: mockCache,
		Snapshots:  mockSnapshots,
	})
	return service, mockRiot, mockCache, mockSnapshots
}

func TestGetMatchFromCache(t *testing.T) {
	service, mockRiot, mockCache, _ := setupMatchService()

	match := rankedMatchFixture("LA1_1", time.Now().UnixMilli(), true)
	payload, _ := json.Marshal(match)
	mockCache.On("GetMatch", "LA1_1").Return(payload, nil)

	detail, err := service.GetMatch(context.Background(), testPlatform, "LA1_1")
	require.NoError(t, err)
	assert.Equal(t, "LA1_1", detail.MatchId)
	assert.Len(t, detail.Participants, 10)

	// The best winner and best loser carry the tags.
	tags := make(map[string]int)
	for _, p := range detail.Participants {
		if p.Tag != "" {
			tags[p.Tag]++
		}
	}
	assert.Equal(t, map[string]int{score.TagMVP: 1, score.TagStandout: 1}, tags)

	mockRiot.AssertNotCalled(t, "GetMatchData")
	testutil.VerifyAllMocks(t, mockRiot, mockCache)
}

func TestGetMatchUpstream(t *testing.T) {
	service, mockRiot, mockCache, _ := setupMatchService()

	match := rankedMatchFixture("LA1_2", time.Now().UnixMilli(), false)
	mockCache.On("GetMatch", "LA1_2").Return(nil, nil)
	mockCache.On("SetMatch", "LA1_2", testPlatform, mock.Anything).Return(nil).Maybe()
	mockRiot.On("GetMatchData", mock.Anything, testPlatform, "LA1_2", true).Return(match, nil)

	detail, err := service.GetMatch(context.Background(), testPlatform, "LA1_2")
	require.NoError(t, err)
	assert.Equal(t, "LA1_2", detail.MatchId)
}

func TestGetMatchUpstreamError(t *testing.T) {
	service, mockRiot, mockCache, _ := setupMatchService()

	mockCache.On("GetMatch", "LA1_3").Return(nil, nil)
	mockRiot.On("GetMatchData", mock.Anything, testPlatform, "LA1_3", true).
		Return((*matchfetcher.MatchData)(nil), errors.New("API returned status code 503"))

	detail, err := service.GetMatch(context.Background(), testPlatform, "LA1_3")
	assert.Nil(t, detail)
	assert.Error(t, err)
}

func TestGetHistoryWithLpDeltas(t *testing.T) {
	service, mockRiot, mockCache, mockSnapshots := setupMatchService()

	now := time.Now()
	matchEnd := now.Add(-30 * time.Minute)
	match := rankedMatchFixture("LA1_10", matchEnd.UnixMilli(), true)
	payload, _ := json.Marshal(match)

	mockRiot.On("GetMatchIds", mock.Anything, testPlatform, testPuuid,
		matchfetcher.MatchListOptions{Start: 0, Count: 10, Queue: 0}, true).
		Return([]string{"LA1_10"}, nil)
	mockCache.On("GetMatch", "LA1_10").Return(payload, nil)

	// One snapshot before and one after the match bound the window.
	queueType := "RANKED_SOLO_5x5"
	mockSnapshots.On("ListByPlayer", testPuuid, testPlatform).Return([]models.RankSnapshot{
		{
			QueueType: queueType, Tier: "GOLD", Division: "II", LeaguePoints: 40,
			Wins: 100, Losses: 95, FetchedAt: matchEnd.Add(-time.Hour),
		},
		{
			QueueType: queueType, Tier: "GOLD", Division: "II", LeaguePoints: 55,
			Wins: 101, Losses: 95, FetchedAt: now,
		},
	}, nil)
	mockRiot.On("GetLeagueEntries", mock.Anything, testPlatform, testPuuid).
		Return([]leaguefetcher.LeagueEntry{}, nil)

	summaries, err := service.GetHistory(context.Background(), testPlatform, testPuuid, filters.MatchHistoryParams{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)

	summary := summaries[0]
	assert.Equal(t, "LA1_10", summary.MatchId)
	assert.True(t, summary.Win)
	require.NotNil(t, summary.LpDelta)
	assert.Equal(t, 15, *summary.LpDelta)
	require.NotNil(t, summary.Player)
	assert.Equal(t, testPuuid, summary.Player.Puuid)
}

func TestGetHistoryNoSnapshots(t *testing.T) {
	service, mockRiot, mockCache, mockSnapshots := setupMatchService()

	match := rankedMatchFixture("LA1_11", time.Now().UnixMilli(), true)
	payload, _ := json.Marshal(match)

	mockRiot.On("GetMatchIds", mock.Anything, testPlatform, testPuuid, mock.Anything, true).
		Return([]string{"LA1_11"}, nil)
	mockCache.On("GetMatch", "LA1_11").Return(payload, nil)
	mockSnapshots.On("ListByPlayer", testPuuid, testPlatform).Return([]models.RankSnapshot{}, nil)
	mockRiot.On("GetLeagueEntries", mock.Anything, testPlatform, testPuuid).
		Return([]leaguefetcher.LeagueEntry{}, nil)

	summaries, err := service.GetHistory(context.Background(), testPlatform, testPuuid, filters.MatchHistoryParams{})
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Nil(t, summaries[0].LpDelta)
}

func TestGetHistoryBrokenMatchSkipped(t *testing.T) {
	service, mockRiot, mockCache, mockSnapshots := setupMatchService()

	match := rankedMatchFixture("LA1_12", time.Now().UnixMilli(), true)
	payload, _ := json.Marshal(match)

	mockRiot.On("GetMatchIds", mock.Anything, testPlatform, testPuuid, mock.Anything, true).
		Return([]string{"LA1_12", "LA1_13"}, nil)
	mockCache.On("GetMatch", "LA1_12").Return(payload, nil)
	mockCache.On("GetMatch", "LA1_13").Return(nil, nil)
	mockRiot.On("GetMatchData", mock.Anything, testPlatform, "LA1_13", true).
		Return((*matchfetcher.MatchData)(nil), errors.New("API returned status code 404"))
	mockSnapshots.On("ListByPlayer", testPuuid, testPlatform).Return([]models.RankSnapshot{}, nil)
	mockRiot.On("GetLeagueEntries", mock.Anything, testPlatform, testPuuid).
		Return([]leaguefetcher.LeagueEntry{}, nil)

	summaries, err := service.GetHistory(context.Background(), testPlatform, testPuuid, filters.MatchHistoryParams{})
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestGetHistoryIdsError(t *testing.T) {
	service, mockRiot, _, _ := setupMatchService()

	mockRiot.On("GetMatchIds", mock.Anything, testPlatform, testPuuid, mock.Anything, true).
		Return([]string(nil), errors.New("API returned status code 429"))

	summaries, err := service.GetHistory(context.Background(), testPlatform, testPuuid, filters.MatchHistoryParams{})
	assert.Nil(t, summaries)
	assert.Error(t, err)
}
