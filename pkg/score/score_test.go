package score

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Builds a standard 5v5 where blue (100) wins and participant strength
// decreases with the index inside each team.
func standardMatch() []Participant {
	participants := make([]Participant, 0, 10)
	for _, team := range []int{100, 200} {
		win := team == 100
		for i := 0; i < 5; i++ {
			participants = append(participants, Participant{
				Puuid:                fmt.Sprintf("puuid-%d-%d", team, i),
				TeamId:               team,
				Win:                  win,
				Kills:                10 - i,
				Deaths:               i + 1,
				Assists:              8 - i,
				GoldEarned:           14000 - i*1000,
				DamageToChampions:    30000 - i*3000,
				VisionScore:          40 - i*5,
				TotalMinionsKilled:   220 - i*20,
				NeutralMinionsKilled: 20,
				TimePlayed:           1800,
			})
		}
	}
	return participants
}

func TestScoreAndRankDeterminism(t *testing.T) {
	input := standardMatch()

	first := ScoreAndRank(input)
	second := ScoreAndRank(input)

	assert.Equal(t, first, second)
}

func TestScoreAndRankTags(t *testing.T) {
	result := ScoreAndRank(standardMatch())

	var mvp, standout []Scored
	for _, p := range result {
		switch p.Tag {
		case TagMVP:
			mvp = append(mvp, p)
		case TagStandout:
			standout = append(standout, p)
		}
	}

	assert.Len(t, mvp, 1)
	assert.Len(t, standout, 1)
	assert.True(t, mvp[0].Win)
	assert.False(t, standout[0].Win)
	assert.NotEqual(t, mvp[0].TeamId, standout[0].TeamId)
}

func TestScoreAndRankGlobalRanks(t *testing.T) {
	result := ScoreAndRank(standardMatch())

	assert.Len(t, result, 10)
	for i, p := range result {
		assert.Equal(t, i+1, p.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, result[i-1].Score, p.Score)
		}
	}
}

func TestScoreAndRankWeightsBounded(t *testing.T) {
	result := ScoreAndRank(standardMatch())

	for _, p := range result {
		assert.GreaterOrEqual(t, p.Score, 0.0)
		assert.LessOrEqual(t, p.Score, 100.0)
	}
}

func TestScoreAndRankAllZeroStats(t *testing.T) {
	participants := []Participant{
		{Puuid: "a", TeamId: 100, Win: true},
		{Puuid: "b", TeamId: 200, Win: false},
	}

	result := ScoreAndRank(participants)

	assert.Len(t, result, 2)
	for _, p := range result {
		assert.Equal(t, 0.0, p.Score)
	}
	assert.Equal(t, TagMVP, findByPuuid(t, result, "a").Tag)
	assert.Equal(t, TagStandout, findByPuuid(t, result, "b").Tag)
}

func TestScoreAndRankPerfectKdaUsesKillsPlusAssists(t *testing.T) {
	participants := []Participant{
		{Puuid: "deathless", TeamId: 100, Win: true, Kills: 3, Assists: 2, GoldEarned: 100, DamageToChampions: 100, VisionScore: 10, TotalMinionsKilled: 100},
		{Puuid: "feeder", TeamId: 200, Win: false, Kills: 3, Assists: 2, Deaths: 10, GoldEarned: 100, DamageToChampions: 100, VisionScore: 10, TotalMinionsKilled: 100},
	}

	result := ScoreAndRank(participants)

	deathless := findByPuuid(t, result, "deathless")
	feeder := findByPuuid(t, result, "feeder")

	// 5 kills+assists with zero deaths caps the KDA factor, 0.5 doesn't.
	assert.InDelta(t, 20.0, deathless.Score-feeder.Score+min(0.5/4, 1)*20, 0.001)
	assert.Greater(t, deathless.Score, feeder.Score)
}

func TestScoreAndRankNoWinnersNoMvp(t *testing.T) {
	participants := []Participant{
		{Puuid: "a", TeamId: 100, Win: false, Kills: 5},
		{Puuid: "b", TeamId: 200, Win: false, Kills: 3},
	}

	result := ScoreAndRank(participants)

	for _, p := range result {
		assert.NotEqual(t, TagMVP, p.Tag)
	}
}

func TestScoreAndRankEmptyInput(t *testing.T) {
	assert.Empty(t, ScoreAndRank(nil))
}

func findByPuuid(t *testing.T, scored []Scored, puuid string) Scored {
	t.Helper()
	for _, p := range scored {
		if p.Puuid == puuid {
			return p
		}
	}
	t.Fatalf("participant %s not found", puuid)
	return Scored{}
}
