package services

import (
	"context"
	"sort"
	"time"

	"legendstats/api/cache"
	"legendstats/api/dto"
	leaguefetcher "legendstats/fetcher/data/league"
	"legendstats/pkg/regions"
	tiervalues "legendstats/pkg/riotvalues/tier"

	"golang.org/x/sync/errgroup"
)

const (
	leaderboardMemoryTtl = 10 * time.Minute
	leaderboardSize      = 100
)

// Leaderboard service combining every apex league of a queue.
type LeaderboardService struct {
	riot     RiotClient
	memCache *cache.MemCache
}

// LeaderboardServiceDeps is the dependency list for the leaderboard service.
type LeaderboardServiceDeps struct {
	Riot     RiotClient
	MemCache *cache.MemCache
}

// NewLeaderboardService creates a leaderboard service.
func NewLeaderboardService(deps *LeaderboardServiceDeps) *LeaderboardService {
	return &LeaderboardService{
		riot:     deps.Riot,
		memCache: deps.MemCache,
	}
}

// GetLeaderboard returns the top of the ladder for a platform and queue,
// merging challenger, grandmaster and master.
func (ls *LeaderboardService) GetLeaderboard(ctx context.Context, platform regions.Platform, queue string) (*dto.Leaderboard, error) {
	key := "leaderboard:" + string(platform) + ":" + queue
	if mem := ls.memCache.Get(key); mem != nil {
		return mem.(*dto.Leaderboard), nil
	}

	leagues := make([]*leaguefetcher.HighEloLeague, 3)
	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		league, err := ls.riot.GetChallengerLeague(groupCtx, platform, queue, true)
		leagues[0] = league
		return err
	})
	group.Go(func() error {
		league, err := ls.riot.GetGrandmasterLeague(groupCtx, platform, queue, true)
		leagues[1] = league
		return err
	})
	group.Go(func() error {
		league, err := ls.riot.GetMasterLeague(groupCtx, platform, queue, true)
		leagues[2] = league
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var entries []dto.LeaderboardEntry
	for _, league := range leagues {
		if league == nil {
			continue
		}
		for _, entry := range league.Entries {
			entries = append(entries, dto.LeaderboardEntry{
				Puuid:        entry.Puuid,
				Tier:         league.Tier,
				TierName:     tiervalues.SpanishName(league.Tier),
				LeaguePoints: entry.LeaguePoints,
				Wins:         entry.Wins,
				Losses:       entry.Losses,
				WinRate:      winRate(entry.Wins, entry.Losses),
				HotStreak:    entry.HotStreak,
			})
		}
	}

	// Apex tiers have no division, ordering is tier then LP.
	sort.SliceStable(entries, func(i, j int) bool {
		left := tiervalues.CalculateRank(entries[i].Tier, "", entries[i].LeaguePoints)
		right := tiervalues.CalculateRank(entries[j].Tier, "", entries[j].LeaguePoints)
		return left > right
	})

	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	for i := range entries {
		entries[i].Position = i + 1
	}

	result := &dto.Leaderboard{
		Queue:   queue,
		Region:  string(platform),
		Entries: entries,
	}
	ls.memCache.Set(key, result, leaderboardMemoryTtl)

	return result, nil
}
