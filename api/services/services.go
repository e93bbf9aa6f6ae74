package services

import (
	"context"
	"log"
	"time"

	leaguefetcher "legendstats/fetcher/data/league"
	matchfetcher "legendstats/fetcher/data/match"
	playerfetcher "legendstats/fetcher/data/player"
	spectatorfetcher "legendstats/fetcher/data/spectator"
	"legendstats/pkg/regions"
	"legendstats/pkg/tierlist"
)

// RiotClient is the upstream surface the services consume.
// Implemented by the fetcher registry, mocked on tests.
type RiotClient interface {
	GetAccountByRiotId(ctx context.Context, platform regions.Platform, gameName string, tagLine string) (*playerfetcher.Account, error)
	GetSummonerByPuuid(ctx context.Context, platform regions.Platform, puuid string) (*playerfetcher.Summoner, error)
	GetLeagueEntries(ctx context.Context, platform regions.Platform, puuid string) ([]leaguefetcher.LeagueEntry, error)
	GetChallengerLeague(ctx context.Context, platform regions.Platform, queue string, onDemand bool) (*leaguefetcher.HighEloLeague, error)
	GetGrandmasterLeague(ctx context.Context, platform regions.Platform, queue string, onDemand bool) (*leaguefetcher.HighEloLeague, error)
	GetMasterLeague(ctx context.Context, platform regions.Platform, queue string, onDemand bool) (*leaguefetcher.HighEloLeague, error)
	GetMatchIds(ctx context.Context, platform regions.Platform, puuid string, opts matchfetcher.MatchListOptions, onDemand bool) ([]string, error)
	GetMatchData(ctx context.Context, platform regions.Platform, matchId string, onDemand bool) (*matchfetcher.MatchData, error)
	GetLiveGame(ctx context.Context, platform regions.Platform, puuid string) (*spectatorfetcher.CurrentGameInfo, error)
}

// AnalyticsClient provides the champion play rates.
type AnalyticsClient interface {
	GetEntries(ctx context.Context) ([]tierlist.AnalyticsEntry, error)
}

// AssetsClient provides the DDragon static data.
type AssetsClient interface {
	GetLatestVersion(ctx context.Context) (string, error)
	GetChampionNames(ctx context.Context) (map[int]string, error)
}

// RedisCache is the thin cache surface the services need.
type RedisCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// How long a fire and forget write may run after the request finished.
const asyncTaskTimeout = 5 * time.Second

// runAsync runs a best effort write on its own goroutine.
// Failures only get logged, the request result does not depend on them.
func runAsync(name string, task func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTaskTimeout)
		defer cancel()

		if err := task(ctx); err != nil {
			log.Printf("async task %s failed: %v", name, err)
		}
	}()
}
