package data

import (
	"context"
	"sync"

	leaguefetcher "legendstats/fetcher/data/league"
	matchfetcher "legendstats/fetcher/data/match"
	playerfetcher "legendstats/fetcher/data/player"
	spectatorfetcher "legendstats/fetcher/data/spectator"
	"legendstats/fetcher/requests"
	"legendstats/pkg/regions"
)

// Registry hands out a MainFetcher per platform, sharing the request
// client but keeping one rate limiter per platform.
type Registry struct {
	client   *requests.Client
	fetchers map[regions.Platform]*MainFetcher
	mu       sync.Mutex
}

// Create a instance of the registry.
func NewRegistry(client *requests.Client) *Registry {
	return &Registry{
		client:   client,
		fetchers: make(map[regions.Platform]*MainFetcher),
	}
}

// For returns the fetcher for a platform, creating it on first use.
func (r *Registry) For(platform regions.Platform) *MainFetcher {
	r.mu.Lock()
	defer r.mu.Unlock()

	fetcher, exists := r.fetchers[platform]
	if !exists {
		fetcher = CreateMainFetcher(r.client, platform)
		r.fetchers[platform] = fetcher
	}
	return fetcher
}

// Flat methods dispatching by platform, so callers can depend on a
// single narrow interface instead of the whole fetcher family.

func (r *Registry) GetAccountByRiotId(ctx context.Context, platform regions.Platform, gameName string, tagLine string) (*playerfetcher.Account, error) {
	return r.For(platform).Player.GetAccountByRiotId(ctx, gameName, tagLine)
}

func (r *Registry) GetSummonerByPuuid(ctx context.Context, platform regions.Platform, puuid string) (*playerfetcher.Summoner, error) {
	return r.For(platform).Player.GetSummonerByPuuid(ctx, puuid)
}

func (r *Registry) GetLeagueEntries(ctx context.Context, platform regions.Platform, puuid string) ([]leaguefetcher.LeagueEntry, error) {
	return r.For(platform).League.GetEntriesByPuuid(ctx, puuid)
}

func (r *Registry) GetChallengerLeague(ctx context.Context, platform regions.Platform, queue string, onDemand bool) (*leaguefetcher.HighEloLeague, error) {
	return r.For(platform).League.GetChallengerLeague(ctx, queue, onDemand)
}

func (r *Registry) GetGrandmasterLeague(ctx context.Context, platform regions.Platform, queue string, onDemand bool) (*leaguefetcher.HighEloLeague, error) {
	return r.For(platform).League.GetGrandmasterLeague(ctx, queue, onDemand)
}

func (r *Registry) GetMasterLeague(ctx context.Context, platform regions.Platform, queue string, onDemand bool) (*leaguefetcher.HighEloLeague, error) {
	return r.For(platform).League.GetMasterLeague(ctx, queue, onDemand)
}

func (r *Registry) GetMatchIds(ctx context.Context, platform regions.Platform, puuid string, opts matchfetcher.MatchListOptions, onDemand bool) ([]string, error) {
	return r.For(platform).Match.GetMatchIds(ctx, puuid, opts, onDemand)
}

func (r *Registry) GetMatchData(ctx context.Context, platform regions.Platform, matchId string, onDemand bool) (*matchfetcher.MatchData, error) {
	return r.For(platform).Match.GetMatchData(ctx, matchId, onDemand)
}

func (r *Registry) GetLiveGame(ctx context.Context, platform regions.Platform, puuid string) (*spectatorfetcher.CurrentGameInfo, error) {
	return r.For(platform).Spectator.GetLiveGame(ctx, puuid)
}
