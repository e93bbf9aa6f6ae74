package leaguefetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"legendstats/fetcher/requests"
	"legendstats/pkg/regions"
)

// The league fetcher with it's client and platform.
type LeagueFetcher struct {
	client   *requests.Client
	limiter  *requests.RateLimiter
	platform regions.Platform
}

// Create a instance of the league fetcher.
func CreateLeagueFetcher(client *requests.Client, limiter *requests.RateLimiter, platform regions.Platform) *LeagueFetcher {
	return &LeagueFetcher{
		client:   client,
		limiter:  limiter,
		platform: platform,
	}
}

// Get every ranked entry for a given player.
func (l *LeagueFetcher) GetEntriesByPuuid(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	l.limiter.WaitApi()

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/entries/by-puuid/%s",
		l.platform, puuid)

	resp, err := l.client.AuthRequest(ctx, reqUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var entries []LeagueEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}
	return entries, nil
}

// Get the challenger league for a given queue.
func (l *LeagueFetcher) GetChallengerLeague(ctx context.Context, queue string, onDemand bool) (*HighEloLeague, error) {
	return l.getHighEloLeague(ctx, "challengerleagues", queue, onDemand)
}

// Get the grandmaster league for a given queue.
func (l *LeagueFetcher) GetGrandmasterLeague(ctx context.Context, queue string, onDemand bool) (*HighEloLeague, error) {
	return l.getHighEloLeague(ctx, "grandmasterleagues", queue, onDemand)
}

// Get the master league for a given queue.
func (l *LeagueFetcher) GetMasterLeague(ctx context.Context, queue string, onDemand bool) (*HighEloLeague, error) {
	return l.getHighEloLeague(ctx, "masterleagues", queue, onDemand)
}

// Shared handler for the apex leagues, which only differ on the path.
func (l *LeagueFetcher) getHighEloLeague(ctx context.Context, league string, queue string, onDemand bool) (*HighEloLeague, error) {
	if onDemand {
		l.limiter.WaitApi()
	} else {
		l.limiter.WaitJob()
	}

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/league/v4/%s/by-queue/%s",
		l.platform, league, queue)

	resp, err := l.client.AuthRequest(ctx, reqUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var result HighEloLeague
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}
	return &result, nil
}
