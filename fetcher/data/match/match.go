package matchfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"legendstats/fetcher/requests"
	"legendstats/pkg/regions"
)

// The match fetcher with it's client and cluster.
type MatchFetcher struct {
	client  *requests.Client
	limiter *requests.RateLimiter
	cluster regions.Cluster
}

// Create a instance of the match fetcher.
func CreateMatchFetcher(client *requests.Client, limiter *requests.RateLimiter, platform regions.Platform) *MatchFetcher {
	return &MatchFetcher{
		client:  client,
		limiter: limiter,
		cluster: regions.ClusterFromPlatform(platform),
	}
}

// Options for the match id listing.
type MatchListOptions struct {
	Start int
	Count int
	Queue int
}

// Get a players match id list.
func (m *MatchFetcher) GetMatchIds(ctx context.Context, puuid string, opts MatchListOptions, onDemand bool) ([]string, error) {
	if onDemand {
		m.limiter.WaitApi()
	} else {
		m.limiter.WaitJob()
	}

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/by-puuid/%s/ids",
		m.cluster, puuid)

	params := map[string]string{
		"start": strconv.Itoa(opts.Start),
		"count": strconv.Itoa(opts.Count),
	}
	if opts.Queue != 0 {
		params["queue"] = strconv.Itoa(opts.Queue)
	}

	resp, err := m.client.AuthRequest(ctx, reqUrl, params)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var matches []string
	if err := json.NewDecoder(resp.Body).Decode(&matches); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}
	return matches, nil
}

// Get a given match data.
func (m *MatchFetcher) GetMatchData(ctx context.Context, matchId string, onDemand bool) (*MatchData, error) {
	if onDemand {
		m.limiter.WaitApi()
	} else {
		m.limiter.WaitJob()
	}

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/match/v5/matches/%s",
		m.cluster, matchId)

	resp, err := m.client.AuthRequest(ctx, reqUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var matchData MatchData
	if err := json.NewDecoder(resp.Body).Decode(&matchData); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}
	return &matchData, nil
}
