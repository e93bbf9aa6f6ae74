package playerfetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"legendstats/fetcher/requests"
	"legendstats/pkg/messages"
	"legendstats/pkg/regions"
)

// The player fetcher with it's client, cluster and platform.
type PlayerFetcher struct {
	client   *requests.Client
	limiter  *requests.RateLimiter
	cluster  regions.Cluster
	platform regions.Platform
}

// Create a player fetcher.
func CreatePlayerFetcher(client *requests.Client, limiter *requests.RateLimiter, platform regions.Platform) *PlayerFetcher {
	return &PlayerFetcher{
		client:   client,
		limiter:  limiter,
		cluster:  regions.ClusterFromPlatform(platform),
		platform: platform,
	}
}

// Account returned by the account_v1 endpoint.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner returned by the summoner_v4 endpoint.
type Summoner struct {
	Puuid         string `json:"puuid"`
	ProfileIconId int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
	RevisionDate  int64  `json:"revisionDate"`
}

// Get a account by it's Riot ID (game name + tag line).
func (p *PlayerFetcher) GetAccountByRiotId(ctx context.Context, gameName string, tagLine string) (*Account, error) {
	p.limiter.WaitApi()

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/riot/account/v1/accounts/by-riot-id/%s/%s",
		p.cluster, url.PathEscape(gameName), url.PathEscape(tagLine))

	resp, err := p.client.AuthRequest(ctx, reqUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.New(messages.CouldNotFindPlayer)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var account Account
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}
	return &account, nil
}

// Get a players summoner data.
func (p *PlayerFetcher) GetSummonerByPuuid(ctx context.Context, puuid string) (*Summoner, error) {
	p.limiter.WaitApi()

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/summoner/v4/summoners/by-puuid/%s",
		p.platform, puuid)

	resp, err := p.client.AuthRequest(ctx, reqUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var summoner Summoner
	if err := json.NewDecoder(resp.Body).Decode(&summoner); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}
	return &summoner, nil
}
