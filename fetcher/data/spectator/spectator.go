package spectatorfetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"legendstats/fetcher/requests"
	"legendstats/pkg/messages"
	"legendstats/pkg/regions"
)

// ErrNotInGame is returned when the spectator endpoint has no live game.
var ErrNotInGame = errors.New(messages.NotInGame)

// The spectator fetcher with it's client and platform.
type SpectatorFetcher struct {
	client   *requests.Client
	limiter  *requests.RateLimiter
	platform regions.Platform
}

// Create a instance of the spectator fetcher.
func CreateSpectatorFetcher(client *requests.Client, limiter *requests.RateLimiter, platform regions.Platform) *SpectatorFetcher {
	return &SpectatorFetcher{
		client:   client,
		limiter:  limiter,
		platform: platform,
	}
}

// Return type from the spectator_v5 endpoint.
type CurrentGameInfo struct {
	GameId            int64                    `json:"gameId"`
	GameMode          string                   `json:"gameMode"`
	GameQueueConfigId int                      `json:"gameQueueConfigId"`
	GameStartTime     int64                    `json:"gameStartTime"`
	GameLength        int64                    `json:"gameLength"`
	PlatformId        string                   `json:"platformId"`
	Participants      []CurrentGameParticipant `json:"participants"`
	BannedChampions   []BannedChampion         `json:"bannedChampions"`
}

type CurrentGameParticipant struct {
	Puuid         string `json:"puuid"`
	TeamId        int    `json:"teamId"`
	ChampionId    int    `json:"championId"`
	ProfileIconId int    `json:"profileIconId"`
	RiotId        string `json:"riotId"`
	Spell1Id      int    `json:"spell1Id"`
	Spell2Id      int    `json:"spell2Id"`
	Bot           bool   `json:"bot"`
}

type BannedChampion struct {
	ChampionId int `json:"championId"`
	TeamId     int `json:"teamId"`
	PickTurn   int `json:"pickTurn"`
}

// Get the live game a player is currently on.
// Returns ErrNotInGame when the player has no active game.
func (s *SpectatorFetcher) GetLiveGame(ctx context.Context, puuid string) (*CurrentGameInfo, error) {
	s.limiter.WaitApi()

	reqUrl := fmt.Sprintf("https://%s.api.riotgames.com/lol/spectator/v5/active-games/by-summoner/%s",
		s.platform, puuid)

	resp, err := s.client.AuthRequest(ctx, reqUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotInGame
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status code %d", resp.StatusCode)
	}

	var game CurrentGameInfo
	if err := json.NewDecoder(resp.Body).Decode(&game); err != nil {
		return nil, fmt.Errorf("failed to parse API response: %w", err)
	}
	return &game, nil
}
