package data

import (
	leaguefetcher "legendstats/fetcher/data/league"
	matchfetcher "legendstats/fetcher/data/match"
	playerfetcher "legendstats/fetcher/data/player"
	spectatorfetcher "legendstats/fetcher/data/spectator"
	"legendstats/fetcher/requests"
	"legendstats/pkg/regions"
)

// Define a main fetcher grouping every endpoint family for a platform.
type MainFetcher struct {
	Player    *playerfetcher.PlayerFetcher
	Match     *matchfetcher.MatchFetcher
	League    *leaguefetcher.LeagueFetcher
	Spectator *spectatorfetcher.SpectatorFetcher
}

// Function to instanciate the main fetcher.
// The request client is shared, the limiter belongs to the platform.
func CreateMainFetcher(client *requests.Client, platform regions.Platform) *MainFetcher {
	limiter := requests.CreateRateLimiter()

	return &MainFetcher{
		Player:    playerfetcher.CreatePlayerFetcher(client, limiter, platform),
		Match:     matchfetcher.CreateMatchFetcher(client, limiter, platform),
		League:    leaguefetcher.CreateLeagueFetcher(client, limiter, platform),
		Spectator: spectatorfetcher.CreateSpectatorFetcher(client, limiter, platform),
	}
}
