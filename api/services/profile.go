package services

import (
	"context"
	"math"

	"legendstats/api/dto"
	"legendstats/api/repositories"
	leaguefetcher "legendstats/fetcher/data/league"
	playerfetcher "legendstats/fetcher/data/player"
	"legendstats/pkg/database/models"
	"legendstats/pkg/regions"
	queuevalues "legendstats/pkg/riotvalues/queue"
	tiervalues "legendstats/pkg/riotvalues/tier"

	"golang.org/x/sync/errgroup"
)

// Profile service with it's upstream client and repositories.
type ProfileService struct {
	riot      RiotClient
	snapshots repositories.SnapshotRepository
	summoners repositories.SummonerRepository
}

// ProfileServiceDeps is the dependency list for the profile service.
type ProfileServiceDeps struct {
	Riot      RiotClient
	Snapshots repositories.SnapshotRepository
	Summoners repositories.SummonerRepository
}

// NewProfileService creates a profile service.
func NewProfileService(deps *ProfileServiceDeps) *ProfileService {
	return &ProfileService{
		riot:      deps.Riot,
		snapshots: deps.Snapshots,
		summoners: deps.Summoners,
	}
}

// GetProfile resolves a Riot ID into the full profile view.
// Every view also appends rank snapshots and refreshes the search index,
// both as best effort writes that never fail the request.
func (ps *ProfileService) GetProfile(ctx context.Context, platform regions.Platform, gameName string, tagLine string) (*dto.Profile, error) {
	account, err := ps.riot.GetAccountByRiotId(ctx, platform, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	var summonerLevel, profileIcon int
	var entries []leaguefetcher.LeagueEntry

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		summoner, err := ps.riot.GetSummonerByPuuid(groupCtx, platform, account.Puuid)
		if err != nil {
			return err
		}
		summonerLevel = summoner.SummonerLevel
		profileIcon = summoner.ProfileIconId
		return nil
	})
	group.Go(func() error {
		fetched, err := ps.riot.GetLeagueEntries(groupCtx, platform, account.Puuid)
		if err != nil {
			return err
		}
		entries = fetched
		return nil
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	profile := &dto.Profile{
		Puuid:         account.Puuid,
		GameName:      account.GameName,
		TagLine:       account.TagLine,
		Region:        string(platform),
		ProfileIconId: profileIcon,
		SummonerLevel: summonerLevel,
		Ranks:         make([]dto.RankedEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		if entry.QueueType == nil || entry.Tier == nil {
			continue
		}
		profile.Ranks = append(profile.Ranks, toRankedEntry(entry))
	}

	ps.storeObservations(account, platform, profileIcon, entries)

	return profile, nil
}

// storeObservations schedules the snapshot appends and the search index
// refresh caused by a profile view.
func (ps *ProfileService) storeObservations(account *playerfetcher.Account, platform regions.Platform, profileIcon int, entries []leaguefetcher.LeagueEntry) {
	for _, entry := range entries {
		if entry.QueueType == nil || entry.Tier == nil {
			continue
		}

		snapshot := &models.RankSnapshot{
			Puuid:        account.Puuid,
			Region:       platform,
			QueueType:    *entry.QueueType,
			Tier:         *entry.Tier,
			Division:     divisionOrDefault(entry.Rank),
			LeaguePoints: entry.LeaguePoints,
			Wins:         entry.Wins,
			Losses:       entry.Losses,
		}
		runAsync("snapshot-append", func(ctx context.Context) error {
			return ps.snapshots.Create(snapshot)
		})
	}

	index := &models.SummonerIndex{
		Puuid:       account.Puuid,
		Region:      platform,
		RiotId:      account.GameName + "#" + account.TagLine,
		ProfileIcon: profileIcon,
	}
	runAsync("summoner-index-upsert", func(ctx context.Context) error {
		return ps.summoners.Upsert(index)
	})
}

func toRankedEntry(entry leaguefetcher.LeagueEntry) dto.RankedEntry {
	return dto.RankedEntry{
		QueueType:    *entry.QueueType,
		QueueName:    queueDisplayName(*entry.QueueType),
		Tier:         *entry.Tier,
		TierName:     tiervalues.SpanishName(*entry.Tier),
		Division:     divisionOrDefault(entry.Rank),
		LeaguePoints: entry.LeaguePoints,
		Wins:         entry.Wins,
		Losses:       entry.Losses,
		WinRate:      winRate(entry.Wins, entry.Losses),
	}
}

func queueDisplayName(queueType string) string {
	for queueId, name := range queuevalues.RankedQueueType {
		if name == queueType {
			return queuevalues.QueueName(queueId)
		}
	}
	return queueType
}

func divisionOrDefault(rank *string) string {
	if rank == nil || *rank == "" {
		return "I"
	}
	return *rank
}

// winRate rounds to one decimal, zero when no games were played.
func winRate(wins int, losses int) float64 {
	total := wins + losses
	if total == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(total)*1000) / 10
}
