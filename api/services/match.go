package services

import (
	"context"
	"encoding/json"
	"log"

	"legendstats/api/converters"
	"legendstats/api/dto"
	"legendstats/api/filters"
	"legendstats/api/repositories"
	matchfetcher "legendstats/fetcher/data/match"
	"legendstats/pkg/lp"
	"legendstats/pkg/regions"

	"golang.org/x/sync/errgroup"
)

// Concurrent upstream match fetches per history request.
const matchFetchConcurrency = 4

// Match service with it's upstream client and repositories.
type MatchService struct {
	riot       RiotClient
	matchCache repositories.MatchCacheRepository
	snapshots  repositories.SnapshotRepository
}

// MatchServiceDeps is the dependency list for the match service.
type MatchServiceDeps struct {
	Riot       RiotClient
	MatchCache repositories.MatchCacheRepository
	Snapshots  repositories.SnapshotRepository
}

// NewMatchService creates a match service.
func NewMatchService(deps *MatchServiceDeps) *MatchService {
	return &MatchService{
		riot:       deps.Riot,
		matchCache: deps.MatchCache,
		snapshots:  deps.Snapshots,
	}
}

// GetHistory returns the recent matches of a player with the performance
// score of the player and, for ranked matches, the reconstructed LP change.
func (ms *MatchService) GetHistory(ctx context.Context, platform regions.Platform, puuid string, params filters.MatchHistoryParams) ([]dto.MatchSummary, error) {
	params.Normalize()

	matchIds, err := ms.riot.GetMatchIds(ctx, platform, puuid, matchfetcher.MatchListOptions{
		Start: params.Start,
		Count: params.Count,
		Queue: params.Queue,
	}, true)
	if err != nil {
		return nil, err
	}

	matches := make([]*matchfetcher.MatchData, len(matchIds))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(matchFetchConcurrency)
	for i, matchId := range matchIds {
		group.Go(func() error {
			match, err := ms.getMatch(groupCtx, platform, matchId)
			if err != nil {
				// A single broken match doesn't void the history.
				log.Printf("couldn't fetch match %s: %v", matchId, err)
				return nil
			}
			matches[i] = match
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	deltas := ms.reconstructDeltas(ctx, platform, puuid, matches)

	summaries := make([]dto.MatchSummary, 0, len(matches))
	for _, match := range matches {
		if match == nil {
			continue
		}
		summary := converters.ToMatchSummary(match, puuid)
		if summary == nil {
			continue
		}
		if delta, ok := deltas[summary.MatchId]; ok {
			summary.LpDelta = &delta
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

// GetMatch returns the full scored view of a single match.
func (ms *MatchService) GetMatch(ctx context.Context, platform regions.Platform, matchId string) (*dto.MatchDetail, error) {
	match, err := ms.getMatch(ctx, platform, matchId)
	if err != nil {
		return nil, err
	}
	return converters.ToMatchDetail(match), nil
}

// getMatch reads through the Postgres match cache, caching upstream
// payloads as a best effort write.
func (ms *MatchService) getMatch(ctx context.Context, platform regions.Platform, matchId string) (*matchfetcher.MatchData, error) {
	if cached, err := ms.matchCache.GetMatch(matchId); err == nil && cached != nil {
		var match matchfetcher.MatchData
		if err := json.Unmarshal(cached, &match); err == nil {
			return &match, nil
		}
	}

	match, err := ms.riot.GetMatchData(ctx, platform, matchId, true)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(match); err == nil {
		runAsync("match-cache-write", func(ctx context.Context) error {
			return ms.matchCache.SetMatch(matchId, platform, payload)
		})
	}

	return match, nil
}

// reconstructDeltas runs the LP reconstruction over the fetched matches.
// Reconstruction is best effort: any upstream or database failure just
// yields an empty delta map.
func (ms *MatchService) reconstructDeltas(ctx context.Context, platform regions.Platform, puuid string, matches []*matchfetcher.MatchData) map[string]int {
	facts := make([]lp.MatchFact, 0, len(matches))
	for _, match := range matches {
		if match != nil {
			facts = append(facts, converters.ToMatchFact(match, puuid))
		}
	}
	if len(facts) == 0 {
		return map[string]int{}
	}

	stored, err := ms.snapshots.ListByPlayer(puuid, platform)
	if err != nil {
		log.Printf("couldn't load snapshots for %s: %v", puuid, err)
		return map[string]int{}
	}

	snapshots := make([]lp.Snapshot, 0, len(stored))
	for _, s := range stored {
		snapshots = append(snapshots, lp.Snapshot{
			QueueType:    s.QueueType,
			Tier:         s.Tier,
			Division:     s.Division,
			LeaguePoints: s.LeaguePoints,
			Wins:         s.Wins,
			Losses:       s.Losses,
			FetchedAt:    s.FetchedAt,
		})
	}

	currentByQueue := make(map[string]lp.CurrentRank)
	entries, err := ms.riot.GetLeagueEntries(ctx, platform, puuid)
	if err != nil {
		log.Printf("couldn't fetch league entries for %s: %v", puuid, err)
	} else {
		for _, entry := range entries {
			if entry.QueueType == nil || entry.Tier == nil {
				continue
			}
			division := ""
			if entry.Rank != nil {
				division = *entry.Rank
			}
			currentByQueue[*entry.QueueType] = lp.CurrentRank{
				Tier:         *entry.Tier,
				Division:     division,
				LeaguePoints: entry.LeaguePoints,
				Wins:         entry.Wins,
				Losses:       entry.Losses,
			}
		}
	}

	return lp.ComputeDeltas(facts, snapshots, currentByQueue)
}
