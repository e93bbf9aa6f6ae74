package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"time"

	"legendstats/api/repositories"
	"legendstats/fetcher/data"
	matchfetcher "legendstats/fetcher/data/match"
	"legendstats/fetcher/requests"
	"legendstats/pkg/config"
	"legendstats/pkg/database"
	"legendstats/pkg/logger"
	"legendstats/pkg/regions"
	"legendstats/pkg/tierlist"
)

const (
	// Challenger players sampled and recent ranked matches per player.
	winrateSamplePlayers = 10
	winrateSampleMatches = 12

	rankedSoloQueueId = 420
	winratePlatform   = regions.Platform("la1")
)

// Riot team positions mapped to the site roles.
var teamPositionToRole = map[string]tierlist.Role{
	"TOP":     tierlist.RoleTop,
	"JUNGLE":  tierlist.RoleJungle,
	"MIDDLE":  tierlist.RoleMid,
	"BOTTOM":  tierlist.RoleAdc,
	"UTILITY": tierlist.RoleSupport,
}

var championKeyPattern = regexp.MustCompile(`[^a-zA-Z0-9]`)

// BuildWinrateAggregate samples the challenger ladder and rebuilds the
// per champion win/loss aggregate used by the tier list.
// Background requests are paced by the rate limiter, the whole run takes
// a few minutes on purpose.
func BuildWinrateAggregate(cfg *config.Config) error {
	jobLogger, err := logger.CreateLogger(cfg.Bucket)
	if err != nil {
		return fmt.Errorf("couldn't create the job logger: %w", err)
	}

	db, err := database.NewConnection(cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("couldn't get database connection: %w", err)
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	registry := data.NewRegistry(requests.NewClient(cfg.ApiKey))
	matchCache := repositories.NewMatchCacheRepository(db)
	blobs := repositories.NewBlobCacheRepository(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	jobLogger.Infof("Starting winrate aggregation for %s", winratePlatform)

	aggregate, sampled, err := buildAggregate(ctx, registry, matchCache, jobLogger)
	if err != nil {
		jobLogger.Errorf("Winrate aggregation failed: %v", err)
		return err
	}

	payload, err := json.Marshal(aggregate)
	if err != nil {
		return fmt.Errorf("couldn't encode the aggregate: %w", err)
	}
	if err := blobs.SetKey(repositories.WinrateAggregateKey, payload); err != nil {
		jobLogger.Errorf("Couldn't store the aggregate: %v", err)
		return err
	}

	jobLogger.Infof("Winrate aggregation finished: %d matches, %d champions", sampled, len(aggregate))
	uploadJobLog(jobLogger, "winrates")

	return nil
}

// buildAggregate walks the sampled ladder and counts wins and losses
// per champion and role.
func buildAggregate(ctx context.Context, registry *data.Registry, matchCache repositories.MatchCacheRepository, jobLogger *logger.Logger) (tierlist.Aggregate, int, error) {
	league, err := registry.GetChallengerLeague(ctx, winratePlatform, "RANKED_SOLO_5x5", false)
	if err != nil {
		return nil, 0, fmt.Errorf("couldn't fetch the challenger league: %w", err)
	}

	sample := league.Entries
	if len(sample) > winrateSamplePlayers {
		sample = sample[:winrateSamplePlayers]
	}

	matchIds := make(map[string]bool)
	for _, entry := range sample {
		if entry.Puuid == "" {
			continue
		}

		ids, err := registry.GetMatchIds(ctx, winratePlatform, entry.Puuid, matchfetcher.MatchListOptions{
			Count: winrateSampleMatches,
			Queue: rankedSoloQueueId,
		}, false)
		if err != nil {
			// Skip failed players, the sample just gets smaller.
			jobLogger.Errorf("Couldn't list matches for %s: %v", entry.Puuid, err)
			continue
		}
		for _, id := range ids {
			matchIds[id] = true
		}
	}

	aggregate := make(tierlist.Aggregate)
	sampled := 0
	for matchId := range matchIds {
		match, err := getCachedMatch(ctx, registry, matchCache, matchId)
		if err != nil {
			jobLogger.Errorf("Couldn't fetch match %s: %v", matchId, err)
			continue
		}
		if match.Info.QueueId != rankedSoloQueueId || len(match.Info.Participants) == 0 {
			continue
		}

		sampled++
		for _, p := range match.Info.Participants {
			role, ok := teamPositionToRole[p.TeamPosition]
			if !ok {
				continue
			}

			key := championKeyPattern.ReplaceAllString(p.ChampionName, "")
			if key == "" || key == "Unknown" {
				continue
			}

			if aggregate[key] == nil {
				aggregate[key] = make(map[tierlist.Role]tierlist.WinLoss)
			}
			counts := aggregate[key][role]
			if p.Win {
				counts.Wins++
			} else {
				counts.Losses++
			}
			aggregate[key][role] = counts
		}
	}

	return aggregate, sampled, nil
}

// getCachedMatch reads through the Postgres match cache.
func getCachedMatch(ctx context.Context, registry *data.Registry, matchCache repositories.MatchCacheRepository, matchId string) (*matchfetcher.MatchData, error) {
	if cached, err := matchCache.GetMatch(matchId); err == nil && cached != nil {
		var match matchfetcher.MatchData
		if err := json.Unmarshal(cached, &match); err == nil {
			return &match, nil
		}
	}

	match, err := registry.GetMatchData(ctx, winratePlatform, matchId, false)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(match); err == nil {
		if err := matchCache.SetMatch(matchId, winratePlatform, payload); err != nil {
			log.Printf("couldn't cache match %s: %v", matchId, err)
		}
	}
	return match, nil
}

// uploadJobLog ships the job log to the bucket and resets the file.
func uploadJobLog(jobLogger *logger.Logger, jobName string) {
	key := fmt.Sprintf("scheduler/%s/%s.log", jobName, time.Now().UTC().Format("2006-01-02"))
	if err := jobLogger.UploadToS3Bucket(key); err != nil {
		log.Printf("couldn't upload the %s job log: %v", jobName, err)
		return
	}
	jobLogger.CleanFile()
}
