package services

import (
	"context"
	"log"

	"legendstats/api/dto"
	"legendstats/pkg/regions"
	queuevalues "legendstats/pkg/riotvalues/queue"
)

// Live service resolving the spectator view of a player.
type LiveService struct {
	riot   RiotClient
	assets AssetsClient
}

// LiveServiceDeps is the dependency list for the live service.
type LiveServiceDeps struct {
	Riot   RiotClient
	Assets AssetsClient
}

// NewLiveService creates a live service.
func NewLiveService(deps *LiveServiceDeps) *LiveService {
	return &LiveService{
		riot:   deps.Riot,
		assets: deps.Assets,
	}
}

// GetLiveGame returns the current game of a player.
// Propagates spectatorfetcher.ErrNotInGame untouched for the handler.
func (ls *LiveService) GetLiveGame(ctx context.Context, platform regions.Platform, puuid string) (*dto.LiveGame, error) {
	game, err := ls.riot.GetLiveGame(ctx, platform, puuid)
	if err != nil {
		return nil, err
	}

	// Names are cosmetic, a cache failure leaves the ids only.
	names, err := ls.assets.GetChampionNames(ctx)
	if err != nil {
		log.Printf("couldn't resolve champion names: %v", err)
		names = map[int]string{}
	}

	live := &dto.LiveGame{
		GameId:        game.GameId,
		QueueId:       game.GameQueueConfigId,
		QueueName:     queuevalues.QueueName(game.GameQueueConfigId),
		GameStartTime: game.GameStartTime,
		GameLength:    game.GameLength,
		Participants:  make([]dto.LiveParticipant, 0, len(game.Participants)),
		Bans:          make([]dto.LiveBan, 0, len(game.BannedChampions)),
	}

	for _, p := range game.Participants {
		live.Participants = append(live.Participants, dto.LiveParticipant{
			Puuid:        p.Puuid,
			RiotId:       p.RiotId,
			TeamId:       p.TeamId,
			ChampionId:   p.ChampionId,
			ChampionName: names[p.ChampionId],
			Spell1Id:     p.Spell1Id,
			Spell2Id:     p.Spell2Id,
			Bot:          p.Bot,
		})
	}

	for _, ban := range game.BannedChampions {
		// -1 means no ban was made on that pick turn.
		if ban.ChampionId <= 0 {
			continue
		}
		live.Bans = append(live.Bans, dto.LiveBan{
			ChampionId:   ban.ChampionId,
			ChampionName: names[ban.ChampionId],
			TeamId:       ban.TeamId,
			PickTurn:     ban.PickTurn,
		})
	}

	return live, nil
}
