package converters

import (
	"legendstats/api/dto"
	matchfetcher "legendstats/fetcher/data/match"
	"legendstats/pkg/lp"
	queuevalues "legendstats/pkg/riotvalues/queue"
	"legendstats/pkg/score"
)

// ToScoreParticipants maps the raw match participants into the scorer input.
func ToScoreParticipants(match *matchfetcher.MatchData) []score.Participant {
	participants := make([]score.Participant, 0, len(match.Info.Participants))
	for _, p := range match.Info.Participants {
		participants = append(participants, score.Participant{
			Puuid:                p.Puuid,
			ChampionId:           p.ChampionId,
			ChampionName:         p.ChampionName,
			TeamId:               p.TeamId,
			Win:                  p.Win,
			Kills:                p.Kills,
			Deaths:               p.Deaths,
			Assists:              p.Assists,
			GoldEarned:           p.GoldEarned,
			DamageToChampions:    p.TotalDamageDealtToChampions,
			VisionScore:          p.VisionScore,
			TotalMinionsKilled:   p.TotalMinionsKilled,
			NeutralMinionsKilled: p.NeutralMinionsKilled,
			TimePlayed:           p.TimePlayed,
		})
	}
	return participants
}

// ToMatchFact maps a match into the LP reconstructor input for one player.
func ToMatchFact(match *matchfetcher.MatchData, puuid string) lp.MatchFact {
	fact := lp.MatchFact{
		MatchId:          match.Metadata.MatchId,
		QueueId:          match.Info.QueueId,
		GameEndTimestamp: match.Info.GameEndTimestamp,
	}
	for _, p := range match.Info.Participants {
		if p.Puuid == puuid {
			fact.Win = p.Win
			break
		}
	}
	return fact
}

// ToMatchDetail builds the full scored view of a match.
func ToMatchDetail(match *matchfetcher.MatchData) *dto.MatchDetail {
	scored := score.ScoreAndRank(ToScoreParticipants(match))

	detail := &dto.MatchDetail{
		MatchId:      match.Metadata.MatchId,
		QueueId:      match.Info.QueueId,
		QueueName:    queuevalues.QueueName(match.Info.QueueId),
		GameCreation: match.Info.GameCreation,
		GameDuration: match.Info.GameDuration,
		GameVersion:  match.Info.GameVersion,
		Participants: make([]dto.ScoredParticipant, 0, len(scored)),
	}

	raw := participantsByPuuid(match)
	for _, s := range scored {
		detail.Participants = append(detail.Participants, toScoredParticipant(s, raw[s.Puuid]))
	}
	return detail
}

// ToMatchSummary builds the history row for the given player.
// Returns nil when the player is not on the match.
func ToMatchSummary(match *matchfetcher.MatchData, puuid string) *dto.MatchSummary {
	raw, ok := participantsByPuuid(match)[puuid]
	if !ok {
		return nil
	}

	var player dto.ScoredParticipant
	for _, s := range score.ScoreAndRank(ToScoreParticipants(match)) {
		if s.Puuid == puuid {
			player = toScoredParticipant(s, raw)
			break
		}
	}

	return &dto.MatchSummary{
		MatchId:          match.Metadata.MatchId,
		QueueId:          match.Info.QueueId,
		QueueName:        queuevalues.QueueName(match.Info.QueueId),
		GameCreation:     match.Info.GameCreation,
		GameDuration:     match.Info.GameDuration,
		GameEndTimestamp: match.Info.GameEndTimestamp,
		Win:              raw.Win,
		Player:           &player,
	}
}

func participantsByPuuid(match *matchfetcher.MatchData) map[string]matchfetcher.MatchParticipant {
	byPuuid := make(map[string]matchfetcher.MatchParticipant, len(match.Info.Participants))
	for _, p := range match.Info.Participants {
		byPuuid[p.Puuid] = p
	}
	return byPuuid
}

func toScoredParticipant(s score.Scored, raw matchfetcher.MatchParticipant) dto.ScoredParticipant {
	riotId := raw.RiotIdGameName
	if raw.RiotIdTagline != "" {
		riotId += "#" + raw.RiotIdTagline
	}

	return dto.ScoredParticipant{
		Puuid:        s.Puuid,
		RiotId:       riotId,
		ChampionId:   s.ChampionId,
		ChampionName: s.ChampionName,
		ChampLevel:   raw.ChampLevel,
		TeamId:       s.TeamId,
		TeamPosition: raw.TeamPosition,
		Win:          s.Win,
		Kills:        s.Kills,
		Deaths:       s.Deaths,
		Assists:      s.Assists,
		GoldEarned:   s.GoldEarned,
		Damage:       s.DamageToChampions,
		VisionScore:  s.VisionScore,
		Cs:           s.TotalMinionsKilled + s.NeutralMinionsKilled,
		Items:        []int{raw.Item0, raw.Item1, raw.Item2, raw.Item3, raw.Item4, raw.Item5},
		Trinket:      raw.Item6,
		Score:        s.Score,
		Rank:         s.Rank,
		Tag:          s.Tag,
	}
}
