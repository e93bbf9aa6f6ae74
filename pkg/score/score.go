package score

import "sort"

// Tags assigned to the best player of each side.
const (
	TagMVP      = "MVP"
	TagStandout = "DESTACADO"
)

// Weights of each factor. They sum to 100.
const (
	goldWeight     = 25.0
	kdaWeight      = 20.0
	killPartWeight = 15.0
	damageWeight   = 25.0
	visionWeight   = 10.0
	csWeight       = 5.0
)

// A KDA of 4 or higher maxes the KDA factor.
const kdaCap = 4.0

// Participant holds the per player stats needed for the composite score.
type Participant struct {
	Puuid                string
	ChampionId           int
	ChampionName         string
	TeamId               int
	Win                  bool
	Kills                int
	Deaths               int
	Assists              int
	GoldEarned           int
	DamageToChampions    int
	VisionScore          int
	TotalMinionsKilled   int
	NeutralMinionsKilled int
	TimePlayed           int
}

// Scored is a participant annotated with its composite performance.
type Scored struct {
	Participant
	Score float64
	Rank  int
	Tag   string
}

// cs is the creep score, lane minions plus jungle monsters.
func (p Participant) cs() int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}

// ScoreAndRank computes the weighted composite performance score of every
// participant of a single match, ranks them by score descending and tags the
// top scorer of the winning side as MVP and of the losing side as DESTACADO.
// Pure and deterministic, the input slice is not modified.
func ScoreAndRank(participants []Participant) []Scored {
	if len(participants) == 0 {
		return []Scored{}
	}

	maxGold, maxDamage, maxVision, maxCs := 1, 1, 1, 1
	teamKills := make(map[int]int)
	for _, p := range participants {
		maxGold = max(maxGold, p.GoldEarned)
		maxDamage = max(maxDamage, p.DamageToChampions)
		maxVision = max(maxVision, p.VisionScore)
		maxCs = max(maxCs, p.cs())
		teamKills[p.TeamId] += p.Kills
	}

	scored := make([]Scored, len(participants))
	for i, p := range participants {
		scored[i] = Scored{
			Participant: p,
			Score:       computeScore(p, maxGold, maxDamage, maxVision, maxCs, teamKills[p.TeamId]),
		}
	}

	// Global rank over a stable sort, so equal scores keep the input order.
	byScore := make([]*Scored, len(scored))
	for i := range scored {
		byScore[i] = &scored[i]
	}
	sort.SliceStable(byScore, func(i, j int) bool {
		return byScore[i].Score > byScore[j].Score
	})

	var bestWinner, bestLoser *Scored
	for rank, p := range byScore {
		p.Rank = rank + 1
		if p.Win && bestWinner == nil {
			bestWinner = p
		}
		if !p.Win && bestLoser == nil {
			bestLoser = p
		}
	}

	if bestWinner != nil {
		bestWinner.Tag = TagMVP
	}
	if bestLoser != nil {
		bestLoser.Tag = TagStandout
	}

	result := make([]Scored, len(byScore))
	for i, p := range byScore {
		result[i] = *p
	}
	return result
}

// computeScore applies the weighted formula. Gold, damage, vision and CS are
// normalized against the match maximum, KDA and kill participation against
// fixed caps. All denominators are floored at 1.
func computeScore(p Participant, maxGold, maxDamage, maxVision, maxCs, teamKills int) float64 {
	kda := float64(p.Kills + p.Assists)
	if p.Deaths > 0 {
		kda /= float64(p.Deaths)
	}

	killParticipation := float64(p.Kills+p.Assists) / float64(max(teamKills, 1))

	goldScore := float64(p.GoldEarned) / float64(maxGold) * goldWeight
	kdaScore := min(kda/kdaCap, 1) * kdaWeight
	kpScore := min(killParticipation, 1) * killPartWeight
	damageScore := float64(p.DamageToChampions) / float64(maxDamage) * damageWeight
	visionScore := float64(p.VisionScore) / float64(maxVision) * visionWeight
	csScore := float64(p.cs()) / float64(maxCs) * csWeight

	return goldScore + kdaScore + kpScore + damageScore + visionScore + csScore
}
