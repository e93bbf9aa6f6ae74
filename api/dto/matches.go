package dto

// ScoredParticipant is one participant with it's computed performance.
type ScoredParticipant struct {
	Puuid        string  `json:"puuid"`
	RiotId       string  `json:"riotId"`
	ChampionId   int     `json:"championId"`
	ChampionName string  `json:"championName"`
	ChampLevel   int     `json:"champLevel"`
	TeamId       int     `json:"teamId"`
	TeamPosition string  `json:"teamPosition"`
	Win          bool    `json:"win"`
	Kills        int     `json:"kills"`
	Deaths       int     `json:"deaths"`
	Assists      int     `json:"assists"`
	GoldEarned   int     `json:"goldEarned"`
	Damage       int     `json:"damageToChampions"`
	VisionScore  int     `json:"visionScore"`
	Cs           int     `json:"cs"`
	Items        []int   `json:"items"`
	Trinket      int     `json:"trinket"`
	Score        float64 `json:"score"`
	Rank         int     `json:"rank"`
	Tag          string  `json:"tag,omitempty"`
}

// MatchSummary is one row of the match history.
type MatchSummary struct {
	MatchId          string             `json:"matchId"`
	QueueId          int                `json:"queueId"`
	QueueName        string             `json:"queueName"`
	GameCreation     int64              `json:"gameCreation"`
	GameDuration     int64              `json:"gameDuration"`
	GameEndTimestamp int64              `json:"gameEndTimestamp"`
	Win              bool               `json:"win"`
	LpDelta          *int               `json:"lpDelta,omitempty"`
	Player           *ScoredParticipant `json:"player"`
}

// MatchDetail is the full scored view of a single match.
type MatchDetail struct {
	MatchId      string              `json:"matchId"`
	QueueId      int                 `json:"queueId"`
	QueueName    string              `json:"queueName"`
	GameCreation int64               `json:"gameCreation"`
	GameDuration int64               `json:"gameDuration"`
	GameVersion  string              `json:"gameVersion"`
	Participants []ScoredParticipant `json:"participants"`
}
