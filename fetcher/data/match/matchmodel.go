package matchfetcher

// Return type from the match_v5 endpoint.
type MatchData struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchId string `json:"matchId"`
}

// MatchInfo holds the relevant match level data.
// Timestamps come as unix milliseconds.
type MatchInfo struct {
	GameCreation     int64              `json:"gameCreation"`
	GameDuration     int64              `json:"gameDuration"`
	GameEndTimestamp int64              `json:"gameEndTimestamp"`
	GameMode         string             `json:"gameMode"`
	GameVersion      string             `json:"gameVersion"`
	QueueId          int                `json:"queueId"`
	Participants     []MatchParticipant `json:"participants"`
	Teams            []MatchTeam        `json:"teams"`
}

// MatchParticipant holds the per player stats used across the site.
type MatchParticipant struct {
	Puuid                       string `json:"puuid"`
	RiotIdGameName              string `json:"riotIdGameName"`
	RiotIdTagline               string `json:"riotIdTagline"`
	ChampionId                  int    `json:"championId"`
	ChampionName                string `json:"championName"`
	ChampLevel                  int    `json:"champLevel"`
	TeamId                      int    `json:"teamId"`
	TeamPosition                string `json:"teamPosition"`
	Win                         bool   `json:"win"`
	Kills                       int    `json:"kills"`
	Deaths                      int    `json:"deaths"`
	Assists                     int    `json:"assists"`
	GoldEarned                  int    `json:"goldEarned"`
	TotalDamageDealtToChampions int    `json:"totalDamageDealtToChampions"`
	VisionScore                 int    `json:"visionScore"`
	TotalMinionsKilled          int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int    `json:"neutralMinionsKilled"`
	TimePlayed                  int    `json:"timePlayed"`
	ProfileIcon                 int    `json:"profileIcon"`
	SummonerSpell1              int    `json:"summoner1Id"`
	SummonerSpell2              int    `json:"summoner2Id"`
	Item0                       int    `json:"item0"`
	Item1                       int    `json:"item1"`
	Item2                       int    `json:"item2"`
	Item3                       int    `json:"item3"`
	Item4                       int    `json:"item4"`
	Item5                       int    `json:"item5"`
	Item6                       int    `json:"item6"`
}

type MatchTeam struct {
	TeamId int  `json:"teamId"`
	Win    bool `json:"win"`
}
