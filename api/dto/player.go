package dto

// RankedEntry is one queue rank on the profile.
type RankedEntry struct {
	QueueType    string  `json:"queueType"`
	QueueName    string  `json:"queueName"`
	Tier         string  `json:"tier"`
	TierName     string  `json:"tierName"`
	Division     string  `json:"division"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"winRate"`
}

// Profile is the full player profile response.
type Profile struct {
	Puuid         string        `json:"puuid"`
	GameName      string        `json:"gameName"`
	TagLine       string        `json:"tagLine"`
	Region        string        `json:"region"`
	ProfileIconId int           `json:"profileIconId"`
	SummonerLevel int           `json:"summonerLevel"`
	Ranks         []RankedEntry `json:"ranks"`
}

// SearchResult is one row of the summoner prefix search.
type SearchResult struct {
	Puuid       string `json:"puuid"`
	Region      string `json:"region"`
	RiotId      string `json:"riotId"`
	ProfileIcon int    `json:"profileIcon"`
}
