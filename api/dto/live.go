package dto

// LiveParticipant is one player of a live game.
type LiveParticipant struct {
	Puuid        string `json:"puuid"`
	RiotId       string `json:"riotId"`
	TeamId       int    `json:"teamId"`
	ChampionId   int    `json:"championId"`
	ChampionName string `json:"championName"`
	Spell1Id     int    `json:"spell1Id"`
	Spell2Id     int    `json:"spell2Id"`
	Bot          bool   `json:"bot"`
}

// LiveBan is one banned champion of a live game.
type LiveBan struct {
	ChampionId   int    `json:"championId"`
	ChampionName string `json:"championName"`
	TeamId       int    `json:"teamId"`
	PickTurn     int    `json:"pickTurn"`
}

// LiveGame is the spectator view of a game in progress.
type LiveGame struct {
	GameId        int64             `json:"gameId"`
	QueueId       int               `json:"queueId"`
	QueueName     string            `json:"queueName"`
	GameStartTime int64             `json:"gameStartTime"`
	GameLength    int64             `json:"gameLength"`
	Participants  []LiveParticipant `json:"participants"`
	Bans          []LiveBan         `json:"bans"`
}
