package dto

// LeaderboardEntry is one row of the top ladder.
type LeaderboardEntry struct {
	Position     int     `json:"position"`
	Puuid        string  `json:"puuid"`
	Tier         string  `json:"tier"`
	TierName     string  `json:"tierName"`
	LeaguePoints int     `json:"leaguePoints"`
	Wins         int     `json:"wins"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"winRate"`
	HotStreak    bool    `json:"hotStreak"`
}

// Leaderboard is the combined apex ladder for one queue.
type Leaderboard struct {
	Queue   string             `json:"queue"`
	Region  string             `json:"region"`
	Entries []LeaderboardEntry `json:"entries"`
}
