package filters

// Query parameters for the summoner prefix search.
type PlayerSearchParams struct {
	Query string `form:"q" binding:"required,min=2"`
}

// Query parameters for the leaderboard.
type LeaderboardParams struct {
	Queue string `form:"queue,default=RANKED_SOLO_5x5" binding:"omitempty,oneof=RANKED_SOLO_5x5 RANKED_FLEX_SR"`
}

// Query parameters for the patch note listing.
type PatchListParams struct {
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=50"`
}
