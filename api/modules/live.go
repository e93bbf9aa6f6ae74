package modules

import (
	"legendstats/api/handlers"
	"legendstats/api/services"
)

func initializeLiveHandler(deps *ModuleDependencies) *handlers.LiveHandler {
	liveService := services.NewLiveService(&services.LiveServiceDeps{
		Riot:   deps.Riot,
		Assets: deps.Assets,
	})

	return handlers.NewLiveHandler(&handlers.LiveHandlerDependencies{
		LiveService: liveService,
	})
}

func initializeLeaderboardHandler(deps *ModuleDependencies) *handlers.LeaderboardHandler {
	leaderboardService := services.NewLeaderboardService(&services.LeaderboardServiceDeps{
		Riot:     deps.Riot,
		MemCache: deps.MemCache,
	})

	return handlers.NewLeaderboardHandler(&handlers.LeaderboardHandlerDependencies{
		LeaderboardService: leaderboardService,
	})
}
