package modules

import (
	"legendstats/api/handlers"
	"legendstats/api/repositories"
	"legendstats/api/services"
)

func initializeMatchHandler(deps *ModuleDependencies) *handlers.MatchHandler {
	matchService := services.NewMatchService(&services.MatchServiceDeps{
		Riot:       deps.Riot,
		MatchCache: repositories.NewMatchCacheRepository(deps.DB),
		Snapshots:  repositories.NewSnapshotRepository(deps.DB),
	})

	return handlers.NewMatchHandler(&handlers.MatchHandlerDependencies{
		MatchService: matchService,
	})
}
