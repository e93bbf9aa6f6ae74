package modules

import (
	"legendstats/api/handlers"
	"legendstats/api/repositories"
	"legendstats/api/services"
)

func initializePlayerHandler(deps *ModuleDependencies) *handlers.PlayerHandler {
	profileService := services.NewProfileService(&services.ProfileServiceDeps{
		Riot:      deps.Riot,
		Snapshots: repositories.NewSnapshotRepository(deps.DB),
		Summoners: repositories.NewSummonerRepository(deps.DB),
	})

	searchService := services.NewSearchService(&services.SearchServiceDeps{
		Summoners: repositories.NewSummonerRepository(deps.DB),
	})

	return handlers.NewPlayerHandler(&handlers.PlayerHandlerDependencies{
		ProfileService: profileService,
		SearchService:  searchService,
	})
}
