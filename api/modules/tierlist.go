package modules

import (
	"legendstats/api/handlers"
	"legendstats/api/repositories"
	"legendstats/api/services"
)

func initializeTierlistHandler(deps *ModuleDependencies) *handlers.TierlistHandler {
	tierlistService := services.NewTierlistService(&services.TierlistServiceDeps{
		MemCache:  deps.MemCache,
		Redis:     deps.Redis,
		Blobs:     repositories.NewBlobCacheRepository(deps.DB),
		Analytics: deps.Analytics,
	})

	return handlers.NewTierlistHandler(&handlers.TierlistHandlerDependencies{
		TierlistService: tierlistService,
	})
}
