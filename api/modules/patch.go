package modules

import (
	"legendstats/api/handlers"
	"legendstats/api/repositories"
	"legendstats/api/services"
)

func initializePatchHandler(deps *ModuleDependencies) *handlers.PatchHandler {
	patchService := services.NewPatchService(&services.PatchServiceDeps{
		PatchNotes: repositories.NewPatchNoteRepository(deps.DB),
	})

	return handlers.NewPatchHandler(&handlers.PatchHandlerDependencies{
		PatchService: patchService,
	})
}
