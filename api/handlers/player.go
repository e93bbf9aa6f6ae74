package handlers

import (
	"net/http"

	"legendstats/api/filters"
	"legendstats/api/services"
	"legendstats/pkg/messages"
	"legendstats/pkg/regions"

	"github.com/gin-gonic/gin"
)

// Player handler with the profile and search services.
type PlayerHandler struct {
	profileService *services.ProfileService
	searchService  *services.SearchService
}

type PlayerHandlerDependencies struct {
	ProfileService *services.ProfileService
	SearchService  *services.SearchService
}

// Create a new instance of the player handler.
func NewPlayerHandler(deps *PlayerHandlerDependencies) *PlayerHandler {
	return &PlayerHandler{
		profileService: deps.ProfileService,
		searchService:  deps.SearchService,
	}
}

// Handler for getting the full player profile.
func (h *PlayerHandler) GetProfile(c *gin.Context) {
	platform, ok := platformParam(c)
	if !ok {
		return
	}

	gameName := c.Param("gameName")
	tagLine := c.Param("tagLine")
	if gameName == "" || tagLine == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "se requiere el Riot ID completo"})
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), platform, gameName, tagLine)
	if err != nil {
		if err.Error() == messages.CouldNotFindPlayer {
			c.JSON(http.StatusNotFound, gin.H{"error": "jugador no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Handler for the summoner prefix search.
func (h *PlayerHandler) Search(c *gin.Context) {
	var qp filters.PlayerSearchParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.searchService.Search(qp.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

// platformParam validates the region path parameter.
func platformParam(c *gin.Context) (regions.Platform, bool) {
	platform := regions.Platform(c.Param("region"))
	if !regions.IsValid(platform) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "región inválida"})
		return "", false
	}
	return platform, true
}
