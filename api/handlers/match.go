package handlers

import (
	"net/http"

	"legendstats/api/filters"
	"legendstats/api/services"

	"github.com/gin-gonic/gin"
)

// Match handler with it's service.
type MatchHandler struct {
	matchService *services.MatchService
}

type MatchHandlerDependencies struct {
	MatchService *services.MatchService
}

// Create a new instance of the match handler.
func NewMatchHandler(deps *MatchHandlerDependencies) *MatchHandler {
	return &MatchHandler{
		matchService: deps.MatchService,
	}
}

// Handler for the match history of a player.
func (h *MatchHandler) GetHistory(c *gin.Context) {
	platform, ok := platformParam(c)
	if !ok {
		return
	}

	puuid := c.Param("puuid")
	if puuid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "puuid es requerido"})
		return
	}

	var qp filters.MatchHistoryParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	history, err := h.matchService.GetHistory(c.Request.Context(), platform, puuid, qp)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"matches": history})
}

// Handler for the full scored view of a single match.
func (h *MatchHandler) GetMatch(c *gin.Context) {
	platform, ok := platformParam(c)
	if !ok {
		return
	}

	matchId := c.Param("matchId")
	if matchId == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "matchId es requerido"})
		return
	}

	detail, err := h.matchService.GetMatch(c.Request.Context(), platform, matchId)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, detail)
}
