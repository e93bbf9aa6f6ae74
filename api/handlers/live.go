package handlers

import (
	"errors"
	"net/http"

	"legendstats/api/services"
	spectatorfetcher "legendstats/fetcher/data/spectator"

	"github.com/gin-gonic/gin"
)

// Live game handler with it's service.
type LiveHandler struct {
	liveService *services.LiveService
}

type LiveHandlerDependencies struct {
	LiveService *services.LiveService
}

// Create a new instance of the live handler.
func NewLiveHandler(deps *LiveHandlerDependencies) *LiveHandler {
	return &LiveHandler{
		liveService: deps.LiveService,
	}
}

// Handler for the current game of a player.
func (h *LiveHandler) GetLiveGame(c *gin.Context) {
	platform, ok := platformParam(c)
	if !ok {
		return
	}

	puuid := c.Param("puuid")
	if puuid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "puuid es requerido"})
		return
	}

	game, err := h.liveService.GetLiveGame(c.Request.Context(), platform, puuid)
	if err != nil {
		if errors.Is(err, spectatorfetcher.ErrNotInGame) {
			c.JSON(http.StatusNotFound, gin.H{"error": "el jugador no está en partida"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, game)
}
