package handlers

import (
	"net/http"

	"legendstats/api/filters"
	"legendstats/api/services"

	"github.com/gin-gonic/gin"
)

// Leaderboard handler with it's service.
type LeaderboardHandler struct {
	leaderboardService *services.LeaderboardService
}

type LeaderboardHandlerDependencies struct {
	LeaderboardService *services.LeaderboardService
}

// Create a new instance of the leaderboard handler.
func NewLeaderboardHandler(deps *LeaderboardHandlerDependencies) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: deps.LeaderboardService,
	}
}

// Handler for the apex ladder of a region.
func (h *LeaderboardHandler) GetLeaderboard(c *gin.Context) {
	platform, ok := platformParam(c)
	if !ok {
		return
	}

	var qp filters.LeaderboardParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	board, err := h.leaderboardService.GetLeaderboard(c.Request.Context(), platform, qp.Queue)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, board)
}
