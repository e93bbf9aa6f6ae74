package handlers

import (
	"errors"
	"net/http"

	"legendstats/api/filters"
	"legendstats/api/services"

	"github.com/gin-gonic/gin"
)

// Tier list handler with it's service.
type TierlistHandler struct {
	tierlistService *services.TierlistService
}

type TierlistHandlerDependencies struct {
	TierlistService *services.TierlistService
}

// Create a new instance of the tierlist handler.
func NewTierlistHandler(deps *TierlistHandlerDependencies) *TierlistHandler {
	return &TierlistHandler{
		tierlistService: deps.TierlistService,
	}
}

// Handler for getting the tierlist.
func (h *TierlistHandler) GetTierlist(c *gin.Context) {
	var qp filters.TierlistParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.tierlistService.GetTierlist(c.Request.Context(), qp.Bracket())
	if err != nil {
		if errors.Is(err, services.ErrInvalidBracket) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "rango inválido"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
