package handlers

import (
	"net/http"

	"legendstats/api/filters"
	"legendstats/api/services"

	"github.com/gin-gonic/gin"
)

// Patch note handler with it's service.
type PatchHandler struct {
	patchService *services.PatchService
}

type PatchHandlerDependencies struct {
	PatchService *services.PatchService
}

// Create a new instance of the patch handler.
func NewPatchHandler(deps *PatchHandlerDependencies) *PatchHandler {
	return &PatchHandler{
		patchService: deps.PatchService,
	}
}

// Handler for listing the patch notes.
func (h *PatchHandler) ListPatchNotes(c *gin.Context) {
	var qp filters.PatchListParams
	if err := c.ShouldBindQuery(&qp); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	notes, err := h.patchService.ListPatchNotes(qp.Limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"patches": notes})
}

// Handler for a single patch note.
func (h *PatchHandler) GetPatchNote(c *gin.Context) {
	version := c.Param("version")

	note, err := h.patchService.GetPatchNote(version)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if note == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "versión no encontrada"})
		return
	}

	c.JSON(http.StatusOK, note)
}
