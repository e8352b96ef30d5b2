package routes

import (
	"net/http"

	"Planzee/internal/contracts"
	"Planzee/internal/domain/healthscore"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetProjectHealth(c *gin.Context) {
	projectID, ok := h.parseIDParam(c, "project_id")
	if !ok {
		return
	}

	health, err := h.HealthService.EvaluateProject(c.Request.Context(), projectID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetHealthLevels(c *gin.Context) {
	c.JSON(http.StatusOK, contracts.HealthLevelsResponse{Levels: healthscore.LevelRanges})
}
