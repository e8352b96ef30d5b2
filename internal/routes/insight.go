package routes

import (
	"net/http"

	"Planzee/internal/contracts"
	"Planzee/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateInsight(c *gin.Context) {
	projectID, ok := h.parseIDParam(c, "project_id")
	if !ok {
		return
	}

	in, err := h.InsightService.Analyze(c.Request.Context(), projectID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.InsightCreateResponse{
		Message: "Análise gerada com sucesso",
		Insight: in,
	})
}

func (h *Handler) ListInsights(c *gin.Context) {
	projectID, ok := h.parseIDParam(c, "project_id")
	if !ok {
		return
	}

	pagination := h.parsePagination(c)
	insights, total, err := h.InsightService.ListByProject(c.Request.Context(), projectID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(insights, pagination, total))
}
