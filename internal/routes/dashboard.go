package routes

import (
	"net/http"
	"time"

	appErrors "Planzee/internal/errors"
	"Planzee/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetPortfolioHealth(c *gin.Context) {
	filters, err := h.parseProjectFilters(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	portfolio, err := h.DashboardService.GetPortfolio(c.Request.Context(), filters)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, portfolio)
}

// GetTimeline usa o ano corrente quando from ou to não são informados.
func (h *Handler) GetTimeline(c *gin.Context) {
	today := h.HealthService.Clock.Today()
	from := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)

	if raw := c.Query("from"); raw != "" {
		parsed, err := pkg.ParseDate(raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("from", "data inválida"))
			return
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := pkg.ParseDate(raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("to", "data inválida"))
			return
		}
		to = parsed
	}

	timeline, err := h.DashboardService.GetTimeline(c.Request.Context(), from, to)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, timeline)
}
