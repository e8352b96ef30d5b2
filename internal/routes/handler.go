package routes

import (
	"net/http"

	"Planzee/internal/domain/budget"
	"Planzee/internal/domain/dashboard"
	"Planzee/internal/domain/healthscore"
	"Planzee/internal/domain/insight"
	"Planzee/internal/domain/project"
	"Planzee/internal/domain/status"
	"Planzee/internal/domain/task"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/logger"
	"Planzee/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

type Handler struct {
	StatusService    *status.Service
	ProjectService   *project.Service
	TaskService      *task.Service
	BudgetService    *budget.Service
	HealthService    *healthscore.Service
	DashboardService *dashboard.Service
	InsightService   *insight.Service
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	return pkg.NewPaginationFromQuery(c.DefaultQuery("page", "1"), c.DefaultQuery("limit", "10"))
}

// parseIDParam lê o parâmetro :id e responde com erro de validação quando não é um ULID.
func (h *Handler) parseIDParam(c *gin.Context, field string) (ulid.ULID, bool) {
	id, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError(field, "formato inválido"))
		return ulid.ULID{}, false
	}
	return id, true
}

func (h *Handler) parseOptionalULID(raw *string, field string) (*ulid.ULID, error) {
	id, err := pkg.ParseULIDPtr(raw)
	if err != nil {
		return nil, appErrors.NewValidationError(field, "formato inválido")
	}
	return id, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Warn()
	if appErr.StatusCode >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event = event.Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
