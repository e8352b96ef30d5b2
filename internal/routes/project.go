package routes

import (
	"net/http"
	"strings"

	"Planzee/internal/contracts"
	"Planzee/internal/domain/project"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateProject(c *gin.Context) {
	var body contracts.ProjectCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	statusID, err := h.parseOptionalULID(body.StatusId, "status_id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	areaID, err := h.parseOptionalULID(body.AreaId, "area_id")
	if err != nil {
		h.respondError(c, err)
		return
	}
	startDate, err := pkg.ParseDatePtr(body.StartDate)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("start_date", "data inválida"))
		return
	}
	deadline, err := pkg.ParseDatePtr(body.Deadline)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("deadline", "data inválida"))
		return
	}

	p, err := h.ProjectService.Create(c.Request.Context(), &project.CreateProjectRequest{
		Name:               body.Name,
		Description:        body.Description,
		StatusId:           statusID,
		AreaId:             areaID,
		Manager:            body.Manager,
		StartDate:          startDate,
		Deadline:           deadline,
		Progress:           body.Progress,
		TotalEstimatedCost: body.TotalEstimatedCost,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.ProjectCreateResponse{
		Message: "Projeto criado com sucesso",
		Project: p,
	})
}

func (h *Handler) ListProjects(c *gin.Context) {
	filters, err := h.parseProjectFilters(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)
	projects, total, err := h.ProjectService.List(c.Request.Context(), filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(projects, pagination, total))
}

func (h *Handler) GetProject(c *gin.Context) {
	id, ok := h.parseIDParam(c, "project_id")
	if !ok {
		return
	}

	p, err := h.ProjectService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.ProjectSingleResponse{Project: p})
}

func (h *Handler) UpdateProject(c *gin.Context) {
	id, ok := h.parseIDParam(c, "project_id")
	if !ok {
		return
	}

	var body contracts.ProjectUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	req := &project.UpdateProjectRequest{
		Name:               body.Name,
		Description:        body.Description,
		Manager:            body.Manager,
		Progress:           body.Progress,
		TotalEstimatedCost: body.TotalEstimatedCost,
	}

	var err error
	if req.StatusId, err = h.parseOptionalULID(body.StatusId, "status_id"); err != nil {
		h.respondError(c, err)
		return
	}
	if req.AreaId, err = h.parseOptionalULID(body.AreaId, "area_id"); err != nil {
		h.respondError(c, err)
		return
	}
	if req.StartDate, err = pkg.ParseDatePtr(body.StartDate); err != nil {
		h.respondError(c, appErrors.NewValidationError("start_date", "data inválida"))
		return
	}
	if req.Deadline, err = pkg.ParseDatePtr(body.Deadline); err != nil {
		h.respondError(c, appErrors.NewValidationError("deadline", "data inválida"))
		return
	}

	p, err := h.ProjectService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Projeto atualizado com sucesso",
		"project": p,
	})
}

func (h *Handler) DeleteProject(c *gin.Context) {
	id, ok := h.parseIDParam(c, "project_id")
	if !ok {
		return
	}

	if err := h.ProjectService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Projeto removido com sucesso"})
}

func (h *Handler) parseProjectFilters(c *gin.Context) (*project.Filters, error) {
	filters := &project.Filters{}

	if raw := c.Query("status_id"); raw != "" {
		id, err := h.parseOptionalULID(&raw, "status_id")
		if err != nil {
			return nil, err
		}
		filters.StatusId = id
	}
	if raw := c.Query("area_id"); raw != "" {
		id, err := h.parseOptionalULID(&raw, "area_id")
		if err != nil {
			return nil, err
		}
		filters.AreaId = id
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		filters.Search = &search
	}

	return filters, nil
}
