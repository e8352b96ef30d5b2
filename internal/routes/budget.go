package routes

import (
	"net/http"

	"Planzee/internal/contracts"
	"Planzee/internal/domain/budget"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateBudget(c *gin.Context) {
	projectID, ok := h.parseIDParam(c, "project_id")
	if !ok {
		return
	}

	var body contracts.BudgetCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	b, err := h.BudgetService.CreateBudget(c.Request.Context(), &budget.CreateBudgetRequest{
		ProjectId:   projectID,
		Description: body.Description,
		Category:    body.Category,
		TotalValue:  body.TotalValue,
		SpentValue:  body.SpentValue,
		AlertAt:     body.AlertAt,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.BudgetCreateResponse{
		Message: "Orçamento criado com sucesso",
		Budget:  b,
	})
}

func (h *Handler) ListProjectBudgets(c *gin.Context) {
	projectID, ok := h.parseIDParam(c, "project_id")
	if !ok {
		return
	}

	pagination := h.parsePagination(c)
	budgets, total, err := h.BudgetService.ListBudgets(c.Request.Context(), projectID, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	items := make([]*contracts.BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		items = append(items, contracts.NewBudgetResponse(b))
	}
	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(items, pagination, total))
}

func (h *Handler) GetBudgetSummary(c *gin.Context) {
	projectID, ok := h.parseIDParam(c, "project_id")
	if !ok {
		return
	}

	summary, err := h.BudgetService.GetProjectSummary(c.Request.Context(), projectID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.BudgetSummaryResponse{Summary: summary})
}

func (h *Handler) GetBudgetStatus(c *gin.Context) {
	id, ok := h.parseIDParam(c, "budget_id")
	if !ok {
		return
	}

	st, err := h.BudgetService.GetBudgetStatus(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *Handler) UpdateBudget(c *gin.Context) {
	id, ok := h.parseIDParam(c, "budget_id")
	if !ok {
		return
	}

	var body contracts.BudgetUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	b, err := h.BudgetService.UpdateBudget(c.Request.Context(), id, &budget.UpdateBudgetRequest{
		Description: body.Description,
		Category:    body.Category,
		TotalValue:  body.TotalValue,
		SpentValue:  body.SpentValue,
		AlertAt:     body.AlertAt,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Orçamento atualizado com sucesso",
		"budget":  contracts.NewBudgetResponse(b),
	})
}

func (h *Handler) DeleteBudget(c *gin.Context) {
	id, ok := h.parseIDParam(c, "budget_id")
	if !ok {
		return
	}

	if err := h.BudgetService.DeleteBudget(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Orçamento removido com sucesso"})
}
