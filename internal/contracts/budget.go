package contracts

import "Planzee/internal/domain/budget"

type BudgetCreateRequest struct {
	Description string  `json:"description" binding:"required,max=200"`
	Category    string  `json:"category" binding:"omitempty,max=100"`
	TotalValue  float64 `json:"total_value" binding:"required,gt=0"`
	SpentValue  float64 `json:"spent_value" binding:"omitempty,min=0"`
	AlertAt     float64 `json:"alert_at" binding:"omitempty,min=0,max=100"`
}

type BudgetUpdateRequest struct {
	Description *string  `json:"description" binding:"omitempty,max=200"`
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	TotalValue  *float64 `json:"total_value" binding:"omitempty,gt=0"`
	SpentValue  *float64 `json:"spent_value" binding:"omitempty,min=0"`
	AlertAt     *float64 `json:"alert_at" binding:"omitempty,min=0,max=100"`
}

type BudgetCreateResponse struct {
	Message string         `json:"message"`
	Budget  *budget.Budget `json:"budget"`
}

type BudgetResponse struct {
	*budget.Budget
	Percentage float64 `json:"percentage"`
	Remaining  float64 `json:"remaining"`
	Status     string  `json:"status"`
}

func NewBudgetResponse(b *budget.Budget) *BudgetResponse {
	return &BudgetResponse{
		Budget:     b,
		Percentage: b.GetPercentage(),
		Remaining:  b.GetRemaining(),
		Status:     b.GetStatus(),
	}
}

type BudgetSummaryResponse struct {
	Summary *budget.Summary `json:"summary"`
}
