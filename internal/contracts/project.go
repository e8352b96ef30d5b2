package contracts

import "Planzee/internal/domain/project"

type ProjectCreateRequest struct {
	Name               string   `json:"name" binding:"required,max=200"`
	Description        string   `json:"description"`
	StatusId           *string  `json:"status_id"`
	AreaId             *string  `json:"area_id"`
	Manager            string   `json:"manager" binding:"omitempty,max=150"`
	StartDate          *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	Deadline           *string  `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Progress           *int     `json:"progress" binding:"omitempty,min=0,max=100"`
	TotalEstimatedCost *float64 `json:"total_estimated_cost" binding:"omitempty,min=0"`
}

type ProjectUpdateRequest struct {
	Name               *string  `json:"name" binding:"omitempty,max=200"`
	Description        *string  `json:"description"`
	StatusId           *string  `json:"status_id"`
	AreaId             *string  `json:"area_id"`
	Manager            *string  `json:"manager" binding:"omitempty,max=150"`
	StartDate          *string  `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	Deadline           *string  `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
	Progress           *int     `json:"progress" binding:"omitempty,min=0,max=100"`
	TotalEstimatedCost *float64 `json:"total_estimated_cost" binding:"omitempty,min=0"`
}

type ProjectCreateResponse struct {
	Message string           `json:"message"`
	Project *project.Project `json:"project"`
}

type ProjectSingleResponse struct {
	Project *project.Project `json:"project"`
}
