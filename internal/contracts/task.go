package contracts

import "Planzee/internal/domain/task"

type TaskCreateRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description"`
	Assignee    string  `json:"assignee" binding:"omitempty,max=150"`
	Status      string  `json:"status" binding:"omitempty,oneof=pendente em_andamento bloqueada concluída"`
	Priority    string  `json:"priority" binding:"omitempty,oneof=baixa media alta"`
	Deadline    *string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

type TaskUpdateRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	Assignee    *string `json:"assignee" binding:"omitempty,max=150"`
	Status      *string `json:"status" binding:"omitempty,oneof=pendente em_andamento bloqueada concluída"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=baixa media alta"`
	Deadline    *string `json:"deadline" binding:"omitempty,datetime=2006-01-02"`
}

type TaskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pendente em_andamento bloqueada concluída"`
}

type TaskCreateResponse struct {
	Message string     `json:"message"`
	Task    *task.Task `json:"task"`
}

type TaskSingleResponse struct {
	Task *task.Task `json:"task"`
}
