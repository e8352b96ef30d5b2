package routes

import (
	"net/http"
	"strings"

	"Planzee/internal/contracts"
	"Planzee/internal/domain/task"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/pkg"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateTask(c *gin.Context) {
	projectID, ok := h.parseIDParam(c, "project_id")
	if !ok {
		return
	}

	var body contracts.TaskCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	deadline, err := pkg.ParseDatePtr(body.Deadline)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("deadline", "data inválida"))
		return
	}

	t, err := h.TaskService.Create(c.Request.Context(), &task.CreateTaskRequest{
		ProjectId:   projectID,
		Title:       body.Title,
		Description: body.Description,
		Assignee:    body.Assignee,
		Status:      task.Status(body.Status),
		Priority:    task.Priority(body.Priority),
		Deadline:    deadline,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TaskCreateResponse{
		Message: "Tarefa criada com sucesso",
		Task:    t,
	})
}

func (h *Handler) ListProjectTasks(c *gin.Context) {
	projectID, ok := h.parseIDParam(c, "project_id")
	if !ok {
		return
	}

	filters := &task.Filters{}
	if raw := c.Query("status"); raw != "" {
		st := task.Status(raw)
		filters.Status = &st
	}
	if assignee := strings.TrimSpace(c.Query("assignee")); assignee != "" {
		filters.Assignee = &assignee
	}

	pagination := h.parsePagination(c)
	tasks, total, err := h.TaskService.ListByProject(c.Request.Context(), projectID, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(tasks, pagination, total))
}

func (h *Handler) UpdateTask(c *gin.Context) {
	id, ok := h.parseIDParam(c, "task_id")
	if !ok {
		return
	}

	var body contracts.TaskUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	deadline, err := pkg.ParseDatePtr(body.Deadline)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("deadline", "data inválida"))
		return
	}

	req := &task.UpdateTaskRequest{
		Title:       body.Title,
		Description: body.Description,
		Assignee:    body.Assignee,
		Deadline:    deadline,
	}
	if body.Status != nil {
		st := task.Status(*body.Status)
		req.Status = &st
	}
	if body.Priority != nil {
		pr := task.Priority(*body.Priority)
		req.Priority = &pr
	}

	t, err := h.TaskService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tarefa atualizada com sucesso",
		"task":    t,
	})
}

func (h *Handler) ChangeTaskStatus(c *gin.Context) {
	id, ok := h.parseIDParam(c, "task_id")
	if !ok {
		return
	}

	var body contracts.TaskStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	t, err := h.TaskService.ChangeStatus(c.Request.Context(), id, task.Status(body.Status))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.TaskSingleResponse{Task: t})
}

func (h *Handler) DeleteTask(c *gin.Context) {
	id, ok := h.parseIDParam(c, "task_id")
	if !ok {
		return
	}

	if err := h.TaskService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tarefa removida com sucesso"})
}
