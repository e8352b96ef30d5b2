package routes

import (
	"net/http"

	"Planzee/internal/contracts"
	"Planzee/internal/domain/status"
	appErrors "Planzee/internal/errors"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListStatuses(c *gin.Context) {
	statuses, err := h.StatusService.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contracts.StatusListResponse{Statuses: statuses})
}

func (h *Handler) CreateStatus(c *gin.Context) {
	var body contracts.StatusCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	s, err := h.StatusService.Create(c.Request.Context(), &status.CreateStatusRequest{
		Name:      body.Name,
		Color:     body.Color,
		SortOrder: body.SortOrder,
		IsFinal:   body.IsFinal,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Status criado com sucesso",
		"status":  s,
	})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := h.parseIDParam(c, "status_id")
	if !ok {
		return
	}

	var body contracts.StatusUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	s, err := h.StatusService.Update(c.Request.Context(), id, &status.UpdateStatusRequest{
		Name:      body.Name,
		Color:     body.Color,
		SortOrder: body.SortOrder,
		IsFinal:   body.IsFinal,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status atualizado com sucesso",
		"status":  s,
	})
}

func (h *Handler) DeleteStatus(c *gin.Context) {
	id, ok := h.parseIDParam(c, "status_id")
	if !ok {
		return
	}

	if err := h.StatusService.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status removido com sucesso"})
}
