package contracts

import "Planzee/internal/domain/status"

type StatusCreateRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Color     string `json:"color" binding:"omitempty,hexcolor"`
	SortOrder int    `json:"sort_order" binding:"omitempty,min=0"`
	IsFinal   bool   `json:"is_final"`
}

type StatusUpdateRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=100"`
	Color     *string `json:"color" binding:"omitempty,hexcolor"`
	SortOrder *int    `json:"sort_order" binding:"omitempty,min=0"`
	IsFinal   *bool   `json:"is_final"`
}

type StatusListResponse struct {
	Statuses []*status.Status `json:"statuses"`
}
