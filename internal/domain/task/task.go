package task

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Status string

const (
	StatusPending    Status = "pendente"
	StatusInProgress Status = "em_andamento"
	StatusBlocked    Status = "bloqueada"
	StatusCompleted  Status = "concluída"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusBlocked, StatusCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "baixa"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

type Task struct {
	Id          ulid.ULID  `json:"id"`
	ProjectId   ulid.ULID  `json:"projectId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Assignee    string     `json:"assignee"`
	Status      Status     `json:"status"`
	Priority    Priority   `json:"priority"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (t *Task) IsBlocked() bool {
	return t.Status == StatusBlocked
}

func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

type Filters struct {
	Status   *Status
	Assignee *string
}
