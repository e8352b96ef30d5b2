package task

import (
	"context"
	"errors"
	"strings"
	"time"

	"Planzee/internal/domain/shared"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type Service struct {
	Repository Repository
	shared.BaseService
}

func NewService(repo Repository, projectChecker *shared.ProjectCheckerService) *Service {
	return &Service{
		Repository: repo,
		BaseService: shared.BaseService{
			ProjectChecker: projectChecker,
		},
	}
}

type CreateTaskRequest struct {
	ProjectId   ulid.ULID
	Title       string
	Description string
	Assignee    string
	Status      Status
	Priority    Priority
	Deadline    *time.Time
}

type UpdateTaskRequest struct {
	Title       *string
	Description *string
	Assignee    *string
	Status      *Status
	Priority    *Priority
	Deadline    *time.Time
}

func (s *Service) Create(ctx context.Context, req *CreateTaskRequest) (*Task, error) {
	if err := s.EnsureProjectExists(ctx, req.ProjectId); err != nil {
		return nil, err
	}

	now := time.Now()
	t := &Task{
		Id:          pkg.GenerateULIDObject(),
		ProjectId:   req.ProjectId,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Assignee:    strings.TrimSpace(req.Assignee),
		Status:      req.Status,
		Priority:    req.Priority,
		Deadline:    req.Deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.Status == "" {
		t.Status = StatusPending
	}
	if t.Priority == "" {
		t.Priority = PriorityMedium
	}

	if err := validate(t); err != nil {
		return nil, err
	}

	if err := s.Repository.Create(ctx, t); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return t, nil
}

func (s *Service) Update(ctx context.Context, id ulid.ULID, req *UpdateTaskRequest) (*Task, error) {
	t, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		t.Description = strings.TrimSpace(*req.Description)
	}
	if req.Assignee != nil {
		t.Assignee = strings.TrimSpace(*req.Assignee)
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.Deadline != nil {
		t.Deadline = req.Deadline
	}

	if err := validate(t); err != nil {
		return nil, err
	}

	t.UpdatedAt = time.Now()
	if err := s.Repository.Update(ctx, t); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return t, nil
}

func (s *Service) ChangeStatus(ctx context.Context, id ulid.ULID, newStatus Status) (*Task, error) {
	return s.Update(ctx, id, &UpdateTaskRequest{Status: &newStatus})
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, id); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*Task, error) {
	t, err := s.Repository.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrTaskNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return t, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*Task, int64, error) {
	if err := s.EnsureProjectExists(ctx, projectID); err != nil {
		return nil, 0, err
	}
	if filters != nil && filters.Status != nil && !filters.Status.IsValid() {
		return nil, 0, appErrors.NewValidationError("status", "inválido")
	}

	tasks, total, err := s.Repository.ListByProject(ctx, projectID, filters, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return tasks, total, nil
}

func validate(t *Task) error {
	if t.Title == "" {
		return appErrors.NewValidationError("title", "é obrigatório")
	}
	if !t.Status.IsValid() {
		return appErrors.NewValidationError("status", "deve ser pendente, em_andamento, bloqueada ou concluída")
	}
	if !t.Priority.IsValid() {
		return appErrors.NewValidationError("priority", "deve ser baixa, media ou alta")
	}
	return nil
}
