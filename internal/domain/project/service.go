package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"Planzee/internal/domain/status"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type StatusGetter interface {
	GetByID(ctx context.Context, id ulid.ULID) (*status.Status, error)
}

type Service struct {
	Repository Repository
	Statuses   StatusGetter
}

func NewService(repo Repository, statuses StatusGetter) *Service {
	return &Service{Repository: repo, Statuses: statuses}
}

type CreateProjectRequest struct {
	Name               string
	Description        string
	StatusId           *ulid.ULID
	AreaId             *ulid.ULID
	Manager            string
	StartDate          *time.Time
	Deadline           *time.Time
	Progress           *int
	TotalEstimatedCost *float64
}

type UpdateProjectRequest struct {
	Name               *string
	Description        *string
	StatusId           *ulid.ULID
	AreaId             *ulid.ULID
	Manager            *string
	StartDate          *time.Time
	Deadline           *time.Time
	Progress           *int
	TotalEstimatedCost *float64
}

func (s *Service) Create(ctx context.Context, req *CreateProjectRequest) (*Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	statusID := status.DefaultStatusID(status.DefaultStatuses[0].Name)
	if req.StatusId != nil {
		statusID = *req.StatusId
	}
	st, err := s.Statuses.GetByID(ctx, statusID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	p := &Project{
		Id:                 pkg.GenerateULIDObject(),
		Name:               name,
		Description:        strings.TrimSpace(req.Description),
		StatusId:           st.Id,
		StatusName:         st.Name,
		AreaId:             req.AreaId,
		Manager:            strings.TrimSpace(req.Manager),
		StartDate:          req.StartDate,
		Deadline:           req.Deadline,
		Progress:           req.Progress,
		TotalEstimatedCost: req.TotalEstimatedCost,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := validate(p); err != nil {
		return nil, err
	}

	if err := s.Repository.Create(ctx, p); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return p, nil
}

func (s *Service) Update(ctx context.Context, id ulid.ULID, req *UpdateProjectRequest) (*Project, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = strings.TrimSpace(*req.Name)
		if p.Name == "" {
			return nil, appErrors.NewValidationError("name", "é obrigatório")
		}
	}
	if req.Description != nil {
		p.Description = strings.TrimSpace(*req.Description)
	}
	if req.StatusId != nil {
		st, err := s.Statuses.GetByID(ctx, *req.StatusId)
		if err != nil {
			return nil, err
		}
		p.StatusId = st.Id
		p.StatusName = st.Name
	}
	if req.AreaId != nil {
		p.AreaId = req.AreaId
	}
	if req.Manager != nil {
		p.Manager = strings.TrimSpace(*req.Manager)
	}
	if req.StartDate != nil {
		p.StartDate = req.StartDate
	}
	if req.Deadline != nil {
		p.Deadline = req.Deadline
	}
	if req.Progress != nil {
		p.Progress = req.Progress
	}
	if req.TotalEstimatedCost != nil {
		p.TotalEstimatedCost = req.TotalEstimatedCost
	}

	if err := validate(p); err != nil {
		return nil, err
	}

	p.UpdatedAt = time.Now()
	if err := s.Repository.Update(ctx, p); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return p, nil
}

// Delete remove o projeto junto com suas tarefas, orçamentos e análises.
func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, id); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*Project, error) {
	p, err := s.Repository.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrProjectNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, filters *Filters, pagination *pkg.PaginationParams) ([]*Project, int64, error) {
	projects, total, err := s.Repository.List(ctx, filters, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return projects, total, nil
}

func validate(p *Project) error {
	if p.Progress != nil && (*p.Progress < 0 || *p.Progress > 100) {
		return appErrors.NewValidationError("progress", "deve estar entre 0 e 100")
	}
	if p.TotalEstimatedCost != nil && *p.TotalEstimatedCost < 0 {
		return appErrors.NewValidationError("total_estimated_cost", "não pode ser negativo")
	}
	if p.StartDate != nil && p.Deadline != nil && p.Deadline.Before(*p.StartDate) {
		return appErrors.NewValidationError("deadline", "deve ser posterior à data de início")
	}
	return nil
}
