package budget

import (
	"context"
	"errors"
	"math"
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

type CreateBudgetRequest struct {
	ProjectId   ulid.ULID
	Description string
	Category    string
	TotalValue  float64
	SpentValue  float64
	AlertAt     float64
}

type UpdateBudgetRequest struct {
	Description *string
	Category    *string
	TotalValue  *float64
	SpentValue  *float64
	AlertAt     *float64
}

type StatusResponse struct {
	BudgetId   ulid.ULID `json:"budgetId"`
	TotalValue float64   `json:"totalValue"`
	SpentValue float64   `json:"spentValue"`
	Remaining  float64   `json:"remaining"`
	Percentage float64   `json:"percentage"`
	Status     string    `json:"status"`
	AlertAt    float64   `json:"alertAt"`
}

func (s *Service) CreateBudget(ctx context.Context, req *CreateBudgetRequest) (*Budget, error) {
	if err := s.EnsureProjectExists(ctx, req.ProjectId); err != nil {
		return nil, err
	}

	now := time.Now()
	b := &Budget{
		Id:          pkg.GenerateULIDObject(),
		ProjectId:   req.ProjectId,
		Description: strings.TrimSpace(req.Description),
		Category:    strings.TrimSpace(req.Category),
		TotalValue:  req.TotalValue,
		SpentValue:  req.SpentValue,
		AlertAt:     req.AlertAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if b.AlertAt <= 0 {
		b.AlertAt = DefaultAlertAt
	}

	if err := validate(b); err != nil {
		return nil, err
	}

	if err := s.Repository.Create(ctx, b); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return b, nil
}

func (s *Service) UpdateBudget(ctx context.Context, id ulid.ULID, req *UpdateBudgetRequest) (*Budget, error) {
	b, err := s.GetBudgetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		b.Description = strings.TrimSpace(*req.Description)
	}
	if req.Category != nil {
		b.Category = strings.TrimSpace(*req.Category)
	}
	if req.TotalValue != nil {
		b.TotalValue = *req.TotalValue
	}
	if req.SpentValue != nil {
		b.SpentValue = *req.SpentValue
	}
	if req.AlertAt != nil {
		b.AlertAt = *req.AlertAt
	}

	if err := validate(b); err != nil {
		return nil, err
	}

	b.UpdatedAt = time.Now()
	if err := s.Repository.Update(ctx, b); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return b, nil
}

func (s *Service) DeleteBudget(ctx context.Context, id ulid.ULID) error {
	if _, err := s.GetBudgetByID(ctx, id); err != nil {
		return err
	}
	if err := s.Repository.Delete(ctx, id); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetBudgetByID(ctx context.Context, id ulid.ULID) (*Budget, error) {
	b, err := s.Repository.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrBudgetNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return b, nil
}

func (s *Service) ListBudgets(ctx context.Context, projectID ulid.ULID, pagination *pkg.PaginationParams) ([]*Budget, int64, error) {
	if err := s.EnsureProjectExists(ctx, projectID); err != nil {
		return nil, 0, err
	}

	budgets, total, err := s.Repository.ListByProject(ctx, projectID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return budgets, total, nil
}

func (s *Service) GetProjectSummary(ctx context.Context, projectID ulid.ULID) (*Summary, error) {
	if err := s.EnsureProjectExists(ctx, projectID); err != nil {
		return nil, err
	}

	budgets, err := s.Repository.ListAllByProject(ctx, projectID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return Summarize(projectID, budgets), nil
}

func (s *Service) GetBudgetStatus(ctx context.Context, id ulid.ULID) (*StatusResponse, error) {
	b, err := s.GetBudgetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &StatusResponse{
		BudgetId:   b.Id,
		TotalValue: b.TotalValue,
		SpentValue: b.SpentValue,
		Remaining:  b.TotalValue - b.SpentValue,
		Percentage: b.GetPercentage(),
		Status:     b.GetStatus(),
		AlertAt:    b.AlertAt,
	}, nil
}

func validate(b *Budget) error {
	if b.Description == "" {
		return appErrors.NewValidationError("description", "é obrigatório")
	}
	if math.IsNaN(b.TotalValue) || math.IsInf(b.TotalValue, 0) || b.TotalValue <= 0 {
		return appErrors.NewValidationError("total_value", "deve ser maior que zero")
	}
	if math.IsNaN(b.SpentValue) || math.IsInf(b.SpentValue, 0) || b.SpentValue < 0 {
		return appErrors.NewValidationError("spent_value", "não pode ser negativo")
	}
	if b.AlertAt < 0 || b.AlertAt > 100 {
		return appErrors.NewValidationError("alert_at", "deve estar entre 0 e 100")
	}
	return nil
}
