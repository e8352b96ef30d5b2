package budget_test

import (
	"context"
	"math"
	"testing"

	"Planzee/internal/domain/budget"
	"Planzee/internal/domain/shared"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type fakeProjectChecker struct {
	existsFn func(ctx context.Context, id ulid.ULID) (bool, error)
}

func (f *fakeProjectChecker) Exists(ctx context.Context, id ulid.ULID) (bool, error) {
	return f.existsFn(ctx, id)
}

type fakeBudgetRepository struct {
	budgets map[ulid.ULID]*budget.Budget
}

func newFakeBudgetRepository() *fakeBudgetRepository {
	return &fakeBudgetRepository{budgets: make(map[ulid.ULID]*budget.Budget)}
}

func (f *fakeBudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	f.budgets[b.Id] = b
	return nil
}

func (f *fakeBudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	f.budgets[b.Id] = b
	return nil
}

func (f *fakeBudgetRepository) Delete(ctx context.Context, id ulid.ULID) error {
	delete(f.budgets, id)
	return nil
}

func (f *fakeBudgetRepository) GetByID(ctx context.Context, id ulid.ULID) (*budget.Budget, error) {
	if b, ok := f.budgets[id]; ok {
		copied := *b
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBudgetRepository) ListByProject(ctx context.Context, projectID ulid.ULID, pagination *pkg.PaginationParams) ([]*budget.Budget, int64, error) {
	out, _ := f.ListAllByProject(ctx, projectID)
	return out, int64(len(out)), nil
}

func (f *fakeBudgetRepository) ListAllByProject(ctx context.Context, projectID ulid.ULID) ([]*budget.Budget, error) {
	var out []*budget.Budget
	for _, b := range f.budgets {
		if b.ProjectId == projectID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepository) ListByProjects(ctx context.Context, projectIDs []ulid.ULID) ([]*budget.Budget, error) {
	var out []*budget.Budget
	for _, id := range projectIDs {
		lines, _ := f.ListAllByProject(ctx, id)
		out = append(out, lines...)
	}
	return out, nil
}

func newService(projectID ulid.ULID) (*budget.Service, *fakeBudgetRepository) {
	repo := newFakeBudgetRepository()
	checker := shared.NewProjectCheckerService(&fakeProjectChecker{
		existsFn: func(ctx context.Context, id ulid.ULID) (bool, error) {
			return id == projectID, nil
		},
	})
	return budget.NewService(repo, checker), repo
}

func TestCreateBudgetValidation(t *testing.T) {
	t.Parallel()

	projectID := ulid.Make()

	tests := []struct {
		name        string
		req         budget.CreateBudgetRequest
		wantErrCode string
		wantAlertAt float64
	}{
		{
			name:        "defaults alert threshold",
			req:         budget.CreateBudgetRequest{ProjectId: projectID, Description: "Infra", TotalValue: 1000},
			wantAlertAt: budget.DefaultAlertAt,
		},
		{
			name:        "custom alert threshold",
			req:         budget.CreateBudgetRequest{ProjectId: projectID, Description: "Licenças", TotalValue: 500, AlertAt: 90},
			wantAlertAt: 90,
		},
		{
			name:        "zero total",
			req:         budget.CreateBudgetRequest{ProjectId: projectID, Description: "Infra"},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "nan total",
			req:         budget.CreateBudgetRequest{ProjectId: projectID, Description: "Infra", TotalValue: math.NaN()},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "negative spent",
			req:         budget.CreateBudgetRequest{ProjectId: projectID, Description: "Infra", TotalValue: 10, SpentValue: -1},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "missing description",
			req:         budget.CreateBudgetRequest{ProjectId: projectID, TotalValue: 10},
			wantErrCode: "VALIDATION_ERROR",
		},
		{
			name:        "unknown project",
			req:         budget.CreateBudgetRequest{ProjectId: ulid.Make(), Description: "Infra", TotalValue: 10},
			wantErrCode: appErrors.ErrProjectNotFound.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc, repo := newService(projectID)
			created, err := svc.CreateBudget(context.Background(), &tt.req)

			if tt.wantErrCode != "" {
				appErr, ok := appErrors.AsAppError(err)
				if !ok || appErr.Code != tt.wantErrCode {
					t.Fatalf("expected %s, got %v", tt.wantErrCode, err)
				}
				if len(repo.budgets) != 0 {
					t.Fatalf("invalid budget must not be persisted")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.AlertAt != tt.wantAlertAt {
				t.Fatalf("expected alertAt %.0f, got %.0f", tt.wantAlertAt, created.AlertAt)
			}
		})
	}
}

func TestUpdateBudgetKeepsOriginalOnValidationFailure(t *testing.T) {
	t.Parallel()

	projectID := ulid.Make()
	svc, repo := newService(projectID)
	ctx := context.Background()

	created, err := svc.CreateBudget(ctx, &budget.CreateBudgetRequest{ProjectId: projectID, Description: "Infra", TotalValue: 1000})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	negative := -5.0
	if _, err := svc.UpdateBudget(ctx, created.Id, &budget.UpdateBudgetRequest{TotalValue: &negative}); err == nil {
		t.Fatalf("expected validation error")
	}
	if repo.budgets[created.Id].TotalValue != 1000 {
		t.Fatalf("stored budget changed after failed update")
	}

	spent := 850.0
	updated, err := svc.UpdateBudget(ctx, created.Id, &budget.UpdateBudgetRequest{SpentValue: &spent})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.GetStatus() != budget.StatusWarning {
		t.Fatalf("expected WARNING at 85%%, got %s", updated.GetStatus())
	}
}

func TestGetProjectSummary(t *testing.T) {
	t.Parallel()

	projectID := ulid.Make()
	svc, _ := newService(projectID)
	ctx := context.Background()

	for _, req := range []budget.CreateBudgetRequest{
		{ProjectId: projectID, Description: "Infra", TotalValue: 1000, SpentValue: 700},
		{ProjectId: projectID, Description: "Pessoal", TotalValue: 3000, SpentValue: 3500},
	} {
		req := req
		if _, err := svc.CreateBudget(ctx, &req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	summary, err := svc.GetProjectSummary(ctx, projectID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.TotalBudgeted != 4000 || summary.TotalSpent != 4200 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if summary.Status != budget.StatusExceeded {
		t.Fatalf("expected EXCEEDED, got %s", summary.Status)
	}
	if summary.Lines != 2 {
		t.Fatalf("expected 2 lines, got %d", summary.Lines)
	}

	if _, err := svc.GetProjectSummary(ctx, ulid.Make()); err == nil {
		t.Fatalf("expected project not found")
	}
}

func TestClassifySpending(t *testing.T) {
	t.Parallel()

	tests := []struct {
		percentage float64
		alertAt    float64
		want       string
	}{
		{percentage: 0, alertAt: 80, want: budget.StatusOK},
		{percentage: 79.9, alertAt: 80, want: budget.StatusOK},
		{percentage: 80, alertAt: 80, want: budget.StatusWarning},
		{percentage: 100, alertAt: 80, want: budget.StatusExceeded},
	}

	for _, tt := range tests {
		if got := budget.ClassifySpending(tt.percentage, tt.alertAt); got != tt.want {
			t.Errorf("ClassifySpending(%.1f, %.0f) = %s, want %s", tt.percentage, tt.alertAt, got, tt.want)
		}
	}
}
