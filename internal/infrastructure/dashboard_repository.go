package infrastructure

import (
	"context"

	"Planzee/internal/domain/budget"
	"Planzee/internal/domain/dashboard"
	"Planzee/internal/domain/project"
	"Planzee/internal/domain/status"
	"Planzee/internal/domain/task"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// DashboardRepository compõe os repositórios de agregados para as leituras
// em lote da visão executiva.
type DashboardRepository struct {
	DB       *gorm.DB
	Projects *ProjectRepository
	Statuses *StatusRepository
	Tasks    *TaskRepository
	Budgets  *BudgetRepository
}

var _ dashboard.Repository = (*DashboardRepository)(nil)

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{
		DB:       db,
		Projects: &ProjectRepository{DB: db},
		Statuses: &StatusRepository{DB: db},
		Tasks:    &TaskRepository{DB: db},
		Budgets:  &BudgetRepository{DB: db},
	}
}

func (r *DashboardRepository) ListProjects(ctx context.Context, filters *project.Filters) ([]*project.Project, error) {
	return r.Projects.ListAll(ctx, filters)
}

func (r *DashboardRepository) ListStatuses(ctx context.Context) ([]*status.Status, error) {
	return r.Statuses.List(ctx)
}

func (r *DashboardRepository) ListTasks(ctx context.Context, projectIDs []ulid.ULID) ([]*task.Task, error) {
	return r.Tasks.ListByProjects(ctx, projectIDs)
}

func (r *DashboardRepository) ListBudgets(ctx context.Context, projectIDs []ulid.ULID) ([]*budget.Budget, error) {
	return r.Budgets.ListByProjects(ctx, projectIDs)
}
