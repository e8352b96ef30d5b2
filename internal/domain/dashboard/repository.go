package dashboard

import (
	"context"

	"Planzee/internal/domain/budget"
	"Planzee/internal/domain/project"
	"Planzee/internal/domain/status"
	"Planzee/internal/domain/task"

	"github.com/oklog/ulid/v2"
)

// Repository carrega em lote os dados da visão executiva, evitando uma
// consulta por projeto.
type Repository interface {
	ListProjects(ctx context.Context, filters *project.Filters) ([]*project.Project, error)
	ListStatuses(ctx context.Context) ([]*status.Status, error)
	ListTasks(ctx context.Context, projectIDs []ulid.ULID) ([]*task.Task, error)
	ListBudgets(ctx context.Context, projectIDs []ulid.ULID) ([]*budget.Budget, error)
}
