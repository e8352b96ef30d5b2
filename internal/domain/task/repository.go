package task

import (
	"context"

	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, task *Task) error
	Update(ctx context.Context, task *Task) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Task, error)
	ListByProject(ctx context.Context, projectID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*Task, int64, error)
	ListAllByProject(ctx context.Context, projectID ulid.ULID) ([]*Task, error)
	ListByProjects(ctx context.Context, projectIDs []ulid.ULID) ([]*Task, error)
}
