package budget

import (
	"context"

	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, budget *Budget) error
	Update(ctx context.Context, budget *Budget) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Budget, error)
	ListByProject(ctx context.Context, projectID ulid.ULID, pagination *pkg.PaginationParams) ([]*Budget, int64, error)
	ListAllByProject(ctx context.Context, projectID ulid.ULID) ([]*Budget, error)
	ListByProjects(ctx context.Context, projectIDs []ulid.ULID) ([]*Budget, error)
}
