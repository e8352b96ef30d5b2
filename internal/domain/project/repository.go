package project

import (
	"context"

	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Project, error)
	Exists(ctx context.Context, id ulid.ULID) (bool, error)
	List(ctx context.Context, filters *Filters, pagination *pkg.PaginationParams) ([]*Project, int64, error)
	ListAll(ctx context.Context, filters *Filters) ([]*Project, error)
}
