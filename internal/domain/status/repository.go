package status

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, status *Status) error
	Update(ctx context.Context, status *Status) error
	Delete(ctx context.Context, id ulid.ULID) error
	GetByID(ctx context.Context, id ulid.ULID) (*Status, error)
	GetByName(ctx context.Context, name string) (*Status, error)
	List(ctx context.Context) ([]*Status, error)
	CountProjects(ctx context.Context, id ulid.ULID) (int64, error)
}
