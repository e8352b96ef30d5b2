package insight

import (
	"context"

	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	Create(ctx context.Context, insight *Insight) error
	ListByProject(ctx context.Context, projectID ulid.ULID, pagination *pkg.PaginationParams) ([]*Insight, int64, error)
}
