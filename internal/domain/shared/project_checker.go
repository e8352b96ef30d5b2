package shared

import (
	"context"

	appErrors "Planzee/internal/errors"

	"github.com/oklog/ulid/v2"
)

type ProjectCheckerService struct {
	checker ProjectChecker
}

func NewProjectCheckerService(checker ProjectChecker) *ProjectCheckerService {
	return &ProjectCheckerService{checker: checker}
}

func (s *ProjectCheckerService) EnsureProjectExists(ctx context.Context, projectID ulid.ULID) error {
	if s == nil || s.checker == nil {
		return appErrors.ErrInternalServer
	}

	exists, err := s.checker.Exists(ctx, projectID)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if !exists {
		return appErrors.ErrProjectNotFound
	}

	return nil
}

type BaseService struct {
	ProjectChecker *ProjectCheckerService
}

func (b *BaseService) EnsureProjectExists(ctx context.Context, projectID ulid.ULID) error {
	if b.ProjectChecker == nil {
		return appErrors.ErrInternalServer
	}
	return b.ProjectChecker.EnsureProjectExists(ctx, projectID)
}
