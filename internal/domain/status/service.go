package status

import (
	"context"
	"errors"
	"regexp"
	"time"

	"Planzee/internal/domain/shared"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type Service struct {
	Repository Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repository: repo}
}

type CreateStatusRequest struct {
	Name      string
	Color     string
	SortOrder int
	IsFinal   bool
}

type UpdateStatusRequest struct {
	Name      *string
	Color     *string
	SortOrder *int
	IsFinal   *bool
}

func (s *Service) Create(ctx context.Context, req *CreateStatusRequest) (*Status, error) {
	name := shared.NormalizeName(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}
	if req.Color != "" && !hexColor.MatchString(req.Color) {
		return nil, appErrors.NewValidationError("color", "deve estar no formato #RRGGBB")
	}
	if err := s.checkNameNotExists(ctx, name); err != nil {
		return nil, err
	}

	now := time.Now()
	st := &Status{
		Id:        pkg.GenerateULIDObject(),
		Name:      name,
		Color:     req.Color,
		SortOrder: req.SortOrder,
		IsFinal:   req.IsFinal,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, st); err != nil {
		if shared.IsUniqueConstraintError(err) {
			return nil, appErrors.NewConflictError("status")
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	return st, nil
}

func (s *Service) Update(ctx context.Context, id ulid.ULID, req *UpdateStatusRequest) (*Status, error) {
	st, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := shared.NormalizeName(*req.Name)
		if name == "" {
			return nil, appErrors.NewValidationError("name", "é obrigatório")
		}
		if name != st.Name {
			if err := s.checkNameNotExists(ctx, name); err != nil {
				return nil, err
			}
		}
		st.Name = name
	}
	if req.Color != nil {
		if *req.Color != "" && !hexColor.MatchString(*req.Color) {
			return nil, appErrors.NewValidationError("color", "deve estar no formato #RRGGBB")
		}
		st.Color = *req.Color
	}
	if req.SortOrder != nil {
		st.SortOrder = *req.SortOrder
	}
	if req.IsFinal != nil {
		st.IsFinal = *req.IsFinal
	}
	st.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, st); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return st, nil
}

func (s *Service) Delete(ctx context.Context, id ulid.ULID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	inUse, err := s.Repository.CountProjects(ctx, id)
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}
	if inUse > 0 {
		return appErrors.ErrStatusInUse.WithDetails(map[string]interface{}{"projects": inUse})
	}

	if err := s.Repository.Delete(ctx, id); err != nil {
		return appErrors.NewDatabaseError(err)
	}
	return nil
}

func (s *Service) GetByID(ctx context.Context, id ulid.ULID) (*Status, error) {
	st, err := s.Repository.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrStatusNotFound
	}
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return st, nil
}

func (s *Service) List(ctx context.Context) ([]*Status, error) {
	statuses, err := s.Repository.List(ctx)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return statuses, nil
}

// IsFinal indica se o status encerra o ciclo de vida do projeto.
func (s *Service) IsFinal(ctx context.Context, id ulid.ULID) (bool, error) {
	st, err := s.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return st.IsFinal, nil
}

func (s *Service) checkNameNotExists(ctx context.Context, name string) error {
	existing, err := s.Repository.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return appErrors.NewDatabaseError(err)
	}
	if existing != nil {
		return appErrors.NewConflictError("status")
	}
	return nil
}
