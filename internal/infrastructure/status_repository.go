package infrastructure

import (
	"context"
	"time"

	"Planzee/internal/domain/status"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type StatusRepository struct {
	DB *gorm.DB
}

var _ status.Repository = (*StatusRepository)(nil)

type statusDB struct {
	Id        string    `gorm:"type:varchar(26);primaryKey"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Color     string    `gorm:"type:varchar(7)"`
	SortOrder int       `gorm:"not null;default:0"`
	IsFinal   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (statusDB) TableName() string {
	return "project_statuses"
}

func toDomainStatus(sdb *statusDB) (*status.Status, error) {
	id, err := pkg.ParseULID(sdb.Id)
	if err != nil {
		return nil, err
	}

	return &status.Status{
		Id:        id,
		Name:      sdb.Name,
		Color:     sdb.Color,
		SortOrder: sdb.SortOrder,
		IsFinal:   sdb.IsFinal,
		CreatedAt: sdb.CreatedAt,
		UpdatedAt: sdb.UpdatedAt,
	}, nil
}

func toDBStatus(s *status.Status) *statusDB {
	return &statusDB{
		Id:        s.Id.String(),
		Name:      s.Name,
		Color:     s.Color,
		SortOrder: s.SortOrder,
		IsFinal:   s.IsFinal,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func (r *StatusRepository) Create(ctx context.Context, s *status.Status) error {
	return r.DB.WithContext(ctx).Create(toDBStatus(s)).Error
}

func (r *StatusRepository) Update(ctx context.Context, s *status.Status) error {
	sdb := toDBStatus(s)
	return r.DB.WithContext(ctx).Model(&statusDB{}).Where("id = ?", sdb.Id).
		Select("name", "color", "sort_order", "is_final", "updated_at").
		Updates(sdb).Error
}

func (r *StatusRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(&statusDB{}).Error
}

func (r *StatusRepository) GetByID(ctx context.Context, id ulid.ULID) (*status.Status, error) {
	var sdb statusDB
	if err := r.DB.WithContext(ctx).Where("id = ?", id.String()).First(&sdb).Error; err != nil {
		return nil, err
	}
	return toDomainStatus(&sdb)
}

func (r *StatusRepository) GetByName(ctx context.Context, name string) (*status.Status, error) {
	var sdb statusDB
	if err := r.DB.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&sdb).Error; err != nil {
		return nil, err
	}
	return toDomainStatus(&sdb)
}

func (r *StatusRepository) List(ctx context.Context) ([]*status.Status, error) {
	var rows []statusDB
	if err := r.DB.WithContext(ctx).Order("sort_order ASC, name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return pkg.ConvertAll(rows, toDomainStatus)
}

func (r *StatusRepository) CountProjects(ctx context.Context, id ulid.ULID) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&projectDB{}).Where("status_id = ?", id.String()).Count(&total).Error
	return total, err
}
