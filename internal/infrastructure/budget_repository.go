package infrastructure

import (
	"context"
	"time"

	"Planzee/internal/domain/budget"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type BudgetRepository struct {
	DB *gorm.DB
}

var _ budget.Repository = (*BudgetRepository)(nil)

type budgetDB struct {
	Id          string    `gorm:"type:varchar(26);primaryKey"`
	ProjectId   string    `gorm:"type:varchar(26);index;not null"`
	Description string    `gorm:"type:varchar(200);not null"`
	Category    string    `gorm:"type:varchar(100)"`
	TotalValue  float64   `gorm:"type:decimal(15,2);not null"`
	SpentValue  float64   `gorm:"type:decimal(15,2);not null;default:0"`
	AlertAt     float64   `gorm:"type:decimal(5,2);default:80"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func (budgetDB) TableName() string {
	return "budgets"
}

func toDomainBudget(bdb *budgetDB) (*budget.Budget, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, err
	}

	projectID, err := pkg.ParseULID(bdb.ProjectId)
	if err != nil {
		return nil, err
	}

	return &budget.Budget{
		Id:          id,
		ProjectId:   projectID,
		Description: bdb.Description,
		Category:    bdb.Category,
		TotalValue:  bdb.TotalValue,
		SpentValue:  bdb.SpentValue,
		AlertAt:     bdb.AlertAt,
		CreatedAt:   bdb.CreatedAt,
		UpdatedAt:   bdb.UpdatedAt,
	}, nil
}

func toDBBudget(b *budget.Budget) *budgetDB {
	return &budgetDB{
		Id:          b.Id.String(),
		ProjectId:   b.ProjectId.String(),
		Description: b.Description,
		Category:    b.Category,
		TotalValue:  b.TotalValue,
		SpentValue:  b.SpentValue,
		AlertAt:     b.AlertAt,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	return r.DB.WithContext(ctx).Create(toDBBudget(b)).Error
}

func (r *BudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	bdb := toDBBudget(b)
	return r.DB.WithContext(ctx).Model(&budgetDB{}).Where("id = ?", bdb.Id).
		Select("description", "category", "total_value", "spent_value", "alert_at", "updated_at").
		Updates(bdb).Error
}

func (r *BudgetRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(&budgetDB{}).Error
}

func (r *BudgetRepository) GetByID(ctx context.Context, id ulid.ULID) (*budget.Budget, error) {
	var bdb budgetDB
	if err := r.DB.WithContext(ctx).Where("id = ?", id.String()).First(&bdb).Error; err != nil {
		return nil, err
	}
	return toDomainBudget(&bdb)
}

func (r *BudgetRepository) ListByProject(ctx context.Context, projectID ulid.ULID, pagination *pkg.PaginationParams) ([]*budget.Budget, int64, error) {
	query := r.DB.WithContext(ctx).Model(&budgetDB{}).Where("project_id = ?", projectID.String())
	return pkg.Paginate(query, pagination, "created_at DESC", toDomainBudget)
}

func (r *BudgetRepository) ListAllByProject(ctx context.Context, projectID ulid.ULID) ([]*budget.Budget, error) {
	return r.ListByProjects(ctx, []ulid.ULID{projectID})
}

func (r *BudgetRepository) ListByProjects(ctx context.Context, projectIDs []ulid.ULID) ([]*budget.Budget, error) {
	if len(projectIDs) == 0 {
		return []*budget.Budget{}, nil
	}

	var rows []budgetDB
	err := r.DB.WithContext(ctx).
		Where("project_id IN ?", ulidStrings(projectIDs)).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return pkg.ConvertAll(rows, toDomainBudget)
}
