package infrastructure

import (
	"context"
	"strings"
	"time"

	"Planzee/internal/domain/project"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	DB *gorm.DB
}

var _ project.Repository = (*ProjectRepository)(nil)

type projectDB struct {
	Id                 string     `gorm:"type:varchar(26);primaryKey"`
	Name               string     `gorm:"type:varchar(200);not null"`
	Description        string     `gorm:"type:text"`
	StatusId           string     `gorm:"type:varchar(26);index;not null"`
	AreaId             *string    `gorm:"type:varchar(26);index"`
	Manager            string     `gorm:"type:varchar(150)"`
	StartDate          *time.Time `gorm:"type:date"`
	Deadline           *time.Time `gorm:"type:date;index"`
	Progress           *int       `gorm:"type:integer"`
	TotalEstimatedCost *float64   `gorm:"type:decimal(15,2)"`
	CreatedAt          time.Time  `gorm:"not null"`
	UpdatedAt          time.Time  `gorm:"not null"`
}

func (projectDB) TableName() string {
	return "projects"
}

func toDomainProject(pdb *projectDB) (*project.Project, error) {
	id, err := pkg.ParseULID(pdb.Id)
	if err != nil {
		return nil, err
	}

	statusID, err := pkg.ParseULID(pdb.StatusId)
	if err != nil {
		return nil, err
	}

	areaID, err := pkg.ParseULIDPtr(pdb.AreaId)
	if err != nil {
		return nil, err
	}

	return &project.Project{
		Id:                 id,
		Name:               pdb.Name,
		Description:        pdb.Description,
		StatusId:           statusID,
		AreaId:             areaID,
		Manager:            pdb.Manager,
		StartDate:          utcDate(pdb.StartDate),
		Deadline:           utcDate(pdb.Deadline),
		Progress:           pdb.Progress,
		TotalEstimatedCost: pdb.TotalEstimatedCost,
		CreatedAt:          pdb.CreatedAt,
		UpdatedAt:          pdb.UpdatedAt,
	}, nil
}

func toDBProject(p *project.Project) *projectDB {
	return &projectDB{
		Id:                 p.Id.String(),
		Name:               p.Name,
		Description:        p.Description,
		StatusId:           p.StatusId.String(),
		AreaId:             pkg.ULIDPtrToString(p.AreaId),
		Manager:            p.Manager,
		StartDate:          p.StartDate,
		Deadline:           p.Deadline,
		Progress:           p.Progress,
		TotalEstimatedCost: p.TotalEstimatedCost,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// utcDate normaliza datas lidas do banco para meia-noite UTC do mesmo dia.
func utcDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := pkg.CivilDate(*t)
	return &d
}

func (r *ProjectRepository) Create(ctx context.Context, p *project.Project) error {
	return r.DB.WithContext(ctx).Create(toDBProject(p)).Error
}

func (r *ProjectRepository) Update(ctx context.Context, p *project.Project) error {
	pdb := toDBProject(p)
	return r.DB.WithContext(ctx).Model(&projectDB{}).Where("id = ?", pdb.Id).
		Select("name", "description", "status_id", "area_id", "manager", "start_date", "deadline", "progress", "total_estimated_cost", "updated_at").
		Updates(pdb).Error
}

// Delete remove o projeto e tudo o que pertence a ele numa única transação.
func (r *ProjectRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		projectID := id.String()
		if err := tx.Where("project_id = ?", projectID).Delete(&taskDB{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&budgetDB{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", projectID).Delete(&insightDB{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", projectID).Delete(&projectDB{}).Error
	})
}

func (r *ProjectRepository) GetByID(ctx context.Context, id ulid.ULID) (*project.Project, error) {
	var pdb projectDB
	if err := r.DB.WithContext(ctx).Where("id = ?", id.String()).First(&pdb).Error; err != nil {
		return nil, err
	}

	p, err := toDomainProject(&pdb)
	if err != nil {
		return nil, err
	}
	if err := r.attachStatusNames(ctx, []*project.Project{p}); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) Exists(ctx context.Context, id ulid.ULID) (bool, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&projectDB{}).Where("id = ?", id.String()).Count(&total).Error
	return total > 0, err
}

func (r *ProjectRepository) List(ctx context.Context, filters *project.Filters, pagination *pkg.PaginationParams) ([]*project.Project, int64, error) {
	query := applyProjectFilters(r.DB.WithContext(ctx).Model(&projectDB{}), filters)

	projects, total, err := pkg.Paginate(query, pagination, "name ASC", toDomainProject)
	if err != nil {
		return nil, 0, err
	}
	if err := r.attachStatusNames(ctx, projects); err != nil {
		return nil, 0, err
	}
	return projects, total, nil
}

func (r *ProjectRepository) ListAll(ctx context.Context, filters *project.Filters) ([]*project.Project, error) {
	var rows []projectDB
	query := applyProjectFilters(r.DB.WithContext(ctx).Model(&projectDB{}), filters)
	if err := query.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	projects, err := pkg.ConvertAll(rows, toDomainProject)
	if err != nil {
		return nil, err
	}
	if err := r.attachStatusNames(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func applyProjectFilters(query *gorm.DB, filters *project.Filters) *gorm.DB {
	if filters == nil {
		return query
	}
	if filters.StatusId != nil {
		query = query.Where("status_id = ?", filters.StatusId.String())
	}
	if filters.AreaId != nil {
		query = query.Where("area_id = ?", filters.AreaId.String())
	}
	if filters.Search != nil {
		if term := strings.TrimSpace(*filters.Search); term != "" {
			like := "%" + strings.ToLower(term) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(manager) LIKE ?", like, like)
		}
	}
	return query
}

func (r *ProjectRepository) attachStatusNames(ctx context.Context, projects []*project.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.StatusId.String())
	}

	var rows []statusDB
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return err
	}

	names := make(map[string]string, len(rows))
	for _, row := range rows {
		names[row.Id] = row.Name
	}
	for _, p := range projects {
		p.StatusName = names[p.StatusId.String()]
	}
	return nil
}
