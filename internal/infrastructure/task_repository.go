package infrastructure

import (
	"context"
	"time"

	"Planzee/internal/domain/task"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

type TaskRepository struct {
	DB *gorm.DB
}

var _ task.Repository = (*TaskRepository)(nil)

type taskDB struct {
	Id          string     `gorm:"type:varchar(26);primaryKey"`
	ProjectId   string     `gorm:"type:varchar(26);index;not null"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	Assignee    string     `gorm:"type:varchar(150)"`
	Status      string     `gorm:"type:varchar(20);index;not null"`
	Priority    string     `gorm:"type:varchar(10);not null"`
	Deadline    *time.Time `gorm:"type:date"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

func (taskDB) TableName() string {
	return "tasks"
}

func toDomainTask(tdb *taskDB) (*task.Task, error) {
	id, err := pkg.ParseULID(tdb.Id)
	if err != nil {
		return nil, err
	}

	projectID, err := pkg.ParseULID(tdb.ProjectId)
	if err != nil {
		return nil, err
	}

	return &task.Task{
		Id:          id,
		ProjectId:   projectID,
		Title:       tdb.Title,
		Description: tdb.Description,
		Assignee:    tdb.Assignee,
		Status:      task.Status(tdb.Status),
		Priority:    task.Priority(tdb.Priority),
		Deadline:    utcDate(tdb.Deadline),
		CreatedAt:   tdb.CreatedAt,
		UpdatedAt:   tdb.UpdatedAt,
	}, nil
}

func toDBTask(t *task.Task) *taskDB {
	return &taskDB{
		Id:          t.Id.String(),
		ProjectId:   t.ProjectId.String(),
		Title:       t.Title,
		Description: t.Description,
		Assignee:    t.Assignee,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		Deadline:    t.Deadline,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) error {
	return r.DB.WithContext(ctx).Create(toDBTask(t)).Error
}

func (r *TaskRepository) Update(ctx context.Context, t *task.Task) error {
	tdb := toDBTask(t)
	return r.DB.WithContext(ctx).Model(&taskDB{}).Where("id = ?", tdb.Id).
		Select("title", "description", "assignee", "status", "priority", "deadline", "updated_at").
		Updates(tdb).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id ulid.ULID) error {
	return r.DB.WithContext(ctx).Where("id = ?", id.String()).Delete(&taskDB{}).Error
}

func (r *TaskRepository) GetByID(ctx context.Context, id ulid.ULID) (*task.Task, error) {
	var tdb taskDB
	if err := r.DB.WithContext(ctx).Where("id = ?", id.String()).First(&tdb).Error; err != nil {
		return nil, err
	}
	return toDomainTask(&tdb)
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID ulid.ULID, filters *task.Filters, pagination *pkg.PaginationParams) ([]*task.Task, int64, error) {
	query := r.DB.WithContext(ctx).Model(&taskDB{}).Where("project_id = ?", projectID.String())
	if filters != nil {
		if filters.Status != nil {
			query = query.Where("status = ?", string(*filters.Status))
		}
		if filters.Assignee != nil && *filters.Assignee != "" {
			query = query.Where("assignee = ?", *filters.Assignee)
		}
	}

	return pkg.Paginate(query, pagination, "created_at ASC", toDomainTask)
}

func (r *TaskRepository) ListAllByProject(ctx context.Context, projectID ulid.ULID) ([]*task.Task, error) {
	return r.ListByProjects(ctx, []ulid.ULID{projectID})
}

func (r *TaskRepository) ListByProjects(ctx context.Context, projectIDs []ulid.ULID) ([]*task.Task, error) {
	if len(projectIDs) == 0 {
		return []*task.Task{}, nil
	}

	var rows []taskDB
	err := r.DB.WithContext(ctx).
		Where("project_id IN ?", ulidStrings(projectIDs)).
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return pkg.ConvertAll(rows, toDomainTask)
}

func ulidStrings(ids []ulid.ULID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
