package infrastructure

import (
	"context"
	"encoding/json"
	"time"

	"Planzee/internal/domain/insight"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type InsightRepository struct {
	DB *gorm.DB
}

var _ insight.Repository = (*InsightRepository)(nil)

type insightDB struct {
	Id              string         `gorm:"type:varchar(26);primaryKey"`
	ProjectId       string         `gorm:"type:varchar(26);index;not null"`
	Score           int            `gorm:"not null"`
	Level           string         `gorm:"type:varchar(10);not null"`
	Summary         string         `gorm:"type:text;not null"`
	Risks           datatypes.JSON `gorm:"not null"`
	Recommendations datatypes.JSON `gorm:"not null"`
	Model           string         `gorm:"type:varchar(100)"`
	CreatedAt       time.Time      `gorm:"not null;index"`
}

func (insightDB) TableName() string {
	return "insights"
}

func toDomainInsight(idb *insightDB) (*insight.Insight, error) {
	id, err := pkg.ParseULID(idb.Id)
	if err != nil {
		return nil, err
	}

	projectID, err := pkg.ParseULID(idb.ProjectId)
	if err != nil {
		return nil, err
	}

	risks := []insight.Risk{}
	if len(idb.Risks) > 0 {
		if err := json.Unmarshal(idb.Risks, &risks); err != nil {
			return nil, err
		}
	}

	recommendations := []string{}
	if len(idb.Recommendations) > 0 {
		if err := json.Unmarshal(idb.Recommendations, &recommendations); err != nil {
			return nil, err
		}
	}

	return &insight.Insight{
		Id:              id,
		ProjectId:       projectID,
		Score:           idb.Score,
		Level:           idb.Level,
		Summary:         idb.Summary,
		Risks:           risks,
		Recommendations: recommendations,
		Model:           idb.Model,
		CreatedAt:       idb.CreatedAt,
	}, nil
}

func toDBInsight(in *insight.Insight) (*insightDB, error) {
	risks := in.Risks
	if risks == nil {
		risks = []insight.Risk{}
	}
	risksJSON, err := json.Marshal(risks)
	if err != nil {
		return nil, err
	}

	recommendations := in.Recommendations
	if recommendations == nil {
		recommendations = []string{}
	}
	recommendationsJSON, err := json.Marshal(recommendations)
	if err != nil {
		return nil, err
	}

	return &insightDB{
		Id:              in.Id.String(),
		ProjectId:       in.ProjectId.String(),
		Score:           in.Score,
		Level:           in.Level,
		Summary:         in.Summary,
		Risks:           datatypes.JSON(risksJSON),
		Recommendations: datatypes.JSON(recommendationsJSON),
		Model:           in.Model,
		CreatedAt:       in.CreatedAt,
	}, nil
}

func (r *InsightRepository) Create(ctx context.Context, in *insight.Insight) error {
	idb, err := toDBInsight(in)
	if err != nil {
		return err
	}
	return r.DB.WithContext(ctx).Create(idb).Error
}

func (r *InsightRepository) ListByProject(ctx context.Context, projectID ulid.ULID, pagination *pkg.PaginationParams) ([]*insight.Insight, int64, error) {
	query := r.DB.WithContext(ctx).Model(&insightDB{}).Where("project_id = ?", projectID.String())
	return pkg.Paginate(query, pagination, "created_at DESC", toDomainInsight)
}
