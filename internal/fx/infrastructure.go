package fx

import (
	"Planzee/config"
	"Planzee/internal/domain/insight"
	"Planzee/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newStatusRepository,
		newProjectRepository,
		newTaskRepository,
		newBudgetRepository,
		newInsightRepository,
		newDashboardRepository,
		newAnalyzer,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newStatusRepository(db *gorm.DB) *infrastructure.StatusRepository {
	return &infrastructure.StatusRepository{DB: db}
}

func newProjectRepository(db *gorm.DB) *infrastructure.ProjectRepository {
	return &infrastructure.ProjectRepository{DB: db}
}

func newTaskRepository(db *gorm.DB) *infrastructure.TaskRepository {
	return &infrastructure.TaskRepository{DB: db}
}

func newBudgetRepository(db *gorm.DB) *infrastructure.BudgetRepository {
	return &infrastructure.BudgetRepository{DB: db}
}

func newInsightRepository(db *gorm.DB) *infrastructure.InsightRepository {
	return &infrastructure.InsightRepository{DB: db}
}

func newDashboardRepository(db *gorm.DB) *infrastructure.DashboardRepository {
	return infrastructure.NewDashboardRepository(db)
}

func newAnalyzer(cfg *config.Config) insight.Analyzer {
	return infrastructure.NewAnalyzer(cfg)
}
