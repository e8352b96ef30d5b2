package fx

import (
	"Planzee/internal/domain/budget"
	"Planzee/internal/domain/dashboard"
	"Planzee/internal/domain/healthscore"
	"Planzee/internal/domain/insight"
	"Planzee/internal/domain/project"
	"Planzee/internal/domain/status"
	"Planzee/internal/domain/task"
	"Planzee/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler HTTP
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
	),
)

func newHandler(
	statusSvc *status.Service,
	projectSvc *project.Service,
	taskSvc *task.Service,
	budgetSvc *budget.Service,
	healthSvc *healthscore.Service,
	dashboardSvc *dashboard.Service,
	insightSvc *insight.Service,
) *routes.Handler {
	return &routes.Handler{
		StatusService:    statusSvc,
		ProjectService:   projectSvc,
		TaskService:      taskSvc,
		BudgetService:    budgetSvc,
		HealthService:    healthSvc,
		DashboardService: dashboardSvc,
		InsightService:   insightSvc,
	}
}
