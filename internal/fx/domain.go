package fx

import (
	"Planzee/config"
	"Planzee/internal/domain/budget"
	"Planzee/internal/domain/dashboard"
	"Planzee/internal/domain/healthscore"
	"Planzee/internal/domain/insight"
	"Planzee/internal/domain/project"
	"Planzee/internal/domain/shared"
	"Planzee/internal/domain/status"
	"Planzee/internal/domain/task"
	"Planzee/internal/infrastructure"
	"Planzee/internal/logger"
	"Planzee/internal/metrics"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newProjectCheckerService,
		newStatusService,
		newProjectService,
		newTaskService,
		newBudgetService,
		newHealthService,
		newDashboardService,
		newInsightService,
	),
)

func newProjectCheckerService(repo *infrastructure.ProjectRepository) *shared.ProjectCheckerService {
	return shared.NewProjectCheckerService(repo)
}

func newStatusService(repo *infrastructure.StatusRepository) *status.Service {
	return status.NewService(repo)
}

func newProjectService(repo *infrastructure.ProjectRepository, statusSvc *status.Service) *project.Service {
	return project.NewService(repo, statusSvc)
}

func newTaskService(repo *infrastructure.TaskRepository, checker *shared.ProjectCheckerService) *task.Service {
	return task.NewService(repo, checker)
}

func newBudgetService(repo *infrastructure.BudgetRepository, checker *shared.ProjectCheckerService) *budget.Service {
	return budget.NewService(repo, checker)
}

func newHealthService(
	cfg *config.Config,
	projectSvc *project.Service,
	statusSvc *status.Service,
	taskRepo *infrastructure.TaskRepository,
	budgetRepo *infrastructure.BudgetRepository,
	m *metrics.Metrics,
) *healthscore.Service {
	clock := healthscore.SystemClock{Location: cfg.Health.Location()}
	return healthscore.NewService(projectSvc, statusSvc, taskRepo, budgetRepo, clock, m)
}

func newDashboardService(repo *infrastructure.DashboardRepository, health *healthscore.Service) *dashboard.Service {
	return dashboard.NewService(repo, health)
}

func newInsightService(
	repo *infrastructure.InsightRepository,
	health *healthscore.Service,
	analyzer insight.Analyzer,
	m *metrics.Metrics,
	checker *shared.ProjectCheckerService,
) *insight.Service {
	if analyzer == nil {
		logger.Info().Msg("Análise por IA desabilitada (ANTHROPIC_API_KEY não definida)")
	}
	return insight.NewService(repo, health, analyzer, m, checker)
}
