package routes

import "github.com/gin-gonic/gin"

// Register monta as rotas da API sob o grupo informado (normalmente /api).
func (h *Handler) Register(api *gin.RouterGroup) {
	statuses := api.Group("/statuses")
	{
		statuses.GET("", h.ListStatuses)
		statuses.POST("", h.CreateStatus)
		statuses.PATCH("/:id", h.UpdateStatus)
		statuses.DELETE("/:id", h.DeleteStatus)
	}

	projects := api.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.GetProject)
		projects.PATCH("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)
		projects.GET("/:id/health", h.GetProjectHealth)
		projects.GET("/:id/tasks", h.ListProjectTasks)
		projects.POST("/:id/tasks", h.CreateTask)
		projects.GET("/:id/budgets", h.ListProjectBudgets)
		projects.POST("/:id/budgets", h.CreateBudget)
		projects.GET("/:id/budgets/summary", h.GetBudgetSummary)
		projects.POST("/:id/insights", h.CreateInsight)
		projects.GET("/:id/insights", h.ListInsights)
	}

	tasks := api.Group("/tasks")
	{
		tasks.PATCH("/:id", h.UpdateTask)
		tasks.DELETE("/:id", h.DeleteTask)
		tasks.PATCH("/:id/status", h.ChangeTaskStatus)
	}

	budgets := api.Group("/budgets")
	{
		budgets.PATCH("/:id", h.UpdateBudget)
		budgets.DELETE("/:id", h.DeleteBudget)
		budgets.GET("/:id/status", h.GetBudgetStatus)
	}

	api.GET("/health/levels", h.GetHealthLevels)
	api.GET("/portfolio/health", h.GetPortfolioHealth)
	api.GET("/timeline", h.GetTimeline)
}
