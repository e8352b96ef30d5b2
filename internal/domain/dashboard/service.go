package dashboard

import (
	"context"
	"math"
	"runtime"
	"sort"
	"strings"
	"time"

	"Planzee/internal/domain/budget"
	"Planzee/internal/domain/healthscore"
	"Planzee/internal/domain/project"
	"Planzee/internal/domain/status"
	"Planzee/internal/domain/task"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/logger"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

type Service struct {
	Repository Repository
	Health     *healthscore.Service
}

func NewService(repo Repository, health *healthscore.Service) *Service {
	return &Service{Repository: repo, Health: health}
}

type PortfolioResponse struct {
	Summary PortfolioSummary             `json:"summary"`
	Items   []*healthscore.ProjectHealth `json:"items"`
}

type PortfolioSummary struct {
	TotalProjects int                       `json:"totalProjects"`
	FinalProjects int                       `json:"finalProjects"`
	AverageScore  float64                   `json:"averageScore"`
	ByLevel       map[healthscore.Level]int `json:"byLevel"`
}

type TimelineItem struct {
	ProjectId  ulid.ULID         `json:"projectId"`
	Name       string            `json:"name"`
	StatusName string            `json:"statusName"`
	StartDate  time.Time         `json:"startDate"`
	Deadline   time.Time         `json:"deadline"`
	Progress   int               `json:"progress"`
	Score      int               `json:"score"`
	Level      healthscore.Level `json:"level"`
	Label      string            `json:"label"`
	Color      string            `json:"color"`
}

type TimelineResponse struct {
	From  time.Time       `json:"from"`
	To    time.Time       `json:"to"`
	Items []*TimelineItem `json:"items"`
}

// GetPortfolio avalia todos os projetos do filtro, do menos saudável para o mais saudável.
func (s *Service) GetPortfolio(ctx context.Context, filters *project.Filters) (*PortfolioResponse, error) {
	projects, err := s.Repository.ListProjects(ctx, filters)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	items, err := s.evaluateAll(ctx, projects)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score < items[j].Score
		}
		return strings.ToLower(items[i].ProjectName) < strings.ToLower(items[j].ProjectName)
	})

	return &PortfolioResponse{Summary: summarize(items), Items: items}, nil
}

// GetTimeline devolve os projetos cujo intervalo [início, prazo] cruza a janela.
func (s *Service) GetTimeline(ctx context.Context, from, to time.Time) (*TimelineResponse, error) {
	if from.After(to) {
		return nil, appErrors.ErrInvalidDateWindow.WithDetails(map[string]interface{}{
			"from": from.Format("2006-01-02"),
			"to":   to.Format("2006-01-02"),
		})
	}

	all, err := s.Repository.ListProjects(ctx, nil)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	projects := make([]*project.Project, 0, len(all))
	byID := make(map[ulid.ULID]*project.Project, len(all))
	for _, p := range all {
		if p.Overlaps(from, to) {
			projects = append(projects, p)
			byID[p.Id] = p
		}
	}

	evaluated, err := s.evaluateAll(ctx, projects)
	if err != nil {
		return nil, err
	}

	items := make([]*TimelineItem, 0, len(evaluated))
	for _, h := range evaluated {
		p := byID[h.ProjectId]
		items = append(items, &TimelineItem{
			ProjectId:  p.Id,
			Name:       p.Name,
			StatusName: h.StatusName,
			StartDate:  *p.StartDate,
			Deadline:   *p.Deadline,
			Progress:   p.ProgressOrZero(),
			Score:      h.Score,
			Level:      h.Level,
			Label:      h.Label,
			Color:      h.Color,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].StartDate.Equal(items[j].StartDate) {
			return items[i].StartDate.Before(items[j].StartDate)
		}
		return items[i].Name < items[j].Name
	})

	return &TimelineResponse{From: from, To: to, Items: items}, nil
}

func (s *Service) evaluateAll(ctx context.Context, projects []*project.Project) ([]*healthscore.ProjectHealth, error) {
	if len(projects) == 0 {
		return []*healthscore.ProjectHealth{}, nil
	}

	ids := make([]ulid.ULID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.Id)
	}

	var (
		statuses []*status.Status
		tasks    []*task.Task
		budgets  []*budget.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		statuses, err = s.Repository.ListStatuses(gctx)
		return err
	})
	g.Go(func() (err error) {
		tasks, err = s.Repository.ListTasks(gctx, ids)
		return err
	})
	g.Go(func() (err error) {
		budgets, err = s.Repository.ListBudgets(gctx, ids)
		return err
	})
	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Int("projects", len(projects)).Msg("Erro ao carregar dados do portfólio")
		return nil, appErrors.NewDatabaseError(err)
	}

	statusByID := make(map[ulid.ULID]*status.Status, len(statuses))
	for _, st := range statuses {
		statusByID[st.Id] = st
	}
	tasksByProject := make(map[ulid.ULID][]*task.Task)
	for _, t := range tasks {
		tasksByProject[t.ProjectId] = append(tasksByProject[t.ProjectId], t)
	}
	budgetsByProject := make(map[ulid.ULID][]*budget.Budget)
	for _, b := range budgets {
		budgetsByProject[b.ProjectId] = append(budgetsByProject[b.ProjectId], b)
	}

	today := s.Health.Clock.Today()
	results := make([]*healthscore.ProjectHealth, len(projects))
	eg, ectx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range projects {
		i, p := i, p
		eg.Go(func() error {
			if err := ectx.Err(); err != nil {
				return err
			}
			results[i] = s.Health.EvaluateSnapshotAt(&healthscore.Snapshot{
				Project: p,
				Status:  statusByID[p.StatusId],
				Tasks:   tasksByProject[p.Id],
				Budgets: budgetsByProject[p.Id],
			}, today)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, appErrors.FromError(err)
	}

	return results, nil
}

func summarize(items []*healthscore.ProjectHealth) PortfolioSummary {
	summary := PortfolioSummary{
		TotalProjects: len(items),
		ByLevel: map[healthscore.Level]int{
			healthscore.LevelGood:     0,
			healthscore.LevelWarning:  0,
			healthscore.LevelCritical: 0,
		},
	}
	if len(items) == 0 {
		return summary
	}

	total := 0
	for _, h := range items {
		total += h.Score
		summary.ByLevel[h.Level]++
		if h.IsFinal {
			summary.FinalProjects++
		}
	}
	summary.AverageScore = math.Round(float64(total)/float64(len(items))*10) / 10
	return summary
}
