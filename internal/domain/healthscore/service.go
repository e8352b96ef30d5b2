package healthscore

import (
	"context"
	"time"

	"Planzee/internal/domain/budget"
	"Planzee/internal/domain/project"
	"Planzee/internal/domain/status"
	"Planzee/internal/domain/task"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/logger"

	"github.com/oklog/ulid/v2"
	"golang.org/x/sync/errgroup"
)

type ProjectSource interface {
	GetByID(ctx context.Context, id ulid.ULID) (*project.Project, error)
}

type StatusSource interface {
	GetByID(ctx context.Context, id ulid.ULID) (*status.Status, error)
}

type TaskSource interface {
	ListAllByProject(ctx context.Context, projectID ulid.ULID) ([]*task.Task, error)
}

type BudgetSource interface {
	ListAllByProject(ctx context.Context, projectID ulid.ULID) ([]*budget.Budget, error)
}

// Recorder recebe cada avaliação concluída; implementado por internal/metrics.
type Recorder interface {
	ObserveEvaluation(level string, score int, elapsed time.Duration)
}

type Service struct {
	Projects ProjectSource
	Statuses StatusSource
	Tasks    TaskSource
	Budgets  BudgetSource
	Clock    Clock
	Recorder Recorder
	Format   CurrencyFormatter
}

func NewService(projects ProjectSource, statuses StatusSource, tasks TaskSource, budgets BudgetSource, clock Clock, recorder Recorder) *Service {
	if clock == nil {
		clock = SystemClock{Location: time.UTC}
	}
	return &Service{
		Projects: projects,
		Statuses: statuses,
		Tasks:    tasks,
		Budgets:  budgets,
		Clock:    clock,
		Recorder: recorder,
	}
}

type ProjectHealth struct {
	ProjectId   ulid.ULID  `json:"projectId"`
	ProjectName string     `json:"projectName"`
	StatusName  string     `json:"statusName"`
	IsFinal     bool       `json:"isFinal"`
	Score       int        `json:"score"`
	Level       Level      `json:"level"`
	Label       string     `json:"label"`
	Color       string     `json:"color"`
	Issues      []string   `json:"issues"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	EvaluatedAt time.Time  `json:"evaluatedAt"`
}

// Snapshot reúne tudo o que a avaliação de um projeto precisa.
type Snapshot struct {
	Project *project.Project
	Status  *status.Status
	Tasks   []*task.Task
	Budgets []*budget.Budget
}

func (s *Service) EvaluateProject(ctx context.Context, projectID ulid.ULID) (*ProjectHealth, error) {
	snapshot, err := s.LoadSnapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return s.EvaluateSnapshot(snapshot), nil
}

// LoadSnapshot busca projeto, status, tarefas e orçamentos em paralelo.
func (s *Service) LoadSnapshot(ctx context.Context, projectID ulid.ULID) (*Snapshot, error) {
	snapshot := &Snapshot{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		p, err := s.Projects.GetByID(gctx, projectID)
		if err != nil {
			return err
		}
		st, err := s.Statuses.GetByID(gctx, p.StatusId)
		if err != nil {
			return err
		}
		snapshot.Project = p
		snapshot.Status = st
		return nil
	})

	g.Go(func() error {
		tasks, err := s.Tasks.ListAllByProject(gctx, projectID)
		if err != nil {
			return appErrors.NewDatabaseError(err)
		}
		snapshot.Tasks = tasks
		return nil
	})

	g.Go(func() error {
		budgets, err := s.Budgets.ListAllByProject(gctx, projectID)
		if err != nil {
			return appErrors.NewDatabaseError(err)
		}
		snapshot.Budgets = budgets
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Warn().
			Str("project_id", projectID.String()).
			Err(err).
			Msg("Falha ao carregar dados para avaliação de saúde")
		return nil, appErrors.FromError(err)
	}

	return snapshot, nil
}

func (s *Service) EvaluateSnapshot(snapshot *Snapshot) *ProjectHealth {
	return s.EvaluateSnapshotAt(snapshot, s.Clock.Today())
}

// EvaluateSnapshotAt avalia com uma data fixa; avaliações em lote usam a
// mesma data para todos os projetos.
func (s *Service) EvaluateSnapshotAt(snapshot *Snapshot, today time.Time) *ProjectHealth {
	start := time.Now()

	isFinal := snapshot.Status != nil && snapshot.Status.IsFinal
	result := Evaluate(snapshot.Project, snapshot.Tasks, snapshot.Budgets, isFinal, today, s.Format)

	if s.Recorder != nil {
		s.Recorder.ObserveEvaluation(string(result.Level), result.Score, time.Since(start))
	}

	info := LevelInfo(result.Level)
	health := &ProjectHealth{
		IsFinal:     isFinal,
		Score:       result.Score,
		Level:       result.Level,
		Label:       info.Label,
		Color:       info.Color,
		Issues:      result.Issues,
		EvaluatedAt: today,
	}
	if snapshot.Project != nil {
		health.ProjectId = snapshot.Project.Id
		health.ProjectName = snapshot.Project.Name
		health.Deadline = snapshot.Project.Deadline
	}
	if snapshot.Status != nil {
		health.StatusName = snapshot.Status.Name
	}
	return health
}
