package insight

import (
	"context"
	"time"

	"Planzee/internal/domain/healthscore"
	"Planzee/internal/domain/shared"
	appErrors "Planzee/internal/errors"
	"Planzee/internal/logger"
	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
)

const (
	outcomeOK      = "ok"
	outcomeError   = "error"
	outcomeInvalid = "invalid"
)

type Service struct {
	Repository Repository
	Health     *healthscore.Service
	Analyzer   Analyzer
	Recorder   Recorder
	shared.BaseService
}

func NewService(repo Repository, health *healthscore.Service, analyzer Analyzer, recorder Recorder, projectChecker *shared.ProjectCheckerService) *Service {
	return &Service{
		Repository: repo,
		Health:     health,
		Analyzer:   analyzer,
		Recorder:   recorder,
		BaseService: shared.BaseService{
			ProjectChecker: projectChecker,
		},
	}
}

func (s *Service) Enabled() bool {
	return s.Analyzer != nil
}

// Analyze avalia o projeto, pede ao modelo uma análise de riscos e guarda o resultado.
func (s *Service) Analyze(ctx context.Context, projectID ulid.ULID) (*Insight, error) {
	if !s.Enabled() {
		return nil, appErrors.ErrAIDisabled
	}

	snapshot, err := s.Health.LoadSnapshot(ctx, projectID)
	if err != nil {
		return nil, err
	}
	health := s.Health.EvaluateSnapshot(snapshot)

	completion, err := s.Analyzer.Complete(ctx, systemPrompt, BuildPrompt(snapshot, health))
	if err != nil {
		s.observe(outcomeError)
		logger.Error().Err(err).Str("project_id", projectID.String()).Msg("Erro ao consultar serviço de IA")
		return nil, appErrors.ErrAIUnavailable.WithError(err)
	}

	analysis, err := ParseAnalysis(completion.Text)
	if err != nil {
		s.observe(outcomeInvalid)
		logger.Warn().Err(err).Str("project_id", projectID.String()).Msg("Resposta da IA fora do formato esperado")
		return nil, appErrors.ErrAIResponse.WithError(err)
	}
	s.observe(outcomeOK)

	in := &Insight{
		Id:              pkg.GenerateULIDObject(),
		ProjectId:       projectID,
		Score:           health.Score,
		Level:           string(health.Level),
		Summary:         analysis.Summary,
		Risks:           analysis.Risks,
		Recommendations: analysis.Recommendations,
		Model:           completion.Model,
		CreatedAt:       time.Now(),
	}

	if err := s.Repository.Create(ctx, in); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	logger.Info().
		Str("project_id", projectID.String()).
		Int("risks", len(in.Risks)).
		Msg("Análise de riscos gerada")

	return in, nil
}

func (s *Service) ListByProject(ctx context.Context, projectID ulid.ULID, pagination *pkg.PaginationParams) ([]*Insight, int64, error) {
	if err := s.EnsureProjectExists(ctx, projectID); err != nil {
		return nil, 0, err
	}

	insights, total, err := s.Repository.ListByProject(ctx, projectID, pagination)
	if err != nil {
		return nil, 0, appErrors.NewDatabaseError(err)
	}
	return insights, total, nil
}

func (s *Service) observe(outcome string) {
	if s.Recorder != nil {
		s.Recorder.ObserveLLMCall(outcome)
	}
}
