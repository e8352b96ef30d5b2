package insight

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type Severity string

const (
	SeverityLow    Severity = "baixa"
	SeverityMedium Severity = "media"
	SeverityHigh   Severity = "alta"
)

var severityAliases = map[string]Severity{
	"baixa":  SeverityLow,
	"low":    SeverityLow,
	"media":  SeverityMedium,
	"média":  SeverityMedium,
	"medium": SeverityMedium,
	"alta":   SeverityHigh,
	"high":   SeverityHigh,
}

// NormalizeSeverity aceita as grafias em português e inglês; valores
// desconhecidos viram media.
func NormalizeSeverity(s string) Severity {
	if sev, ok := severityAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return sev
	}
	return SeverityMedium
}

type Risk struct {
	Title       string   `json:"title"`
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Mitigation  string   `json:"mitigation"`
}

// Insight é uma análise de riscos gerada por IA e guardada para consulta.
type Insight struct {
	Id              ulid.ULID `json:"id"`
	ProjectId       ulid.ULID `json:"projectId"`
	Score           int       `json:"score"`
	Level           string    `json:"level"`
	Summary         string    `json:"summary"`
	Risks           []Risk    `json:"risks"`
	Recommendations []string  `json:"recommendations"`
	Model           string    `json:"model"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Analysis é o objeto JSON que o modelo deve devolver.
type Analysis struct {
	Summary         string   `json:"summary"`
	Risks           []Risk   `json:"risks"`
	Recommendations []string `json:"recommendations"`
}

// ParseAnalysis extrai o objeto JSON da resposta do modelo, tolerando
// cercas de markdown e texto ao redor.
func ParseAnalysis(raw string) (*Analysis, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, errNoJSONObject
	}

	var a Analysis
	if err := json.Unmarshal([]byte(raw[start:end+1]), &a); err != nil {
		return nil, err
	}

	a.Summary = strings.TrimSpace(a.Summary)
	if a.Summary == "" {
		return nil, errEmptySummary
	}

	risks := make([]Risk, 0, len(a.Risks))
	for _, r := range a.Risks {
		r.Title = strings.TrimSpace(r.Title)
		if r.Title == "" {
			continue
		}
		r.Severity = NormalizeSeverity(string(r.Severity))
		risks = append(risks, r)
	}
	a.Risks = risks

	recommendations := make([]string, 0, len(a.Recommendations))
	for _, rec := range a.Recommendations {
		if rec = strings.TrimSpace(rec); rec != "" {
			recommendations = append(recommendations, rec)
		}
	}
	a.Recommendations = recommendations

	return &a, nil
}
