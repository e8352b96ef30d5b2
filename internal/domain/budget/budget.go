package budget

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Budget é uma linha de orçamento de um projeto. Um projeto pode ter várias;
// o total orçado é a soma de TotalValue.
type Budget struct {
	Id          ulid.ULID `json:"id"`
	ProjectId   ulid.ULID `json:"projectId"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	TotalValue  float64   `json:"totalValue"`
	SpentValue  float64   `json:"spentValue"`
	AlertAt     float64   `json:"alertAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// GetPercentage retorna a porcentagem já gasta da linha de orçamento
func (b *Budget) GetPercentage() float64 {
	if b.TotalValue == 0 {
		return 0
	}
	return (b.SpentValue / b.TotalValue) * 100
}

// GetRemaining retorna quanto ainda pode ser gasto
func (b *Budget) GetRemaining() float64 {
	remaining := b.TotalValue - b.SpentValue
	if remaining < 0 {
		return 0
	}
	return remaining
}

const (
	StatusOK       = "OK"
	StatusWarning  = "WARNING"
	StatusExceeded = "EXCEEDED"
)

func ClassifySpending(percentage, alertAt float64) string {
	if percentage >= 100 {
		return StatusExceeded
	} else if percentage >= alertAt {
		return StatusWarning
	}
	return StatusOK
}

func (b *Budget) GetStatus() string {
	return ClassifySpending(b.GetPercentage(), b.AlertAt)
}

type Summary struct {
	ProjectId      ulid.ULID `json:"projectId"`
	TotalBudgeted  float64   `json:"totalBudgeted"`
	TotalSpent     float64   `json:"totalSpent"`
	TotalRemaining float64   `json:"totalRemaining"`
	Percentage     float64   `json:"percentage"`
	Status         string    `json:"status"`
	Lines          int       `json:"lines"`
}

// Summarize agrega as linhas de orçamento de um projeto.
func Summarize(projectID ulid.ULID, budgets []*Budget) *Summary {
	s := &Summary{ProjectId: projectID, Lines: len(budgets)}
	for _, b := range budgets {
		s.TotalBudgeted += b.TotalValue
		s.TotalSpent += b.SpentValue
	}
	s.TotalRemaining = s.TotalBudgeted - s.TotalSpent
	if s.TotalBudgeted > 0 {
		s.Percentage = (s.TotalSpent / s.TotalBudgeted) * 100
	}
	s.Status = ClassifySpending(s.Percentage, DefaultAlertAt)
	return s
}

const DefaultAlertAt = 80
