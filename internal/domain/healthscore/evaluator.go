package healthscore

import (
	"fmt"
	"math"
	"time"

	"Planzee/internal/domain/budget"
	"Planzee/internal/domain/project"
	"Planzee/internal/domain/task"
	"Planzee/internal/pkg"
)

const (
	maxScore = 100

	overduePenalty          = 40
	deadlineApproachPenalty = 25
	behindSchedulePenalty   = 20
	blockedTasksPenalty     = 15
	overdueTasksPenalty     = 15
	overBudgetPenalty       = 10
	missingBudgetPenalty    = 5

	deadlineWarningDays  = 7
	lowProgressThreshold = 80
	scheduleTolerance    = 20
	budgetOverrunRatio   = 1.2

	// maxOverrunPercent limita o percentual exibido quando a razão estoura float64.
	maxOverrunPercent = math.MaxInt32
)

// CurrencyFormatter formata valores monetários nas mensagens de problema.
type CurrencyFormatter func(value float64) string

type Result struct {
	Score  int      `json:"score"`
	Level  Level    `json:"level"`
	Issues []string `json:"issues"`
}

// Evaluate calcula a saúde de um projeto a partir das tarefas e orçamentos
// dele, já filtrados pelo chamador. today é comparado em dias corridos.
// Não faz I/O e não altera as entradas.
func Evaluate(p *project.Project, tasks []*task.Task, budgets []*budget.Budget, isStatusFinal bool, today time.Time, format CurrencyFormatter) Result {
	if isStatusFinal {
		return Result{Score: maxScore, Level: LevelGood, Issues: []string{}}
	}
	if p == nil {
		p = &project.Project{}
	}
	if format == nil {
		format = pkg.FormatBRL
	}

	score := maxScore
	issues := []string{}
	progress := p.ProgressOrZero()

	if p.Deadline != nil {
		daysUntilDeadline := pkg.DaysBetween(today, *p.Deadline)
		if daysUntilDeadline < 0 {
			score -= overduePenalty
			issues = append(issues, fmt.Sprintf("Project overdue by %d days", -daysUntilDeadline))
		} else if daysUntilDeadline <= deadlineWarningDays && progress < lowProgressThreshold {
			score -= deadlineApproachPenalty
			issues = append(issues, fmt.Sprintf("Deadline approaching and progress low (%d%%)", progress))
		}
	}

	if p.StartDate != nil && p.Deadline != nil {
		totalDays := pkg.DaysBetween(*p.StartDate, *p.Deadline)
		daysElapsed := pkg.DaysBetween(*p.StartDate, today)

		expected := 0.0
		if totalDays != 0 {
			expected = float64(daysElapsed) / float64(totalDays) * 100
		}

		if float64(progress) < expected-scheduleTolerance {
			score -= behindSchedulePenalty
			issues = append(issues, fmt.Sprintf("Progress below expected (%d%% vs %d%%)", progress, int(math.Round(expected))))
		}
	}

	blocked, overdue := countTaskProblems(tasks, today)
	if blocked > 0 {
		score -= blockedTasksPenalty
		issues = append(issues, fmt.Sprintf("%d task(s) blocked", blocked))
	}
	if overdue > 0 {
		score -= overdueTasksPenalty
		issues = append(issues, fmt.Sprintf("%d task(s) overdue", overdue))
	}

	totalBudgeted := sumBudgets(budgets)
	estimatedCost := p.EstimatedCostOrZero()
	if math.IsNaN(estimatedCost) || math.IsInf(estimatedCost, 0) {
		estimatedCost = 0
	}

	if totalBudgeted > 0 && estimatedCost > totalBudgeted*budgetOverrunRatio {
		score -= overBudgetPenalty
		issues = append(issues, fmt.Sprintf("Estimated cost exceeds budget by %.0f%%", overrunPercent(estimatedCost, totalBudgeted)))
	} else if totalBudgeted == 0 && estimatedCost > 0 {
		score -= missingBudgetPenalty
		issues = append(issues, fmt.Sprintf("Project has estimated cost (%s) but no budget defined.", format(estimatedCost)))
	}

	if score < 0 {
		score = 0
	}

	return Result{Score: score, Level: LevelFor(score), Issues: issues}
}

func countTaskProblems(tasks []*task.Task, today time.Time) (blocked, overdue int) {
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if t.IsBlocked() {
			blocked++
		}
		if t.Deadline != nil && pkg.DaysBetween(today, *t.Deadline) < 0 && !t.IsCompleted() {
			overdue++
		}
	}
	return blocked, overdue
}

func overrunPercent(estimatedCost, totalBudgeted float64) float64 {
	percent := math.Round((estimatedCost - totalBudgeted) / totalBudgeted * 100)
	if math.IsInf(percent, 0) || math.IsNaN(percent) || percent > maxOverrunPercent {
		return maxOverrunPercent
	}
	return percent
}

func sumBudgets(budgets []*budget.Budget) float64 {
	total := 0.0
	for _, b := range budgets {
		if b == nil || math.IsNaN(b.TotalValue) || math.IsInf(b.TotalValue, 0) {
			continue
		}
		total += b.TotalValue
	}
	return total
}
