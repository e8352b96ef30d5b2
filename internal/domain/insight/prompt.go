package insight

import (
	"fmt"
	"strings"

	"Planzee/internal/domain/healthscore"
	"Planzee/internal/domain/task"
	"Planzee/internal/pkg"
)

const systemPrompt = `Você é um analista de riscos de projetos. Responda somente com um objeto JSON no formato:
{"summary": string, "risks": [{"title": string, "severity": "baixa"|"media"|"alta", "description": string, "mitigation": string}], "recommendations": [string]}
Escreva em português do Brasil. Não inclua texto fora do JSON.`

// BuildPrompt descreve o projeto, a pontuação de saúde e os problemas
// encontrados para o modelo.
func BuildPrompt(snapshot *healthscore.Snapshot, health *healthscore.ProjectHealth) string {
	var b strings.Builder
	p := snapshot.Project

	fmt.Fprintf(&b, "Projeto: %s\n", p.Name)
	if p.Description != "" {
		fmt.Fprintf(&b, "Descrição: %s\n", p.Description)
	}
	if health.StatusName != "" {
		fmt.Fprintf(&b, "Status: %s\n", health.StatusName)
	}
	if p.Manager != "" {
		fmt.Fprintf(&b, "Gerente: %s\n", p.Manager)
	}
	if start := pkg.FormatDatePtr(p.StartDate); start != nil {
		fmt.Fprintf(&b, "Início: %s\n", *start)
	}
	if deadline := pkg.FormatDatePtr(p.Deadline); deadline != nil {
		fmt.Fprintf(&b, "Prazo: %s\n", *deadline)
	}
	fmt.Fprintf(&b, "Progresso: %d%%\n", p.ProgressOrZero())
	fmt.Fprintf(&b, "Custo estimado: %s\n", pkg.FormatBRL(p.EstimatedCostOrZero()))

	totalBudgeted, totalSpent := 0.0, 0.0
	for _, line := range snapshot.Budgets {
		totalBudgeted += line.TotalValue
		totalSpent += line.SpentValue
	}
	fmt.Fprintf(&b, "Orçamento: %s em %d linha(s), gasto %s\n", pkg.FormatBRL(totalBudgeted), len(snapshot.Budgets), pkg.FormatBRL(totalSpent))

	counts := make(map[task.Status]int)
	for _, t := range snapshot.Tasks {
		counts[t.Status]++
	}
	fmt.Fprintf(&b, "Tarefas: %d no total, %d pendentes, %d em andamento, %d bloqueadas, %d concluídas\n",
		len(snapshot.Tasks),
		counts[task.StatusPending],
		counts[task.StatusInProgress],
		counts[task.StatusBlocked],
		counts[task.StatusCompleted],
	)

	fmt.Fprintf(&b, "Saúde: %d/100 (%s)\n", health.Score, health.Label)
	if len(health.Issues) > 0 {
		b.WriteString("Problemas detectados:\n")
		for _, issue := range health.Issues {
			fmt.Fprintf(&b, "- %s\n", issue)
		}
	}

	b.WriteString("\nIdentifique os principais riscos, a severidade de cada um e ações de mitigação.")
	return b.String()
}
