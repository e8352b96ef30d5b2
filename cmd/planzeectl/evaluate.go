package main

import (
	"encoding/json"
	"fmt"
	"time"

	"Planzee/internal/domain/healthscore"
	"Planzee/internal/pkg"

	"github.com/spf13/cobra"
)

type evaluateOutput struct {
	Project string            `json:"project"`
	Today   string            `json:"today"`
	Score   int               `json:"score"`
	Level   healthscore.Level `json:"level"`
	Label   string            `json:"label"`
	Color   string            `json:"color"`
	Issues  []string          `json:"issues"`
}

func newEvaluateCmd() *cobra.Command {
	var (
		file  string
		today string
		final bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Avalia a saúde de um snapshot de projeto",
		Long: `Avalia um snapshot de projeto lido de --file (.json, .yaml ou .yml).

--today fixa a data de referência (padrão: hoje em UTC). --final trata o
status do projeto como final, o que sempre resulta em nota 100.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := pkg.CivilDate(time.Now().UTC())
			if today != "" {
				parsed, err := pkg.ParseDate(today)
				if err != nil {
					return fmt.Errorf("--today: %w", err)
				}
				ref = parsed
			}

			snap, err := loadSnapshotFile(file)
			if err != nil {
				return err
			}
			p, tasks, budgets, err := snap.toDomain()
			if err != nil {
				return err
			}

			result := healthscore.Evaluate(p, tasks, budgets, final || snap.Final, ref, pkg.FormatBRL)
			info := healthscore.LevelInfo(result.Level)

			out := evaluateOutput{
				Project: p.Name,
				Today:   ref.Format(pkg.DateLayout),
				Score:   result.Score,
				Level:   result.Level,
				Label:   info.Label,
				Color:   info.Color,
				Issues:  result.Issues,
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Snapshot do projeto (.json, .yaml ou .yml)")
	cmd.Flags().StringVar(&today, "today", "", "Data de referência YYYY-MM-DD")
	cmd.Flags().BoolVar(&final, "final", false, "Trata o status do projeto como final")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
