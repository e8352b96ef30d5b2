package main

import (
	"fmt"

	"Planzee/internal/domain/healthscore"

	"github.com/spf13/cobra"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Mostra as faixas de nota de cada nível de saúde",
		Run: func(cmd *cobra.Command, args []string) {
			for _, r := range healthscore.LevelRanges {
				fmt.Fprintf(cmd.OutOrStdout(), "%-8s %3d-%-3d %-9s %s\n", r.Level, r.Min, r.Max, r.Label, r.Color)
			}
		},
	}
}
