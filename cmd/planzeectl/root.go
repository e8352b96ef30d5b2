package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "planzeectl",
		Short: "Ferramentas offline do Planzee",
		Long: `planzeectl reproduz a avaliação de saúde de projetos fora da API.

Lê um snapshot de projeto (JSON ou YAML) com tarefas e orçamentos e imprime
o resultado da avaliação em JSON.`,
		SilenceUsage: true,
	}

	root.AddCommand(newEvaluateCmd())
	root.AddCommand(newLevelsCmd())
	return root
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
