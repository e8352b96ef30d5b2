package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Planzee/internal/domain/budget"
	"Planzee/internal/domain/project"
	"Planzee/internal/domain/task"
	"Planzee/internal/pkg"

	"gopkg.in/yaml.v3"
)

// snapshotFile é o formato aceito por "evaluate"; datas em YYYY-MM-DD.
type snapshotFile struct {
	Project projectInput  `json:"project" yaml:"project"`
	Tasks   []taskInput   `json:"tasks" yaml:"tasks"`
	Budgets []budgetInput `json:"budgets" yaml:"budgets"`
	Final   bool          `json:"final" yaml:"final"`
}

type projectInput struct {
	Name               string   `json:"name" yaml:"name"`
	StartDate          *string  `json:"start_date" yaml:"start_date"`
	Deadline           *string  `json:"deadline" yaml:"deadline"`
	Progress           *int     `json:"progress" yaml:"progress"`
	TotalEstimatedCost *float64 `json:"total_estimated_cost" yaml:"total_estimated_cost"`
}

type taskInput struct {
	Title    string  `json:"title" yaml:"title"`
	Status   string  `json:"status" yaml:"status"`
	Deadline *string `json:"deadline" yaml:"deadline"`
}

type budgetInput struct {
	Description string  `json:"description" yaml:"description"`
	TotalValue  float64 `json:"total_value" yaml:"total_value"`
	SpentValue  float64 `json:"spent_value" yaml:"spent_value"`
}

func loadSnapshotFile(path string) (*snapshotFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var snap snapshotFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &snap)
	case ".json":
		err = json.Unmarshal(data, &snap)
	default:
		return nil, fmt.Errorf("unsupported snapshot format %q (use .json, .yaml or .yml)", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	return &snap, nil
}

func (s *snapshotFile) toDomain() (*project.Project, []*task.Task, []*budget.Budget, error) {
	start, err := pkg.ParseDatePtr(s.Project.StartDate)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("project.start_date: %w", err)
	}
	deadline, err := pkg.ParseDatePtr(s.Project.Deadline)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("project.deadline: %w", err)
	}

	p := &project.Project{
		Name:               s.Project.Name,
		StartDate:          start,
		Deadline:           deadline,
		Progress:           s.Project.Progress,
		TotalEstimatedCost: s.Project.TotalEstimatedCost,
	}

	tasks := make([]*task.Task, 0, len(s.Tasks))
	for i, in := range s.Tasks {
		st := task.Status(in.Status)
		if st == "" {
			st = task.StatusPending
		}
		if !st.IsValid() {
			return nil, nil, nil, fmt.Errorf("tasks[%d].status: invalid value %q", i, in.Status)
		}
		d, err := pkg.ParseDatePtr(in.Deadline)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("tasks[%d].deadline: %w", i, err)
		}
		tasks = append(tasks, &task.Task{Title: in.Title, Status: st, Deadline: d})
	}

	budgets := make([]*budget.Budget, 0, len(s.Budgets))
	for _, in := range s.Budgets {
		budgets = append(budgets, &budget.Budget{
			Description: in.Description,
			TotalValue:  in.TotalValue,
			SpentValue:  in.SpentValue,
		})
	}

	return p, tasks, budgets, nil
}
