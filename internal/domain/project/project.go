package project

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Project struct {
	Id                 ulid.ULID  `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	StatusId           ulid.ULID  `json:"statusId"`
	StatusName         string     `json:"statusName,omitempty"`
	AreaId             *ulid.ULID `json:"areaId,omitempty"`
	Manager            string     `json:"manager"`
	StartDate          *time.Time `json:"startDate,omitempty"`
	Deadline           *time.Time `json:"deadline,omitempty"`
	Progress           *int       `json:"progress,omitempty"`
	TotalEstimatedCost *float64   `json:"totalEstimatedCost,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// ProgressOrZero trata progresso ausente como 0.
func (p *Project) ProgressOrZero() int {
	if p == nil || p.Progress == nil {
		return 0
	}
	return *p.Progress
}

func (p *Project) EstimatedCostOrZero() float64 {
	if p == nil || p.TotalEstimatedCost == nil {
		return 0
	}
	return *p.TotalEstimatedCost
}

// Overlaps indica se o intervalo [StartDate, Deadline] do projeto cruza a janela [from, to].
// Projetos sem as duas datas ficam fora da linha do tempo.
func (p *Project) Overlaps(from, to time.Time) bool {
	if p.StartDate == nil || p.Deadline == nil {
		return false
	}
	return !p.StartDate.After(to) && !p.Deadline.Before(from)
}

type Filters struct {
	StatusId *ulid.ULID
	AreaId   *ulid.ULID
	Search   *string
}
