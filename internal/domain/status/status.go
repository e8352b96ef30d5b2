package status

import (
	"time"

	"Planzee/internal/pkg"

	"github.com/oklog/ulid/v2"
)

// Status é uma etapa do ciclo de vida de um projeto. Projetos em status final
// (concluído, cancelado) não têm mais a saúde avaliada.
type Status struct {
	Id        ulid.ULID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	SortOrder int       `json:"sortOrder"`
	IsFinal   bool      `json:"isFinal"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type DefaultStatusDefinition struct {
	Name      string
	Color     string
	SortOrder int
	IsFinal   bool
}

var DefaultStatuses = []DefaultStatusDefinition{
	{Name: "Planejamento", Color: "#9E9E9E", SortOrder: 1},
	{Name: "Em Andamento", Color: "#2196F3", SortOrder: 2},
	{Name: "Pausado", Color: "#FF9800", SortOrder: 3},
	{Name: "Concluído", Color: "#4CAF50", SortOrder: 4, IsFinal: true},
	{Name: "Cancelado", Color: "#F44336", SortOrder: 5, IsFinal: true},
}

const defaultStatusNamespace = "project_status"

func DefaultStatusID(name string) ulid.ULID {
	return pkg.DeterministicULID(defaultStatusNamespace, name)
}

func GetDefaultStatuses() []*Status {
	now := time.Now()
	statuses := make([]*Status, 0, len(DefaultStatuses))
	for _, def := range DefaultStatuses {
		statuses = append(statuses, &Status{
			Id:        DefaultStatusID(def.Name),
			Name:      def.Name,
			Color:     def.Color,
			SortOrder: def.SortOrder,
			IsFinal:   def.IsFinal,
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return statuses
}
