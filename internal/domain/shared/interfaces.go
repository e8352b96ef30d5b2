package shared

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// ProjectChecker é implementado pelo repositório de projetos; tarefas e
// orçamentos o usam para validar o projeto dono antes de gravar.
type ProjectChecker interface {
	Exists(ctx context.Context, projectID ulid.ULID) (bool, error)
}
