package insight

import (
	"context"
	"errors"
)

var (
	errNoJSONObject = errors.New("resposta sem objeto JSON")
	errEmptySummary = errors.New("resposta sem resumo")
)

type Completion struct {
	Text  string
	Model string
}

// Analyzer envia um prompt ao modelo de linguagem e devolve o texto gerado.
type Analyzer interface {
	Complete(ctx context.Context, systemPrompt, prompt string) (*Completion, error)
}

// Recorder conta chamadas ao modelo por resultado (ok, error, invalid).
type Recorder interface {
	ObserveLLMCall(outcome string)
}
