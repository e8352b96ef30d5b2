package infrastructure

import (
	"context"
	"strings"

	"Planzee/config"
	"Planzee/internal/domain/insight"
	"Planzee/internal/logger"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// AnthropicAnalyzer envia os prompts de análise de riscos para a API Messages.
type AnthropicAnalyzer struct {
	client    anthropic.Client
	model     anthropic.Model
	maxTokens int64
}

var _ insight.Analyzer = (*AnthropicAnalyzer)(nil)

func NewAnthropicAnalyzer(cfg config.AIConfig, opts ...option.RequestOption) *AnthropicAnalyzer {
	requestOpts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.Timeout > 0 {
		requestOpts = append(requestOpts, option.WithRequestTimeout(cfg.Timeout))
	}
	requestOpts = append(requestOpts, opts...)

	model := anthropic.Model(cfg.Model)
	if model == "" {
		model = anthropic.ModelClaudeSonnet4_20250514
	}

	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = 2048
	}

	return &AnthropicAnalyzer{
		client:    anthropic.NewClient(requestOpts...),
		model:     model,
		maxTokens: maxTokens,
	}
}

// NewAnalyzer devolve nil quando não há chave configurada; o serviço de
// insights trata isso como IA desabilitada.
func NewAnalyzer(cfg *config.Config) insight.Analyzer {
	if !cfg.AI.Enabled() {
		logger.Info().Msg("ANTHROPIC_API_KEY não configurada, análise por IA desabilitada")
		return nil
	}
	return NewAnthropicAnalyzer(cfg.AI)
}

func (a *AnthropicAnalyzer) Complete(ctx context.Context, systemPrompt, prompt string) (*insight.Completion, error) {
	resp, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			text.WriteString(variant.Text)
		}
	}

	logger.Debug().
		Str("model", string(resp.Model)).
		Int64("input_tokens", resp.Usage.InputTokens).
		Int64("output_tokens", resp.Usage.OutputTokens).
		Msg("Resposta recebida do modelo")

	return &insight.Completion{Text: text.String(), Model: string(resp.Model)}, nil
}
