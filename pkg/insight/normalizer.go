package insight

import (
	"context"
	"strings"

	"echoparse-be/internal/constant"
	"echoparse-be/internal/pkg/logger"
	"echoparse-be/pkg/llm"
)

// Normalizer fixes typos and shorthand in the raw query while preserving
// banking terminology. Never fatal: any failure returns the raw query.
type Normalizer struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewNormalizer(llmProvider llm.LLMProvider, log logger.ILogger) *Normalizer {
	return &Normalizer{
		llmProvider: llmProvider,
		logger:      log,
	}
}

func (n *Normalizer) Normalize(ctx context.Context, raw string) string {
	cleaned, err := n.llmProvider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: constant.NormalizerSystemPrompt},
			{Role: "user", Content: raw},
		},
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(100),
	)
	if err != nil {
		n.logger.Warn("insight.normalizer", "Query normalization failed, using raw query", map[string]interface{}{
			"error": err.Error(),
		})
		return raw
	}

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return raw
	}
	return cleaned
}
