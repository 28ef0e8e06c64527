package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"echoparse-be/internal/constant"
	"echoparse-be/internal/pkg/logger"
	"echoparse-be/pkg/llm"
)

// Expander proposes 2-3 alternate search phrasings for the cleaned query.
// The phrases are attached to the synthesis context for transparency; they do
// not re-query retrieval. Never fatal: any failure degrades to the cleaned
// query alone.
type Expander struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewExpander(llmProvider llm.LLMProvider, log logger.ILogger) *Expander {
	return &Expander{
		llmProvider: llmProvider,
		logger:      log,
	}
}

func (e *Expander) Expand(ctx context.Context, cleaned string) []string {
	raw, err := e.llmProvider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: constant.ExpanderSystemPrompt},
			{Role: "user", Content: fmt.Sprintf("User question: \"%s\"", cleaned)},
		},
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(150),
	)
	if err != nil {
		e.logger.Warn("insight.expander", "Search query expansion failed, using cleaned query", map[string]interface{}{
			"error": err.Error(),
		})
		return []string{cleaned}
	}

	var queries []string
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &queries); err != nil || len(queries) == 0 {
		e.logger.Warn("insight.expander", "Search query expansion returned no array, using cleaned query", map[string]interface{}{
			"payload": raw,
		})
		return []string{cleaned}
	}

	return queries
}
