package insight

import (
	"context"
	"encoding/json"
	"fmt"

	"echoparse-be/internal/constant"
	"echoparse-be/internal/pkg/logger"
	"echoparse-be/pkg/llm"
)

// Synthesizer produces the final citation-constrained answer. Unlike every
// upstream LLM stage there is no fallback: a failure here fails the request.
type Synthesizer struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewSynthesizer(llmProvider llm.LLMProvider, log logger.ILogger) *Synthesizer {
	return &Synthesizer{
		llmProvider: llmProvider,
		logger:      log,
	}
}

func (s *Synthesizer) Synthesize(
	ctx context.Context,
	cleanedQuery string,
	analysis QueryAnalysis,
	searchQueries []string,
	contextBlock string,
) (string, error) {

	systemPrompt := buildSynthesisPrompt(analysis, searchQueries, contextBlock)
	userPrompt := fmt.Sprintf(constant.SynthesizerUserPromptTemplate, cleanedQuery)

	answer, err := s.llmProvider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		llm.WithTemperature(0.2),
		llm.WithMaxTokens(300),
	)
	if err != nil {
		return "", err
	}

	s.logger.Debug("insight.synthesizer", "Answer generated", map[string]interface{}{
		"intent":         analysis.Intent,
		"search_queries": searchQueries,
	})

	return answer, nil
}

// buildSynthesisPrompt interpolates classifier metadata and the expander's
// phrases into the system instruction as transparency context. They are not
// retrieval constraints.
func buildSynthesisPrompt(analysis QueryAnalysis, searchQueries []string, contextBlock string) string {
	filters, _ := json.Marshal(analysis.StructuredFilters)
	queries, _ := json.Marshal(searchQueries)

	return fmt.Sprintf(constant.SynthesizerSystemPromptTemplate,
		analysis.Intent,
		string(filters),
		analysis.SemanticQuery,
		analysis.Reasoning,
		string(queries),
		contextBlock,
	)
}
