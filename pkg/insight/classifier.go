package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"echoparse-be/internal/constant"
	"echoparse-be/internal/pkg/logger"
	"echoparse-be/pkg/llm"
)

// Classifier detects query intent and extracts the semantic query plus any
// structured filters. Never fatal: any failure degrades to a semantic-only
// analysis over the cleaned query.
type Classifier struct {
	llmProvider llm.LLMProvider
	logger      logger.ILogger
}

func NewClassifier(llmProvider llm.LLMProvider, log logger.ILogger) *Classifier {
	return &Classifier{
		llmProvider: llmProvider,
		logger:      log,
	}
}

func (c *Classifier) Classify(ctx context.Context, cleaned string) QueryAnalysis {
	raw, err := c.llmProvider.Chat(ctx,
		[]llm.Message{
			{Role: "system", Content: constant.ClassifierSystemPrompt},
			{Role: "user", Content: cleaned},
		},
		llm.WithTemperature(0.1),
		llm.WithMaxTokens(500),
	)
	if err != nil {
		c.logger.Warn("insight.classifier", "Query analysis call failed, using semantic default", map[string]interface{}{
			"error": err.Error(),
		})
		return defaultAnalysis(cleaned, fmt.Sprintf("Query analysis failed: %v", err))
	}

	analysis, err := parseAnalysisResponse(raw)
	if err != nil {
		c.logger.Warn("insight.classifier", "Query analysis parse failed, using semantic default", map[string]interface{}{
			"error":   err.Error(),
			"payload": raw,
		})
		return defaultAnalysis(cleaned, fmt.Sprintf("Query analysis failed: %v", err))
	}

	if analysis.StructuredFilters == nil {
		analysis.StructuredFilters = map[string]interface{}{}
	}
	return analysis
}

func defaultAnalysis(cleaned, reasoning string) QueryAnalysis {
	return QueryAnalysis{
		Intent:            IntentSemantic,
		StructuredFilters: map[string]interface{}{},
		SemanticQuery:     cleaned,
		Reasoning:         reasoning,
	}
}

// parseAnalysisResponse extracts a QueryAnalysis from the model output
func parseAnalysisResponse(response string) (QueryAnalysis, error) {
	response = stripCodeFences(response)

	var analysis QueryAnalysis
	if err := json.Unmarshal([]byte(response), &analysis); err != nil {
		return QueryAnalysis{}, err
	}

	switch analysis.Intent {
	case IntentStructured, IntentSemantic, IntentHybrid:
	default:
		return QueryAnalysis{}, fmt.Errorf("unrecognized intent %q", analysis.Intent)
	}

	return analysis, nil
}

// stripCodeFences removes markdown fence markup and isolates the JSON span
func stripCodeFences(response string) string {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	// The payload might be wrapped in prose
	jsonStart := strings.IndexAny(response, "{[")
	if jsonStart >= 0 {
		closer := "}"
		if response[jsonStart] == '[' {
			closer = "]"
		}
		if jsonEnd := strings.LastIndex(response, closer); jsonEnd > jsonStart {
			response = response[jsonStart : jsonEnd+1]
		}
	}

	return response
}
