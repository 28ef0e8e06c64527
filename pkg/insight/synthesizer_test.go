package insight

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestSynthesizePromptCarriesAnalysisAndContext(t *testing.T) {
	llmStub := &stubLLM{
		responses: map[string]string{
			"data analyst": "Summary: users struggle with transfers.",
		},
	}
	synthesizer := NewSynthesizer(llmStub, nopLogger{})

	analysis := QueryAnalysis{
		Intent:            IntentSemantic,
		StructuredFilters: map[string]interface{}{},
		SemanticQuery:     "transfer money banking functionality",
		Reasoning:         "conceptual query",
	}
	contextBlock := "[apple] ⭐2: Transfer keeps failing. (date: unknown date)"

	answer, err := synthesizer.Synthesize(
		context.Background(),
		"what are people saying about transfers",
		analysis,
		[]string{"transfer external account"},
		contextBlock,
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(answer, "Summary:") {
		t.Errorf("answer does not lead with summary: %q", answer)
	}

	if len(llmStub.calls) != 1 {
		t.Fatalf("expected one chat call, got %d", len(llmStub.calls))
	}
	system := llmStub.calls[0]
	for _, needle := range []string{
		"Intent: semantic",
		"Semantic Query: transfer money banking functionality",
		`["transfer external account"]`,
		contextBlock,
		"Summary:",
		"Quote:",
	} {
		if !strings.Contains(system, needle) {
			t.Errorf("system prompt missing %q", needle)
		}
	}
}

func TestSynthesizePropagatesError(t *testing.T) {
	llmStub := &stubLLM{err: errors.New("upstream 500")}
	synthesizer := NewSynthesizer(llmStub, nopLogger{})

	_, err := synthesizer.Synthesize(context.Background(), "q", QueryAnalysis{}, nil, "")
	if err == nil {
		t.Fatal("expected error")
	}
}
