package insight

import (
	"context"
	"errors"
	"testing"
)

func TestClassifyParsesFencedResponse(t *testing.T) {
	llmStub := &stubLLM{
		responses: map[string]string{
			"query intelligence system": "```json\n{\"intent\": \"hybrid\", \"structuredFilters\": {\"platform\": {\"$in\": [\"android\"]}}, \"semanticQuery\": \"transfer issues\", \"reasoning\": \"platform filter plus concept\"}\n```",
		},
	}
	classifier := NewClassifier(llmStub, nopLogger{})

	got := classifier.Classify(context.Background(), "android transfer issues")

	if got.Intent != IntentHybrid {
		t.Errorf("intent = %q, want %q", got.Intent, IntentHybrid)
	}
	if got.SemanticQuery != "transfer issues" {
		t.Errorf("semanticQuery = %q", got.SemanticQuery)
	}
	if _, ok := got.StructuredFilters["platform"]; !ok {
		t.Error("platform filter lost in parsing")
	}
}

func TestClassifyFallsBackOnError(t *testing.T) {
	llmStub := &stubLLM{err: errors.New("upstream 500")}
	classifier := NewClassifier(llmStub, nopLogger{})

	got := classifier.Classify(context.Background(), "what do users think of transfers")

	if got.Intent != IntentSemantic {
		t.Errorf("fallback intent = %q, want %q", got.Intent, IntentSemantic)
	}
	if got.SemanticQuery != "what do users think of transfers" {
		t.Errorf("fallback semanticQuery = %q", got.SemanticQuery)
	}
	if got.StructuredFilters == nil || len(got.StructuredFilters) != 0 {
		t.Errorf("fallback filters = %v, want empty map", got.StructuredFilters)
	}
}

func TestClassifyFallsBackOnGarbage(t *testing.T) {
	llmStub := &stubLLM{
		responses: map[string]string{
			"query intelligence system": "I think this is a semantic query about transfers.",
		},
	}
	classifier := NewClassifier(llmStub, nopLogger{})

	got := classifier.Classify(context.Background(), "transfers")

	if got.Intent != IntentSemantic || got.SemanticQuery != "transfers" {
		t.Errorf("garbage response not degraded to default: %+v", got)
	}
}

func TestClassifyRejectsUnknownIntent(t *testing.T) {
	llmStub := &stubLLM{
		responses: map[string]string{
			"query intelligence system": `{"intent": "keyword", "semanticQuery": "x", "reasoning": "y"}`,
		},
	}
	classifier := NewClassifier(llmStub, nopLogger{})

	got := classifier.Classify(context.Background(), "transfers")

	if got.Intent != IntentSemantic {
		t.Errorf("unknown intent not degraded to default: %+v", got)
	}
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain json",
			input: `{"intent": "semantic"}`,
			want:  `{"intent": "semantic"}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"intent\": \"semantic\"}\n```",
			want:  `{"intent": "semantic"}`,
		},
		{
			name:  "bare fence",
			input: "```\n[\"a\", \"b\"]\n```",
			want:  `["a", "b"]`,
		},
		{
			name:  "prose wrapped object",
			input: `Here is the analysis: {"intent": "semantic"} Hope that helps!`,
			want:  `{"intent": "semantic"}`,
		},
		{
			name:  "prose wrapped array",
			input: `Sure: ["transfer issues", "payment bugs"] as requested.`,
			want:  `["transfer issues", "payment bugs"]`,
		},
		{
			name:  "no json at all",
			input: "sorry, I cannot help with that",
			want:  "sorry, I cannot help with that",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripCodeFences(tt.input); got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
