package insight

import (
	"context"
	"errors"
	"testing"
)

func TestNormalizeCleansQuery(t *testing.T) {
	llmStub := &stubLLM{
		responses: map[string]string{
			"query preprocessor": "what are people saying about transfers",
		},
	}
	normalizer := NewNormalizer(llmStub, nopLogger{})

	got := normalizer.Normalize(context.Background(), "what are ppl sayhing about tranfers")

	if got != "what are people saying about transfers" {
		t.Errorf("normalized = %q", got)
	}
}

func TestNormalizeReturnsRawOnError(t *testing.T) {
	llmStub := &stubLLM{err: errors.New("timeout")}
	normalizer := NewNormalizer(llmStub, nopLogger{})

	raw := "what are ppl sayhing about tranfers"
	if got := normalizer.Normalize(context.Background(), raw); got != raw {
		t.Errorf("expected raw query back verbatim, got %q", got)
	}
}

func TestNormalizeReturnsRawOnEmptyResponse(t *testing.T) {
	llmStub := &stubLLM{
		responses: map[string]string{
			"query preprocessor": "   \n",
		},
	}
	normalizer := NewNormalizer(llmStub, nopLogger{})

	raw := "transfers"
	if got := normalizer.Normalize(context.Background(), raw); got != raw {
		t.Errorf("expected raw query back, got %q", got)
	}
}
