package insight

import (
	"context"
	"errors"
	"testing"
)

func TestExpandParsesArray(t *testing.T) {
	llmStub := &stubLLM{
		responses: map[string]string{
			"expert at searching": `["transfer external account", "payment mobile banking", "send money functionality"]`,
		},
	}
	expander := NewExpander(llmStub, nopLogger{})

	got := expander.Expand(context.Background(), "what are people saying about transfers")

	if len(got) != 3 {
		t.Fatalf("expected 3 search queries, got %d", len(got))
	}
	if got[0] != "transfer external account" {
		t.Errorf("first query = %q", got[0])
	}
}

func TestExpandParsesFencedArray(t *testing.T) {
	llmStub := &stubLLM{
		responses: map[string]string{
			"expert at searching": "```json\n[\"transfer issues\", \"payment bugs\"]\n```",
		},
	}
	expander := NewExpander(llmStub, nopLogger{})

	got := expander.Expand(context.Background(), "transfers")

	if len(got) != 2 {
		t.Fatalf("expected 2 search queries, got %d", len(got))
	}
}

func TestExpandDegradesOnError(t *testing.T) {
	llmStub := &stubLLM{err: errors.New("timeout")}
	expander := NewExpander(llmStub, nopLogger{})

	got := expander.Expand(context.Background(), "transfers")

	if len(got) != 1 || got[0] != "transfers" {
		t.Errorf("expected single-element fallback, got %v", got)
	}
}

func TestExpandDegradesOnNonArray(t *testing.T) {
	llmStub := &stubLLM{
		responses: map[string]string{
			"expert at searching": "I would search for transfer issues and payment bugs.",
		},
	}
	expander := NewExpander(llmStub, nopLogger{})

	got := expander.Expand(context.Background(), "transfers")

	if len(got) != 1 || got[0] != "transfers" {
		t.Errorf("expected single-element fallback, got %v", got)
	}
}
