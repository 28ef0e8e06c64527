package insight

import (
	"context"
	"strings"
	"time"

	"echoparse-be/internal/entity"
	"echoparse-be/pkg/llm"

	"github.com/google/uuid"
)

// nopLogger discards everything; the stages under test only log on
// degradation paths.
type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// stubLLM answers each Chat call by matching the system prompt against a
// routing table, so one stub can play every pipeline stage.
type stubLLM struct {
	responses map[string]string // system prompt substring -> response
	err       error
	calls     []string
}

func (s *stubLLM) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	system := ""
	if len(history) > 0 && history[0].Role == "system" {
		system = history[0].Content
	}
	s.calls = append(s.calls, system)

	if s.err != nil {
		return "", s.err
	}
	for needle, response := range s.responses {
		if needle != "" && strings.Contains(system, needle) {
			return response, nil
		}
	}
	return "", nil
}

func (s *stubLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func review(text string, similarity float64) *entity.RetrievedReview {
	return &entity.RetrievedReview{
		Review: entity.Review{
			Id:         uuid.New(),
			ReviewText: text,
			Platform:   entity.PlatformApple,
		},
		Similarity: similarity,
	}
}

func reviewAt(text string, similarity float64, date time.Time) *entity.RetrievedReview {
	r := review(text, similarity)
	r.ReviewDate = &date
	return r
}
