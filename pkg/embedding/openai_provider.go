package embedding

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	client     *openai.Client
	model      openai.EmbeddingModel
	dimensions int
	timeout    time.Duration
}

// NewOpenAIProvider creates an embedding provider backed by the OpenAI API.
// baseURL may point at any OpenAI-compatible gateway; empty means the default.
func NewOpenAIProvider(apiKey, baseURL, model string, dimensions int) EmbeddingProvider {
	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientCfg.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client:     openai.NewClientWithConfig(clientCfg),
		model:      openai.EmbeddingModel(model),
		dimensions: dimensions,
		timeout:    60 * time.Second,
	}
}

func (p *OpenAIProvider) Generate(ctx context.Context, text string) ([]float32, error) {
	req := openai.EmbeddingRequest{
		Input:          []string{text},
		Model:          p.model,
		EncodingFormat: openai.EmbeddingEncodingFormatFloat,
	}

	// Bounded timeout: the incoming request context may carry no deadline
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	resp, err := p.client.CreateEmbeddings(callCtx, req)
	if err != nil {
		return nil, parseAPIError(err)
	}

	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("empty embedding response from %s", p.model)
	}

	vector := resp.Data[0].Embedding
	if p.dimensions > 0 && len(vector) != p.dimensions {
		// Dimension drift means the stored corpus and the model disagree.
		// That is a deployment problem, not a per-request one, but we refuse
		// to hand back a vector the store cannot compare against.
		return nil, fmt.Errorf("embedding dimension mismatch: got %d, expected %d", len(vector), p.dimensions)
	}

	return vector, nil
}

// parseAPIError extracts a readable message from go-openai error types.
func parseAPIError(err error) error {
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return fmt.Errorf("embedding API error %d: %s", reqErr.HTTPStatusCode, string(reqErr.Body))
	}

	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("embedding API error %d: %s", apiErr.HTTPStatusCode, apiErr.Message)
	}

	return fmt.Errorf("embedding request failed: %w", err)
}
