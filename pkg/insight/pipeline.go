package insight

import (
	"context"
	"strings"

	"echoparse-be/internal/entity"
	"echoparse-be/internal/pkg/logger"
	"echoparse-be/internal/repository/contract"
	"echoparse-be/pkg/embedding"
	"echoparse-be/pkg/llm"
)

// TopK is how many candidates one retrieval call returns.
const TopK = 5

// Pipeline chains the query-to-answer stages. Each request is stateless: the
// stages form a strict producer-consumer chain and every external call is
// bounded by the caller's context.
type Pipeline struct {
	embeddingProvider embedding.EmbeddingProvider
	reviews           contract.ReviewRepository
	normalizer        *Normalizer
	classifier        *Classifier
	expander          *Expander
	synthesizer       *Synthesizer
	logger            logger.ILogger
}

func NewPipeline(
	embeddingProvider embedding.EmbeddingProvider,
	reviews contract.ReviewRepository,
	llmProvider llm.LLMProvider,
	log logger.ILogger,
) *Pipeline {
	return &Pipeline{
		embeddingProvider: embeddingProvider,
		reviews:           reviews,
		normalizer:        NewNormalizer(llmProvider, log),
		classifier:        NewClassifier(llmProvider, log),
		expander:          NewExpander(llmProvider, log),
		synthesizer:       NewSynthesizer(llmProvider, log),
		logger:            log,
	}
}

// Result carries both the raw ranked matches and the synthesized answer.
type Result struct {
	Matches       []*entity.RetrievedReview
	Answer        string
	CleanedQuery  string
	Analysis      QueryAnalysis
	SearchQueries []string
}

// Run executes the full pipeline for one raw query.
func (p *Pipeline) Run(ctx context.Context, rawQuery string) (*Result, error) {
	query := strings.TrimSpace(rawQuery)
	if query == "" {
		return nil, &ValidationError{Message: "query must not be empty"}
	}

	// The query vector is computed from the raw query; normalization feeds
	// classification, expansion, and synthesis only. Retrieval therefore does
	// not see typo corrections.
	vector, err := p.embeddingProvider.Generate(ctx, query)
	if err != nil {
		return nil, &EmbeddingError{Err: err}
	}

	matches, err := p.reviews.SearchSimilarWithScore(ctx, vector, TopK)
	if err != nil {
		return nil, &RetrievalError{Err: err}
	}

	p.logger.Debug("insight.pipeline", "Retrieved candidates", map[string]interface{}{
		"count": len(matches),
	})

	cleaned := p.normalizer.Normalize(ctx, query)
	analysis := p.classifier.Classify(ctx, cleaned)
	searchQueries := p.expander.Expand(ctx, cleaned)

	filtered := Filter(matches, analysis.SemanticQuery, DefaultSimilarityThreshold)
	contextBlock := ComposeContext(filtered, ContextLimit)

	p.logger.Debug("insight.pipeline", "Composed context", map[string]interface{}{
		"cleaned_query": cleaned,
		"intent":        analysis.Intent,
		"filtered":      len(filtered),
	})

	answer, err := p.synthesizer.Synthesize(ctx, cleaned, analysis, searchQueries, contextBlock)
	if err != nil {
		return nil, &SynthesisError{Err: err}
	}

	return &Result{
		Matches:       matches,
		Answer:        answer,
		CleanedQuery:  cleaned,
		Analysis:      analysis,
		SearchQueries: searchQueries,
	}, nil
}
