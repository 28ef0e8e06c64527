package contract

import (
	"context"

	"echoparse-be/internal/entity"
)

// ReviewRepository exposes read access to the review corpus. The corpus is
// owned by the data pipeline; this side never writes it.
type ReviewRepository interface {
	// SearchSimilarWithScore runs a single unconstrained nearest-neighbor
	// search over the full corpus and returns up to limit reviews ordered by
	// ascending vector distance, each with its similarity score.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*entity.RetrievedReview, error)
}
