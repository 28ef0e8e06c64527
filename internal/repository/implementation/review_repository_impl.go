package implementation

import (
	"context"
	"time"

	"echoparse-be/internal/entity"
	"echoparse-be/internal/mapper"
	"echoparse-be/internal/model"
	"echoparse-be/internal/repository/contract"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// searchTimeout bounds the KNN query; request contexts may carry no deadline.
const searchTimeout = 15 * time.Second

type ReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ReviewMapper
}

func NewReviewRepository(db *gorm.DB) contract.ReviewRepository {
	return &ReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewReviewMapper(),
	}
}

// SearchSimilarWithScore returns reviews with similarity scores.
// pgvector inner-product distance: embedding <#> query_vector (negative for
// normalized vectors), so 1 - (embedding <#> query_vector) is the similarity.
// No metadata predicate is applied here: retrieval is always an
// unconstrained nearest-neighbor search over the whole corpus.
func (r *ReviewRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*entity.RetrievedReview, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.AppReview
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	queryCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	err := r.db.WithContext(queryCtx).
		Table("app_reviews").
		Select("app_reviews.*, 1 - (embedding <#> ?) as similarity", queryVector).
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}

	retrieved := make([]*entity.RetrievedReview, len(results))
	for i, res := range results {
		retrieved[i] = &entity.RetrievedReview{
			Review:     *r.mapper.ToEntity(&res.AppReview),
			Similarity: res.Similarity,
		}
	}
	return retrieved, nil
}
