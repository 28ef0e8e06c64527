package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	PlatformApple   = "apple"
	PlatformAndroid = "android"
)

// Review is an immutable app-store review as persisted by the data pipeline.
// The core only reads these; Rating and ReviewDate may be absent.
type Review struct {
	Id         uuid.UUID
	ReviewText string
	AuthorName string
	Rating     *int
	ReviewDate *time.Time
	AppVersion string
	Platform   string
}

// RetrievedReview pairs a review with the similarity score produced by a
// single nearest-neighbor query. Scores are only comparable within one query.
type RetrievedReview struct {
	Review
	Similarity float64
}
