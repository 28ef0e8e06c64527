package dto

import (
	"time"

	"github.com/google/uuid"
)

type QueryRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

// MatchDTO is one retrieved review plus its similarity for this query
type MatchDTO struct {
	Id         uuid.UUID  `json:"id"`
	ReviewText string     `json:"review_text"`
	AuthorName string     `json:"author_name"`
	Rating     *int       `json:"rating"`
	ReviewDate *time.Time `json:"review_date"`
	AppVersion string     `json:"app_version"`
	Platform   string     `json:"platform"`
	Similarity float64    `json:"similarity"`
}

type QueryResponse struct {
	Matches []MatchDTO `json:"matches"`
	Answer  string     `json:"answer"`
}

// QueryCompletedMessage is the audit event published after a successful query
type QueryCompletedMessage struct {
	Query        string `json:"query"`
	CleanedQuery string `json:"cleaned_query"`
	Intent       string `json:"intent"`
	Answer       string `json:"answer"`
	MatchCount   int    `json:"match_count"`
}
