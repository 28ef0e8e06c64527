package entity

import (
	"time"

	"github.com/google/uuid"
)

// QueryLog is the audit record of one completed insight query.
type QueryLog struct {
	Id           uuid.UUID
	Query        string
	CleanedQuery string
	Intent       string
	Answer       string
	MatchCount   int
	CreatedAt    time.Time
}
