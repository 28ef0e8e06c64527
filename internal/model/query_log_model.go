package model

import (
	"time"

	"github.com/google/uuid"
)

type QueryLog struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Query        string    `gorm:"type:text"`
	CleanedQuery string    `gorm:"type:text"`
	Intent       string    `gorm:"type:text"`
	Answer       string    `gorm:"type:text"`
	MatchCount   int       `gorm:"default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (QueryLog) TableName() string {
	return "query_logs"
}
