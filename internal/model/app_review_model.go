package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

type AppReview struct {
	Id         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReviewText string          `gorm:"type:text"`
	AuthorName string          `gorm:"type:text"`
	Rating     *int            `gorm:"type:int"`
	ReviewDate *time.Time      ``
	AppVersion string          `gorm:"type:text"`
	Platform   string          `gorm:"type:text"`
	Embedding  pgvector.Vector `gorm:"type:vector(1536)"` // text-embedding-3-small uses 1536 dimensions
}

func (AppReview) TableName() string {
	return "app_reviews"
}
