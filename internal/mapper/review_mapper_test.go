package mapper

import (
	"testing"
	"time"

	"echoparse-be/internal/entity"
	"echoparse-be/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestReviewMapperToEntity(t *testing.T) {
	rating := 4
	date := time.Date(2025, 3, 15, 23, 15, 51, 0, time.UTC)
	row := &model.AppReview{
		Id:         uuid.New(),
		ReviewText: "transfers finally work",
		AuthorName: "jdoe",
		Rating:     &rating,
		ReviewDate: &date,
		AppVersion: "5.2.1",
		Platform:   entity.PlatformApple,
	}

	got := NewReviewMapper().ToEntity(row)

	require.NotNil(t, got)
	assert.Equal(t, row.Id, got.Id)
	assert.Equal(t, "transfers finally work", got.ReviewText)
	assert.Equal(t, &rating, got.Rating)
	assert.Equal(t, &date, got.ReviewDate)
	assert.Equal(t, entity.PlatformApple, got.Platform)
}

func TestReviewMapperNil(t *testing.T) {
	assert.Nil(t, NewReviewMapper().ToEntity(nil))
}

func TestDashboardMetricMapperParsesMetadata(t *testing.T) {
	row := &model.DashboardMetric{
		MetricName:      "trending_topic",
		MetricValue:     0,
		MetricMetadata:  datatypes.JSON(`{"topic": "transfers"}`),
		TimePeriod:      "30d",
		CalculationDate: time.Now().UTC(),
	}

	got := NewDashboardMetricMapper().ToEntity(row)

	require.NotNil(t, got)
	assert.Equal(t, "transfers", got.MetricMetadata["topic"])
}

func TestDashboardMetricMapperMalformedMetadata(t *testing.T) {
	row := &model.DashboardMetric{
		MetricName:     "trending_topic",
		MetricMetadata: datatypes.JSON(`not json`),
		TimePeriod:     "30d",
	}

	got := NewDashboardMetricMapper().ToEntity(row)

	require.NotNil(t, got)
	assert.Nil(t, got.MetricMetadata, "malformed metadata should read as absent")
}

func TestQueryLogMapperToModel(t *testing.T) {
	log := &entity.QueryLog{
		Id:           uuid.New(),
		Query:        "tranfers",
		CleanedQuery: "transfers",
		Intent:       "semantic",
		Answer:       "Summary: ...",
		MatchCount:   5,
		CreatedAt:    time.Now().UTC(),
	}

	got := NewQueryLogMapper().ToModel(log)

	require.NotNil(t, got)
	assert.Equal(t, log.Id, got.Id)
	assert.Equal(t, "transfers", got.CleanedQuery)
	assert.Equal(t, 5, got.MatchCount)
}
