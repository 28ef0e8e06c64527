package mapper

import (
	"encoding/json"

	"echoparse-be/internal/entity"
	"echoparse-be/internal/model"
)

type ReviewMapper struct{}

func NewReviewMapper() *ReviewMapper {
	return &ReviewMapper{}
}

func (m *ReviewMapper) ToEntity(e *model.AppReview) *entity.Review {
	if e == nil {
		return nil
	}

	return &entity.Review{
		Id:         e.Id,
		ReviewText: e.ReviewText,
		AuthorName: e.AuthorName,
		Rating:     e.Rating,
		ReviewDate: e.ReviewDate,
		AppVersion: e.AppVersion,
		Platform:   e.Platform,
	}
}

type DashboardMetricMapper struct{}

func NewDashboardMetricMapper() *DashboardMetricMapper {
	return &DashboardMetricMapper{}
}

func (m *DashboardMetricMapper) ToEntity(e *model.DashboardMetric) *entity.DashboardMetric {
	if e == nil {
		return nil
	}

	var metadata map[string]interface{}
	if len(e.MetricMetadata) > 0 {
		// Malformed metadata is treated as absent, not an error
		_ = json.Unmarshal(e.MetricMetadata, &metadata)
	}

	return &entity.DashboardMetric{
		MetricName:      e.MetricName,
		MetricValue:     e.MetricValue,
		MetricMetadata:  metadata,
		TimePeriod:      e.TimePeriod,
		CalculationDate: e.CalculationDate,
	}
}

type QueryLogMapper struct{}

func NewQueryLogMapper() *QueryLogMapper {
	return &QueryLogMapper{}
}

func (m *QueryLogMapper) ToModel(e *entity.QueryLog) *model.QueryLog {
	if e == nil {
		return nil
	}

	return &model.QueryLog{
		Id:           e.Id,
		Query:        e.Query,
		CleanedQuery: e.CleanedQuery,
		Intent:       e.Intent,
		Answer:       e.Answer,
		MatchCount:   e.MatchCount,
		CreatedAt:    e.CreatedAt,
	}
}
