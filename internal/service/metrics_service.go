package service

import (
	"context"
	"fmt"
	"strconv"

	"echoparse-be/internal/dto"
	"echoparse-be/internal/entity"
	"echoparse-be/internal/repository/contract"
)

// Sentinel values written by the metrics pipeline when a figure could not
// be computed for the window.
const (
	missingMetricSentinel    = -1.0
	missingSentimentSentinel = -999.0
)

const dashboardTimePeriod = "30d"

type IMetricsService interface {
	GetDashboardMetrics(ctx context.Context) (*dto.DashboardMetricsResponse, error)
}

type metricsService struct {
	metricRepo contract.DashboardMetricRepository
}

func NewMetricsService(metricRepo contract.DashboardMetricRepository) IMetricsService {
	return &metricsService{
		metricRepo: metricRepo,
	}
}

func (s *metricsService) GetDashboardMetrics(ctx context.Context) (*dto.DashboardMetricsResponse, error) {
	rawMetrics, err := s.metricRepo.FindByTimePeriod(ctx, dashboardTimePeriod)
	if err != nil {
		return nil, err
	}

	formatted := make(map[string]dto.FormattedMetric)
	for _, metric := range rawMetrics {
		key, tile, ok := formatMetric(metric)
		if !ok {
			continue
		}
		formatted[key] = tile
	}

	response := &dto.DashboardMetricsResponse{
		Metrics: formatted,
	}
	if len(rawMetrics) > 0 {
		lastUpdated := rawMetrics[0].CalculationDate.Format("2006-01-02T15:04:05Z07:00")
		response.LastUpdated = &lastUpdated
	}
	return response, nil
}

// formatMetric turns one stored row into a dashboard tile. Unknown metric
// names are skipped so a newer pipeline does not break an older API.
func formatMetric(metric *entity.DashboardMetric) (string, dto.FormattedMetric, bool) {
	value := metric.MetricValue

	switch metric.MetricName {
	case "one_star_reviews_pct":
		if value == missingMetricSentinel {
			return "one_star_reviews", dto.FormattedMetric{Value: "N/A"}, true
		}
		return "one_star_reviews", dto.FormattedMetric{
			Value:    formatFloat(value) + "%",
			RawValue: value,
		}, true

	case "avg_sentiment":
		if value == missingSentimentSentinel {
			return "avg_sentiment", dto.FormattedMetric{
				Value: "N/A",
				Scale: "on [-1.0, 1.0] scale",
			}, true
		}
		return "avg_sentiment", dto.FormattedMetric{
			Value:    fmt.Sprintf("%.2f", value),
			RawValue: value,
			Scale:    "on [-1.0, 1.0] scale",
		}, true

	case "trending_topic":
		topic := metadataString(metric.MetricMetadata, "topic")
		return "trending_topic", dto.FormattedMetric{
			Value:    topic,
			RawValue: topic,
		}, true

	case "review_volume_delta_pct":
		sign := ""
		if value >= 0 {
			sign = "+"
		}
		return "review_volume_delta", dto.FormattedMetric{
			Value:    sign + formatFloat(value) + "%",
			RawValue: value,
		}, true

	case "platform_score_gap":
		gapText := metadataString(metric.MetricMetadata, "gap_text")
		return "platform_score_gap", dto.FormattedMetric{
			Value:    gapText,
			RawValue: gapText,
		}, true

	case "app_store_rating_30d":
		if value == missingMetricSentinel {
			return "app_store_rating", dto.FormattedMetric{Value: "N/A"}, true
		}
		return "app_store_rating", dto.FormattedMetric{
			Value:    fmt.Sprintf("%.1f", value),
			RawValue: value,
		}, true

	case "play_store_rating_30d":
		if value == missingMetricSentinel {
			return "play_store_rating", dto.FormattedMetric{Value: "N/A"}, true
		}
		return "play_store_rating", dto.FormattedMetric{
			Value:    fmt.Sprintf("%.1f", value),
			RawValue: value,
		}, true
	}

	return "", dto.FormattedMetric{}, false
}

func metadataString(metadata map[string]interface{}, key string) string {
	if metadata == nil {
		return "N/A"
	}
	value, ok := metadata[key].(string)
	if !ok {
		return "N/A"
	}
	return value
}

// formatFloat renders without a fixed precision so 3.25 stays "3.25" and
// 12 stays "12".
func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
