package contract

import (
	"context"

	"echoparse-be/internal/entity"
)

type DashboardMetricRepository interface {
	// FindByTimePeriod returns all precalculated metrics for one period
	// (e.g. "30d"), ordered by metric name.
	FindByTimePeriod(ctx context.Context, timePeriod string) ([]*entity.DashboardMetric, error)
}
