package entity

import "time"

// DashboardMetric is a precalculated metric row written by the data pipeline.
// MetricValue may carry a sentinel (-1.0, -999.0) meaning "not applicable".
type DashboardMetric struct {
	MetricName      string
	MetricValue     float64
	MetricMetadata  map[string]interface{}
	TimePeriod      string
	CalculationDate time.Time
}
